// Package ladder finds the shortest word ladder between two words: a sequence
// of dictionary words in which each consecutive pair differs by exactly one
// letter at the same position.
//
// What
//
//   - Solve runs breadth-first search over the implicit graph whose vertices are
//     dictionary words and whose edges join words one substitution apart.
//   - Neighbors generates those edges on demand: for every position and every
//     letter a–z other than the current one, keep the candidate if the
//     dictionary contains it. Insertions and deletions are never considered.
//   - Verify checks any ladder against a dictionary; Diff locates the single
//     changed position between two adjacent words.
//
// Why
//
//	Every edge has unit cost, so BFS dequeues all ladders of k edges before any
//	ladder of k+1 edges. The first dequeued ladder ending at the target word is
//	therefore a shortest one. Marking words visited at enqueue time keeps each
//	word on the frontier at most once.
//
// Validation order
//
//  1. nil dictionary             → ErrDictionaryNil
//  2. invalid Option             → ErrOptionViolation
//  3. length mismatch (in runes) → ErrLengthMismatch
//  4. start not in dictionary    → *WordNotInDictionaryError (errors.Is ErrWordNotInDictionary)
//  5. end not in dictionary      → *WordNotInDictionaryError
//  6. start == end               → Ladder{start}
//
// Both words are trimmed and lowercased before any check.
//
// Determinism
//
//	Neighbors are produced position-ascending, then letter-ascending, and the
//	frontier is FIFO. When several shortest ladders exist, the one returned is
//	fixed by that order and is stable across runs, strategies and worker counts.
//
// Frontier strategies
//
//   - default: the queue holds whole partial ladders, so the answer is the
//     dequeued entry itself.
//   - WithParentLinks: the queue holds bare words and a predecessor map
//     rebuilds the ladder once the target is reached. Less memory, same result.
//
// Complexity (V = words visited, L = word length)
//
//   - Time:   O(V × L × 25) dictionary lookups, each O(1) expected.
//   - Memory: O(V × depth) with path queues, O(V) with parent links.
//
// Usage
//
//	dict := wordset.New([]string{"cat", "cot", "dot", "dog"})
//	l, err := ladder.Solve("cat", "dog", dict)
//	switch {
//	case errors.Is(err, ladder.ErrNotFound):
//	    // well-formed query, no ladder
//	case err != nil:
//	    // ErrLengthMismatch, ErrWordNotInDictionary, ctx error, ...
//	default:
//	    fmt.Println(l) // [cat cot dot dog]
//	}
//
// Options
//
//   - WithContext(ctx):            cancellation, checked once per dequeue.
//   - WithMaxDepth(d):             give up on ladders longer than d edges (d>0).
//   - WithParallelNeighbors(n):    spread candidate lookups over n goroutines.
//   - WithParentLinks():           predecessor-map frontier.
//   - WithOnEnqueue(fn), WithOnDequeue(fn): observation hooks.
package ladder
