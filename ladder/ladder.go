// Package ladder provides breadth-first word-ladder search over a Dictionary,
// returning the shortest ladder by edge count.
package ladder

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	roleStart = "start"
	roleEnd   = "end"
)

// linkItem pairs a frontier word with its depth (parent-links strategy).
type linkItem struct {
	word  string
	depth int
}

// walker encapsulates mutable search state for one Solve call.
type walker struct {
	dict    Dictionary
	opts    Options
	ctx     context.Context
	start   string
	end     string
	visited map[string]bool
}

// Solve returns a shortest ladder from start to end under dict.
// Returns ErrDictionaryNil, ErrOptionViolation, ErrLengthMismatch or a
// *WordNotInDictionaryError for invalid input, ErrNotFound when no ladder
// exists, or the context error if the search is cancelled.
func Solve(start, end string, dict Dictionary, opts ...Option) (Ladder, error) {
	if dict == nil {
		return nil, ErrDictionaryNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start, end = normalize(start), normalize(end)
	if ls, le := utf8.RuneCountInString(start), utf8.RuneCountInString(end); ls != le {
		return nil, fmt.Errorf("%w: %q has %d letters, %q has %d", ErrLengthMismatch, start, ls, end, le)
	}
	if !dict.Contains(start) {
		return nil, &WordNotInDictionaryError{Word: start, Role: roleStart}
	}
	if !dict.Contains(end) {
		return nil, &WordNotInDictionaryError{Word: end, Role: roleEnd}
	}
	if start == end {
		return Ladder{start}, nil
	}

	w := &walker{
		dict:    dict,
		opts:    o,
		ctx:     o.Ctx,
		start:   start,
		end:     end,
		visited: make(map[string]bool),
	}
	if o.ParentLinks {
		return w.searchLinks()
	}

	return w.searchPaths()
}

// normalize trims and lowercases a query word.
func normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// searchPaths runs BFS with whole partial ladders on the frontier.
func (w *walker) searchPaths() (Ladder, error) {
	queue := []Ladder{{w.start}}
	w.markVisited(w.start, 0)

	for len(queue) > 0 {
		if err := w.cancelled(); err != nil {
			return nil, err
		}

		path := queue[0]
		queue = queue[1:]
		depth := len(path) - 1
		last := path[depth]
		w.opts.OnDequeue(last, depth)
		if last == w.end {
			return path, nil
		}
		if w.depthExhausted(depth) {
			continue
		}

		neighbors, err := w.neighbors(last)
		if err != nil {
			return nil, err
		}
		for _, nbr := range neighbors {
			if w.visited[nbr] {
				continue
			}
			w.markVisited(nbr, depth+1)
			next := make(Ladder, len(path)+1)
			copy(next, path)
			next[len(path)] = nbr
			queue = append(queue, next)
		}
	}

	return nil, ErrNotFound
}

// searchLinks runs BFS with bare words on the frontier and rebuilds the
// ladder from a predecessor map once end is dequeued.
func (w *walker) searchLinks() (Ladder, error) {
	parent := make(map[string]string)
	queue := []linkItem{{word: w.start}}
	w.markVisited(w.start, 0)

	for len(queue) > 0 {
		if err := w.cancelled(); err != nil {
			return nil, err
		}

		item := queue[0]
		queue = queue[1:]
		w.opts.OnDequeue(item.word, item.depth)
		if item.word == w.end {
			return w.backtrack(parent, item.depth), nil
		}
		if w.depthExhausted(item.depth) {
			continue
		}

		neighbors, err := w.neighbors(item.word)
		if err != nil {
			return nil, err
		}
		for _, nbr := range neighbors {
			if w.visited[nbr] {
				continue
			}
			w.markVisited(nbr, item.depth+1)
			parent[nbr] = item.word
			queue = append(queue, linkItem{word: nbr, depth: item.depth + 1})
		}
	}

	return nil, ErrNotFound
}

// backtrack walks parent links from end to start and returns them in order.
func (w *walker) backtrack(parent map[string]string, depth int) Ladder {
	path := make(Ladder, depth+1)
	cur := w.end
	for i := depth; i >= 0; i-- {
		path[i] = cur
		cur = parent[cur]
	}

	return path
}

// markVisited records word as seen and fires OnEnqueue.
func (w *walker) markVisited(word string, depth int) {
	w.visited[word] = true
	w.opts.OnEnqueue(word, depth)
}

// depthExhausted reports whether a word at depth may not be expanded further.
func (w *walker) depthExhausted(depth int) bool {
	return w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth
}

// neighbors dispatches to sequential or parallel generation.
func (w *walker) neighbors(word string) ([]string, error) {
	if w.opts.Workers <= 1 {
		return Neighbors(word, w.dict), nil
	}

	return parallelNeighbors(w.ctx, word, w.dict, w.opts.Workers)
}

// cancelled returns the context error once the search context is done.
func (w *walker) cancelled() error {
	select {
	case <-w.ctx.Done():
		return w.ctx.Err()
	default:
		return nil
	}
}
