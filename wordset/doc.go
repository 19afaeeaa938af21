// Package wordset provides the normalized, read-only vocabulary a word ladder
// is validated against.
//
// What
//
//   - Set is a deduplicated set of lowercase, trimmed, non-empty words.
//   - Contains answers membership in expected O(1) time and is case-insensitive:
//     every query is trimmed and lowercased before the lookup.
//   - Read and Load build a Set from a line source, one word per line.
//
// Why
//
//	Ladder search asks up to 25×L membership questions for every word it expands,
//	so lookups must not depend on dictionary size. A Go map gives exactly that.
//
// Lifecycle
//
//	A Set is populated once by New, Read or Load and never mutated afterwards.
//	It is therefore safe to share a *Set between any number of goroutines without
//	additional locking. A nil *Set behaves like an empty set.
//
// Usage
//
//	set, err := wordset.Load("wordlist.txt")
//	if err != nil {
//	    // errors.Is(err, wordset.ErrSourceUnavailable)
//	}
//	set.Contains("CAT") // true if "cat" was in the file
//	set.Size()          // number of distinct words
//
// Source format
//
//   - One word per line, arbitrary case and surrounding whitespace.
//   - Blank lines and lines starting with '#' are skipped.
//
// Errors
//
//   - ErrSourceUnavailable if the file cannot be opened or read.
package wordset
