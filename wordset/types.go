// Package wordset defines the Set type and its sentinel errors.
package wordset

import (
	"errors"
	"strings"
	"sync"
)

// ErrSourceUnavailable is returned when a word source cannot be opened or read.
var ErrSourceUnavailable = errors.New("wordset: dictionary source unavailable")

// commentPrefix marks lines in a word source that are ignored.
const commentPrefix = "#"

// Set is an immutable-after-build set of lowercase words.
//
// words maps each normalized word to an empty struct.
// fingerprint is computed on first use and cached; once guards it.
type Set struct {
	words map[string]struct{}

	once        sync.Once
	fingerprint string
}

// New builds a Set from words. Each word is trimmed and lowercased;
// empty strings and '#' comments are dropped and duplicates collapse,
// so New and Read agree on the same lines.
// New never fails: empty input yields an empty Set.
// Complexity: O(n) over the total input length.
func New(words []string) *Set {
	s := &Set{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		s.add(w)
	}

	return s
}

// add inserts the normalized form of w; used only during construction.
func (s *Set) add(w string) {
	n := Normalize(w)
	if n == "" || strings.HasPrefix(n, commentPrefix) {
		return
	}
	s.words[n] = struct{}{}
}
