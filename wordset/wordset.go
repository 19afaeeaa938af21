package wordset

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// Normalize trims surrounding whitespace and lowercases w.
// It is the single normalization rule shared by building and querying.
func Normalize(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}

// Contains reports whether the normalized form of word is in the set.
// Complexity: O(len(word)) for normalization, O(1) expected for the lookup.
func (s *Set) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[Normalize(word)]

	return ok
}

// Size returns the number of distinct words.
func (s *Set) Size() int {
	if s == nil {
		return 0
	}

	return len(s.words)
}

// Words returns a sorted copy of the vocabulary.
// The result is owned by the caller.
func (s *Set) Words() []string {
	if s == nil {
		return []string{}
	}
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	sort.Strings(out)

	return out
}

// Fingerprint returns a stable hex digest of the set's contents.
// Two sets holding the same words share a fingerprint regardless of the
// order or case they were built from. The digest is computed once.
func (s *Set) Fingerprint() string {
	if s == nil {
		return ""
	}
	s.once.Do(func() {
		h := sha256.New()
		for _, w := range s.Words() {
			h.Write([]byte(w))
			h.Write([]byte{'\n'})
		}
		s.fingerprint = hex.EncodeToString(h.Sum(nil))
	})

	return s.fingerprint
}
