package ladder

import (
	"fmt"
	"unicode/utf8"
)

// Diff returns the single position at which a and b differ.
// ok is false when the lengths differ or the words differ in zero or more
// than one position.
func Diff(a, b string) (pos int, ok bool) {
	if utf8.RuneCountInString(a) != utf8.RuneCountInString(b) {
		return -1, false
	}
	ra, rb := []rune(a), []rune(b)
	pos = -1
	for i := range ra {
		if ra[i] == rb[i] {
			continue
		}
		if pos >= 0 {
			return -1, false
		}
		pos = i
	}

	return pos, pos >= 0
}

// Verify checks that l is a well-formed ladder under dict: non-empty, every
// word a member, and every adjacent pair exactly one substitution apart.
// Violations wrap ErrInvalidLadder.
func Verify(l Ladder, dict Dictionary) error {
	if dict == nil {
		return ErrDictionaryNil
	}
	if len(l) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidLadder)
	}
	for i, word := range l {
		if !dict.Contains(word) {
			return fmt.Errorf("%w: word %d %q not in dictionary", ErrInvalidLadder, i, word)
		}
		if i == 0 {
			continue
		}
		if _, ok := Diff(l[i-1], word); !ok {
			return fmt.Errorf("%w: %q -> %q is not a single-letter change", ErrInvalidLadder, l[i-1], word)
		}
	}

	return nil
}
