// Package render turns ladder results and failures into console text:
// arrow-joined uppercase ladders, changed-letter annotations and
// one-line explanations for every failure kind.
package render

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/katalvlaran/wordzzule/ladder"
	"github.com/katalvlaran/wordzzule/wordset"
)

// Arrow separates consecutive words.
const Arrow = " -> "

// Ladder renders l as "CAT -> COT -> DOT -> DOG".
func Ladder(l ladder.Ladder) string {
	if len(l) == 0 {
		return "(empty ladder)"
	}
	upper := make([]string, len(l))
	for i, w := range l {
		upper[i] = strings.ToUpper(w)
	}

	return strings.Join(upper, Arrow)
}

// Annotated renders l with the changed letter before each step:
// "CAT -> (O) COT -> (D) DOT -> (G) DOG".
func Annotated(l ladder.Ladder) string {
	if len(l) < 2 {
		return Ladder(l)
	}
	var b strings.Builder
	b.WriteString(strings.ToUpper(l[0]))
	for i := 1; i < len(l); i++ {
		b.WriteString(Arrow)
		if pos, ok := ladder.Diff(l[i-1], l[i]); ok {
			fmt.Fprintf(&b, "(%c) ", unicode.ToUpper([]rune(l[i])[pos]))
		}
		b.WriteString(strings.ToUpper(l[i]))
	}

	return b.String()
}

// Summary reports the ladder's size in words and steps.
func Summary(l ladder.Ladder) string {
	return fmt.Sprintf("Ladder length: %d words, %d steps", len(l), l.Steps())
}

// Failure explains why no ladder was produced for start → end.
func Failure(start, end string, err error) string {
	start, end = strings.ToUpper(strings.TrimSpace(start)), strings.ToUpper(strings.TrimSpace(end))
	var wErr *ladder.WordNotInDictionaryError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &wErr):
		return fmt.Sprintf("%s word %q is not in the dictionary.", capitalize(wErr.Role), strings.ToUpper(wErr.Word))
	case errors.Is(err, ladder.ErrLengthMismatch):
		return fmt.Sprintf("Start word %q and end word %q must have the same length.", start, end)
	case errors.Is(err, ladder.ErrNotFound):
		return fmt.Sprintf("No word ladder found between %q and %q.", start, end)
	case errors.Is(err, wordset.ErrSourceUnavailable):
		return fmt.Sprintf("Dictionary could not be loaded: %v", err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Sprintf("Search from %q to %q was interrupted: %v", start, end, err)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])

	return string(r)
}
