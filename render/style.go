package render

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Styler colours console output. Build one with NewStyler.
type Styler struct {
	profile termenv.Profile
}

// NewStyler returns a Styler using the terminal's colour profile when
// color is true, and plain ASCII otherwise.
func NewStyler(color bool) Styler {
	if !color {
		return Styler{profile: termenv.Ascii}
	}

	return Styler{profile: termenv.ColorProfile()}
}

// Success highlights a found ladder.
func (s Styler) Success(text string) string {
	return s.paint(text, "#22c55e", true)
}

// Failure highlights an error or negative answer.
func (s Styler) Failure(text string) string {
	return s.paint(text, "#f87171", false)
}

// Muted de-emphasizes secondary text such as summaries and prompts.
func (s Styler) Muted(text string) string {
	return s.paint(text, "#94a3b8", false)
}

func (s Styler) paint(text, hex string, bold bool) string {
	st := s.profile.String(text).Foreground(s.profile.Color(hex))
	if bold {
		st = st.Bold()
	}

	return st.String()
}

// Banner writes the interactive-mode greeting.
func Banner(w io.Writer, s Styler) {
	fmt.Fprintln(w, s.Muted("==============================================="))
	fmt.Fprintln(w, s.Success("    Wordzzule - the word ladder solver"))
	fmt.Fprintln(w, s.Muted("==============================================="))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Find the shortest path between two words by changing")
	fmt.Fprintln(w, "one letter at a time. Every step must be a valid word!")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Example: "+Ladder([]string{"cat", "cot", "dot", "dog"}))
	fmt.Fprintln(w)
}
