package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/wordzzule/ladder"
	"github.com/katalvlaran/wordzzule/render"
)

func newPlayCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Ask for start and end words in a loop and print each ladder",
		Long: `Loads the dictionary, then repeatedly prompts for a START and an END word
and prints the shortest ladder between them. Type "quit" or send EOF to stop.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			render.Banner(out, a.styler)
			fmt.Fprintf(out, "Loading dictionary from %q...\n", a.cfg.Dictionary.Path)

			s, cleanup, err := a.loadSolver(cmd.Context())
			if err != nil {
				return newFailure("", "", err)
			}
			defer cleanup()
			fmt.Fprintf(out, "Dictionary loaded successfully! %d words available.\n\n", s.Dictionary().Size())

			p := &session{
				in:     bufio.NewScanner(cmd.InOrStdin()),
				out:    out,
				solve:  s.Solve,
				styler: a.styler,
				prompt: isTerminal(cmd.InOrStdin()),
			}

			return p.run(cmd.Context())
		},
	}
}

// session is one interactive prompt/response loop.
type session struct {
	in     *bufio.Scanner
	out    io.Writer
	solve  func(ctx context.Context, start, end string) (ladder.Ladder, error)
	styler render.Styler
	prompt bool
}

// run asks for word pairs until EOF, "quit" or "exit".
func (p *session) run(ctx context.Context) error {
	for {
		start, ok := p.ask("Enter the START word:")
		if !ok {
			break
		}
		end, ok := p.ask("Enter the END word:")
		if !ok {
			break
		}
		p.answer(ctx, start, end)
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	fmt.Fprintln(p.out, "Thank you for using Wordzzule!")

	return p.in.Err()
}

// ask prints q (when prompting) and reads one trimmed line.
func (p *session) ask(q string) (string, bool) {
	if p.prompt {
		fmt.Fprintln(p.out, q)
		fmt.Fprint(p.out, "> ")
	}
	if !p.in.Scan() {
		return "", false
	}
	word := strings.TrimSpace(p.in.Text())
	switch strings.ToLower(word) {
	case "quit", "exit":
		return "", false
	}

	return word, true
}

// answer solves one query and prints the ladder or the reason there is none.
func (p *session) answer(ctx context.Context, start, end string) {
	fmt.Fprintf(p.out, "\nSearching for word ladder from %q to %q...\n\n",
		strings.ToUpper(start), strings.ToUpper(end))

	l, err := p.solve(ctx, start, end)
	if err != nil {
		fmt.Fprintln(p.out, p.styler.Failure(render.Failure(start, end, err)))
		fmt.Fprintln(p.out)
		return
	}
	fmt.Fprintln(p.out, p.styler.Success("SUCCESS! Word ladder found:"))
	fmt.Fprintln(p.out, render.Annotated(l))
	fmt.Fprintln(p.out, p.styler.Muted(render.Summary(l)))
	fmt.Fprintln(p.out)
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
