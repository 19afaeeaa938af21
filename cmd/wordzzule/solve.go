package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordzzule/render"
)

func newSolveCmd(flags *rootFlags) *cobra.Command {
	var annotate bool
	cmd := &cobra.Command{
		Use:   "solve START END",
		Short: "Find one shortest ladder from START to END",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, flags)
			if err != nil {
				return err
			}
			s, cleanup, err := a.loadSolver(cmd.Context())
			if err != nil {
				return newFailure("", "", err)
			}
			defer cleanup()

			start, end := args[0], args[1]
			l, err := s.Solve(cmd.Context(), start, end)
			if err != nil {
				return newFailure(start, end, err)
			}

			out := cmd.OutOrStdout()
			if annotate {
				fmt.Fprintln(out, a.styler.Success(render.Annotated(l)))
			} else {
				fmt.Fprintln(out, a.styler.Success(render.Ladder(l)))
			}
			fmt.Fprintln(out, a.styler.Muted(render.Summary(l)))

			return nil
		},
	}
	cmd.Flags().BoolVarP(&annotate, "annotate", "a", false, "show the changed letter before each step")

	return cmd
}
