package ladder

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// alphabet bounds the substitution letters, inclusive.
const (
	firstLetter = 'a'
	lastLetter  = 'z'
)

// Neighbors returns every dictionary word that differs from word in exactly
// one position, ordered by position then letter. word is expected to be
// normalized already. A nil dict yields no neighbors.
// Complexity: O(L × 25) lookups.
func Neighbors(word string, dict Dictionary) []string {
	if dict == nil {
		return nil
	}
	runes := []rune(word)
	var out []string
	for p := range runes {
		out = append(out, substitutions(runes, p, dict)...)
	}

	return out
}

// substitutions tries every letter except the current one at position p.
// runes is never modified; each call works on its own buffer.
func substitutions(runes []rune, p int, dict Dictionary) []string {
	buf := make([]rune, len(runes))
	copy(buf, runes)
	orig := buf[p]

	var out []string
	for c := rune(firstLetter); c <= lastLetter; c++ {
		if c == orig {
			continue
		}
		buf[p] = c
		if cand := string(buf); dict.Contains(cand) {
			out = append(out, cand)
		}
	}

	return out
}

// parallelNeighbors computes the same list as Neighbors with one task per
// position, at most workers at a time. Per-position results are stitched
// back in position order so the output matches the sequential one exactly.
func parallelNeighbors(ctx context.Context, word string, dict Dictionary, workers int) ([]string, error) {
	runes := []rune(word)
	perPos := make([][]string, len(runes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for p := range runes {
		p := p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			perPos[p] = substitutions(runes, p, dict)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []string
	for _, ns := range perPos {
		out = append(out, ns...)
	}

	return out, nil
}
