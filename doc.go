// Package wordzzule finds the shortest word ladder between two words:
// change one letter at a time, and every intermediate step must be a word.
//
//	CAT -> COT -> DOT -> DOG
//
// What is inside?
//
//   - wordset/ : the normalized, read-only dictionary with O(1) lookups
//   - ladder/  : breadth-first search over one-letter substitutions
//   - render/  : arrow-joined output, changed-letter annotations, failure text
//   - solver/  : dictionary + search + cache + metrics + logging in one call
//   - cache/   : Redis result cache keyed by dictionary fingerprint
//   - httpapi/ : GET /ladder, /healthz and /metrics
//   - config/, logging/, metrics/: YAML/env settings, slog, Prometheus
//   - cmd/wordzzule: the solve, play, serve and version commands
//
// Quick example:
//
//	dict := wordset.New([]string{"cat", "cot", "dot", "dog"})
//	l, err := ladder.Solve("cat", "dog", dict)
//	// l == ladder.Ladder{"cat", "cot", "dot", "dog"}, err == nil
//
// Only substitutions are modelled; ladders that need a letter inserted or
// removed are out of scope.
//
//	go install github.com/katalvlaran/wordzzule/cmd/wordzzule@latest
package wordzzule
