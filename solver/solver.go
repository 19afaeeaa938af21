// Package solver composes a dictionary, ladder search, an optional result
// cache, metrics and logging into the single entry point used by the CLI
// and the HTTP API.
package solver

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/katalvlaran/wordzzule/cache"
	"github.com/katalvlaran/wordzzule/ladder"
	"github.com/katalvlaran/wordzzule/logging"
	"github.com/katalvlaran/wordzzule/metrics"
	"github.com/katalvlaran/wordzzule/wordset"
)

// Solver answers ladder queries against one dictionary.
// It holds no per-query state and is safe for concurrent use.
type Solver struct {
	dict       *wordset.Set
	cache      *cache.Cache
	metrics    *metrics.Metrics
	logger     *slog.Logger
	searchOpts []ladder.Option
	onEnqueue  func(word string, depth int)
}

// Option configures a Solver.
type Option func(*Solver)

// WithCache enables result caching.
func WithCache(c *cache.Cache) Option {
	return func(s *Solver) { s.cache = c }
}

// WithMetrics records solve outcomes.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Solver) { s.metrics = m }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSearchOptions appends ladder options applied to every search.
// The context passed to Solve replaces any ladder.WithContext given here.
// An OnEnqueue hook still runs, after the solver's own visit counting.
func WithSearchOptions(opts ...ladder.Option) Option {
	return func(s *Solver) { s.searchOpts = append(s.searchOpts, opts...) }
}

// New builds a Solver over dict. A nil dict is treated as empty.
func New(dict *wordset.Set, opts ...Option) *Solver {
	if dict == nil {
		dict = wordset.New(nil)
	}
	s := &Solver{dict: dict, logger: logging.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "solver")
	o := ladder.DefaultOptions()
	for _, opt := range s.searchOpts {
		opt(&o)
	}
	s.onEnqueue = o.OnEnqueue
	s.metrics.SetDictionarySize(dict.Size())

	return s
}

// Dictionary returns the vocabulary the solver searches.
func (s *Solver) Dictionary() *wordset.Set {
	return s.dict
}

// Solve returns a shortest ladder from start to end, with the same error
// contract as ladder.Solve. ctx bounds cache I/O and the wait for an
// answer. With a cache, the search itself may be shared with concurrent
// callers and is not cancelled by ctx alone.
func (s *Solver) Solve(ctx context.Context, start, end string) (ladder.Ladder, error) {
	began := time.Now()
	start, end = wordset.Normalize(start), wordset.Normalize(end)

	var (
		l   ladder.Ladder
		hit bool
		err error
	)
	if s.cache != nil {
		l, hit, err = s.cache.GetOrCompute(ctx, s.dict.Fingerprint(), start, end, func(ctx context.Context) (ladder.Ladder, error) {
			return s.search(ctx, start, end)
		})
	} else {
		l, err = s.search(ctx, start, end)
	}

	elapsed := time.Since(began)
	s.metrics.ObserveSolve(classify(err), elapsed)
	log := s.logger.With("start", start, "end", end, "cached", hit, "elapsed", elapsed)
	switch {
	case err == nil:
		s.metrics.ObserveLadder(l.Steps())
		log.Debug("ladder found", "steps", l.Steps())
	case classify(err) == metrics.ResultError:
		log.Warn("solve failed", "error", err)
	default:
		log.Debug("no ladder", "reason", err)
	}

	return l, err
}

// search runs one uncached BFS and records how many words it enqueued.
func (s *Solver) search(ctx context.Context, start, end string) (ladder.Ladder, error) {
	visited := 0
	opts := append(slices.Clone(s.searchOpts),
		ladder.WithContext(ctx),
		ladder.WithOnEnqueue(func(word string, depth int) {
			visited++
			s.onEnqueue(word, depth)
		}),
	)
	l, err := ladder.Solve(start, end, s.dict, opts...)
	if visited > 0 {
		s.metrics.ObserveVisited(visited)
	}

	return l, err
}

// classify maps a Solve error to its metrics label.
func classify(err error) string {
	switch {
	case err == nil:
		return metrics.ResultFound
	case errors.Is(err, ladder.ErrNotFound):
		return metrics.ResultNotFound
	case errors.Is(err, ladder.ErrLengthMismatch):
		return metrics.ResultLength
	case errors.Is(err, ladder.ErrWordNotInDictionary):
		return metrics.ResultNotInDict
	default:
		return metrics.ResultError
	}
}
