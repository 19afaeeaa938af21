// Package ladder provides tunable options, result and error definitions
// for word-ladder search.
package ladder

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for ladder search.
var (
	// ErrDictionaryNil is returned if a nil Dictionary is passed.
	ErrDictionaryNil = errors.New("ladder: dictionary is nil")

	// ErrLengthMismatch is returned when start and end differ in length.
	ErrLengthMismatch = errors.New("ladder: start and end words differ in length")

	// ErrWordNotInDictionary is matched by every *WordNotInDictionaryError.
	ErrWordNotInDictionary = errors.New("ladder: word not in dictionary")

	// ErrNotFound is returned when the frontier is exhausted without reaching end.
	// It is an ordinary negative answer for a well-formed query.
	ErrNotFound = errors.New("ladder: no ladder found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ladder: invalid option supplied")

	// ErrInvalidLadder is returned by Verify for malformed ladders.
	ErrInvalidLadder = errors.New("ladder: invalid ladder")
)

// WordNotInDictionaryError names the query word the dictionary rejected.
type WordNotInDictionaryError struct {
	// Word is the normalized word that was looked up.
	Word string
	// Role is "start" or "end".
	Role string
}

func (e *WordNotInDictionaryError) Error() string {
	return fmt.Sprintf("ladder: %s word %q not in dictionary", e.Role, e.Word)
}

// Unwrap lets errors.Is match ErrWordNotInDictionary.
func (e *WordNotInDictionaryError) Unwrap() error { return ErrWordNotInDictionary }

// Dictionary is the query surface Solve needs from a vocabulary.
// Implementations must normalize the query themselves (wordset.Set does).
type Dictionary interface {
	Contains(word string) bool
}

// Ladder is an ordered sequence of words from start to end.
type Ladder []string

// Steps returns the number of edges in the ladder (len-1, never negative).
func (l Ladder) Steps() int {
	if len(l) == 0 {
		return 0
	}

	return len(l) - 1
}

// Option configures Solve via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks that customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, bounds the ladder length in edges.
	// 0 means no limit.
	MaxDepth int

	// Workers, if > 1, parallelizes neighbor lookups per expanded word.
	Workers int

	// ParentLinks switches the frontier to bare words plus a predecessor map.
	ParentLinks bool

	// OnEnqueue is called when a word joins the frontier.
	OnEnqueue func(word string, depth int)

	// OnDequeue is called when a word leaves the frontier, before the target check.
	OnDequeue func(word string, depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no depth limit
//   - sequential neighbor generation
//   - path-queue frontier
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(string, int) {},
		OnDequeue: func(string, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits ladders to at most d edges.
//
//	d > 0: limit to d
//	d == 0: explicit no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithParallelNeighbors spreads the per-position candidate lookups of each
// expanded word over n goroutines. 0 and 1 mean sequential; n < 0 is invalid.
// The neighbor order, and so the result, is the same as the sequential search.
func WithParallelNeighbors(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: worker count cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithParentLinks stores a predecessor per visited word instead of whole
// partial ladders on the frontier.
func WithParentLinks() Option {
	return func(o *Options) { o.ParentLinks = true }
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(word string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(word string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}
