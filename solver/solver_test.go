package solver_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordzzule/cache"
	"github.com/katalvlaran/wordzzule/ladder"
	"github.com/katalvlaran/wordzzule/logging"
	"github.com/katalvlaran/wordzzule/metrics"
	"github.com/katalvlaran/wordzzule/solver"
	"github.com/katalvlaran/wordzzule/wordset"
)

var words = []string{"cat", "cot", "cog", "dog", "dot", "dit", "hit", "hot", "hat", "bat", "bit", "run"}

func TestSolve_Outcomes(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	s := solver.New(wordset.New(words), solver.WithMetrics(m))
	ctx := context.Background()

	l, err := s.Solve(ctx, " CAT ", "Dog")
	require.NoError(t, err)
	require.Equal(t, ladder.Ladder{"cat", "cot", "dot", "dog"}, l)

	_, err = s.Solve(ctx, "cat", "run")
	require.ErrorIs(t, err, ladder.ErrNotFound)
	_, err = s.Solve(ctx, "cat", "dogs")
	require.ErrorIs(t, err, ladder.ErrLengthMismatch)
	_, err = s.Solve(ctx, "cat", "xyz")
	require.ErrorIs(t, err, ladder.ErrWordNotInDictionary)

	for label, want := range map[string]float64{
		metrics.ResultFound:     1,
		metrics.ResultNotFound:  1,
		metrics.ResultLength:    1,
		metrics.ResultNotInDict: 1,
		metrics.ResultError:     0,
	} {
		require.Equal(t, want, testutil.ToFloat64(m.SolvesTotal.WithLabelValues(label)), label)
	}
	require.Equal(t, float64(len(words)), testutil.ToFloat64(m.DictionaryWords))
}

func TestSolve_SearchOptionsApplied(t *testing.T) {
	s := solver.New(wordset.New(words), solver.WithSearchOptions(ladder.WithMaxDepth(2)))
	_, err := s.Solve(context.Background(), "cat", "dog")
	require.ErrorIs(t, err, ladder.ErrNotFound)
}

func TestSolve_CancelledContext(t *testing.T) {
	var buf bytes.Buffer
	s := solver.New(wordset.New(words), solver.WithLogger(logging.New(&buf, slog.LevelDebug, "text")))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Solve(ctx, "cat", "dog")
	require.ErrorIs(t, err, context.Canceled)
	require.Contains(t, buf.String(), "solve failed")
	require.Contains(t, buf.String(), "component=solver")
}

func TestSolve_WithCache(t *testing.T) {
	mr := miniredis.RunT(t)
	m := metrics.New(prometheus.NewRegistry())
	c := cache.NewFromClient(backend.NewClient(&backend.Options{Addr: mr.Addr()}), cache.WithMetrics(m))
	dict := wordset.New(words)
	s := solver.New(dict, solver.WithCache(c), solver.WithMetrics(m))
	ctx := context.Background()

	first, err := s.Solve(ctx, "cat", "dog")
	require.NoError(t, err)
	second, err := s.Solve(ctx, "CAT", "dog")
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.True(t, mr.Exists(c.Key(dict.Fingerprint(), "cat", "dog")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.CacheRequests.WithLabelValues(metrics.CacheHit)))
}

func TestSolve_EnqueueHookChained(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	var seen []string
	s := solver.New(wordset.New(words),
		solver.WithMetrics(m),
		solver.WithSearchOptions(ladder.WithOnEnqueue(func(w string, _ int) { seen = append(seen, w) })),
	)
	_, err := s.Solve(context.Background(), "cat", "dog")
	require.NoError(t, err)
	require.Equal(t, "cat", seen[0])
	require.Contains(t, seen, "dog")
}

// TestSolve_SharedSearchOutlivesCancelledCaller has a second caller join a
// cached search whose first caller is then cancelled.
func TestSolve_SharedSearchOutlivesCancelledCaller(t *testing.T) {
	mr := miniredis.RunT(t)
	c := cache.NewFromClient(backend.NewClient(&backend.Options{Addr: mr.Addr()}))
	var (
		once    sync.Once
		started = make(chan struct{})
		release = make(chan struct{})
	)
	s := solver.New(wordset.New(words),
		solver.WithCache(c),
		solver.WithSearchOptions(ladder.WithOnDequeue(func(string, int) {
			once.Do(func() { close(started) })
			<-release
		})),
	)

	firstCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	firstErr := make(chan error, 1)
	go func() {
		_, err := s.Solve(firstCtx, "cat", "dog")
		firstErr <- err
	}()
	<-started

	type result struct {
		l   ladder.Ladder
		err error
	}
	second := make(chan result, 1)
	go func() {
		l, err := s.Solve(context.Background(), "cat", "dog")
		second <- result{l, err}
	}()
	time.Sleep(50 * time.Millisecond)

	cancel()
	require.ErrorIs(t, <-firstErr, context.Canceled)

	close(release)
	got := <-second
	require.NoError(t, got.err)
	require.Equal(t, ladder.Ladder{"cat", "cot", "dot", "dog"}, got.l)
}

func TestSolve_NilDictionary(t *testing.T) {
	s := solver.New(nil)
	require.Zero(t, s.Dictionary().Size())
	_, err := s.Solve(context.Background(), "cat", "dog")
	require.ErrorIs(t, err, ladder.ErrWordNotInDictionary)
}

func TestSolve_Concurrent(t *testing.T) {
	s := solver.New(wordset.New(words), solver.WithSearchOptions(ladder.WithParallelNeighbors(2)))
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l, err := s.Solve(context.Background(), "hit", "cog")
			assert.NoError(t, err)
			assert.Len(t, l, 4)
		}()
	}
	wg.Wait()
}
