package cache_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/wordzzule/cache"
	"github.com/katalvlaran/wordzzule/ladder"
	"github.com/katalvlaran/wordzzule/metrics"
)

const fp = "f00d"

// CacheSuite runs the cache against an in-process Redis.
type CacheSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	cache   *cache.Cache
	metrics *metrics.Metrics
	ctx     context.Context
}

func (s *CacheSuite) SetupTest() {
	mr, err := miniredis.Run()
	require.NoError(s.T(), err)
	s.mr = mr
	s.metrics = metrics.New(prometheus.NewRegistry())
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	s.cache = cache.NewFromClient(client,
		cache.WithTTL(time.Minute),
		cache.WithPrefix("test:"),
		cache.WithMetrics(s.metrics),
	)
	s.ctx = context.Background()
}

func (s *CacheSuite) TearDownTest() {
	_ = s.cache.Close()
	s.mr.Close()
}

// counting returns a compute func that yields res/err and counts calls.
func counting(calls *int32, res ladder.Ladder, err error) func(context.Context) (ladder.Ladder, error) {
	return func(context.Context) (ladder.Ladder, error) {
		atomic.AddInt32(calls, 1)
		return res, err
	}
}

func (s *CacheSuite) TestPing() {
	require.NoError(s.T(), s.cache.Ping(s.ctx))
}

func (s *CacheSuite) TestKey() {
	require.Equal(s.T(), "test:ladder:f00d:cat:dog", s.cache.Key(fp, "cat", "dog"))
}

// TestMissThenHit computes once and serves the second call from Redis.
func (s *CacheSuite) TestMissThenHit() {
	var calls int32
	want := ladder.Ladder{"cat", "cot", "dot", "dog"}

	got, hit, err := s.cache.GetOrCompute(s.ctx, fp, "cat", "dog", counting(&calls, want, nil))
	require.NoError(s.T(), err)
	require.False(s.T(), hit)
	require.Equal(s.T(), want, got)

	got, hit, err = s.cache.GetOrCompute(s.ctx, fp, "cat", "dog", counting(&calls, nil, nil))
	require.NoError(s.T(), err)
	require.True(s.T(), hit)
	require.Equal(s.T(), want, got)
	require.EqualValues(s.T(), 1, calls)

	require.Equal(s.T(), 1.0, testutil.ToFloat64(s.metrics.CacheRequests.WithLabelValues(metrics.CacheHit)))
	require.Equal(s.T(), 1.0, testutil.ToFloat64(s.metrics.CacheRequests.WithLabelValues(metrics.CacheMiss)))
	require.Equal(s.T(), time.Minute, s.mr.TTL(s.cache.Key(fp, "cat", "dog")))
}

// TestNotFoundIsCached stores negative answers too.
func (s *CacheSuite) TestNotFoundIsCached() {
	var calls int32
	for i := 0; i < 3; i++ {
		_, _, err := s.cache.GetOrCompute(s.ctx, fp, "cat", "run", counting(&calls, nil, ladder.ErrNotFound))
		require.ErrorIs(s.T(), err, ladder.ErrNotFound)
	}
	require.EqualValues(s.T(), 1, calls)
}

// TestValidationErrorsNotCached recomputes failures other than ErrNotFound.
func (s *CacheSuite) TestValidationErrorsNotCached() {
	var calls int32
	for i := 0; i < 2; i++ {
		_, _, err := s.cache.GetOrCompute(s.ctx, fp, "cat", "dogs", counting(&calls, nil, ladder.ErrLengthMismatch))
		require.ErrorIs(s.T(), err, ladder.ErrLengthMismatch)
	}
	require.EqualValues(s.T(), 2, calls)
	require.False(s.T(), s.mr.Exists(s.cache.Key(fp, "cat", "dogs")))
}

// TestExpiry recomputes after the TTL passes.
func (s *CacheSuite) TestExpiry() {
	var calls int32
	compute := counting(&calls, ladder.Ladder{"hit", "hat"}, nil)
	_, _, err := s.cache.GetOrCompute(s.ctx, fp, "hit", "hat", compute)
	require.NoError(s.T(), err)
	s.mr.FastForward(2 * time.Minute)
	_, hit, err := s.cache.GetOrCompute(s.ctx, fp, "hit", "hat", compute)
	require.NoError(s.T(), err)
	require.False(s.T(), hit)
	require.EqualValues(s.T(), 2, calls)
}

// TestFingerprintsAreIsolated keeps answers of different dictionaries apart.
func (s *CacheSuite) TestFingerprintsAreIsolated() {
	var calls int32
	_, _, _ = s.cache.GetOrCompute(s.ctx, "a", "cat", "dog", counting(&calls, ladder.Ladder{"cat", "dog"}, nil))
	_, hit, _ := s.cache.GetOrCompute(s.ctx, "b", "cat", "dog", counting(&calls, ladder.Ladder{"cat", "dog"}, nil))
	require.False(s.T(), hit)
	require.EqualValues(s.T(), 2, calls)
}

// TestReturnedLadderIsACopy makes sure callers cannot corrupt shared answers.
func (s *CacheSuite) TestReturnedLadderIsACopy() {
	var calls int32
	got, _, err := s.cache.GetOrCompute(s.ctx, fp, "cat", "cot", counting(&calls, ladder.Ladder{"cat", "cot"}, nil))
	require.NoError(s.T(), err)
	got[0] = "zzz"
	again, hit, err := s.cache.GetOrCompute(s.ctx, fp, "cat", "cot", counting(&calls, nil, nil))
	require.NoError(s.T(), err)
	require.True(s.T(), hit)
	require.Equal(s.T(), ladder.Ladder{"cat", "cot"}, again)
}

// TestCorruptEntryDegradesToMiss treats undecodable values as a miss.
func (s *CacheSuite) TestCorruptEntryDegradesToMiss() {
	require.NoError(s.T(), s.mr.Set(s.cache.Key(fp, "cat", "dog"), "{not json"))
	var calls int32
	got, hit, err := s.cache.GetOrCompute(s.ctx, fp, "cat", "dog", counting(&calls, ladder.Ladder{"cat", "dog"}, nil))
	require.NoError(s.T(), err)
	require.False(s.T(), hit)
	require.Equal(s.T(), ladder.Ladder{"cat", "dog"}, got)
	require.Equal(s.T(), 1.0, testutil.ToFloat64(s.metrics.CacheRequests.WithLabelValues(metrics.CacheError)))
}

// TestRedisDown still answers by computing.
func (s *CacheSuite) TestRedisDown() {
	s.mr.Close()
	var calls int32
	got, hit, err := s.cache.GetOrCompute(s.ctx, fp, "cat", "dog", counting(&calls, ladder.Ladder{"cat", "dog"}, nil))
	require.NoError(s.T(), err)
	require.False(s.T(), hit)
	require.Equal(s.T(), ladder.Ladder{"cat", "dog"}, got)
	require.Error(s.T(), s.cache.Ping(s.ctx))
}

// TestInvalidate removes only keys of the given fingerprint.
func (s *CacheSuite) TestInvalidate() {
	require.NoError(s.T(), s.cache.Set(s.ctx, s.cache.Key(fp, "a", "b"), cache.Entry{}))
	require.NoError(s.T(), s.cache.Set(s.ctx, s.cache.Key(fp, "c", "d"), cache.Entry{}))
	require.NoError(s.T(), s.cache.Set(s.ctx, s.cache.Key("other", "a", "b"), cache.Entry{}))

	n, err := s.cache.Invalidate(s.ctx, fp)
	require.NoError(s.T(), err)
	require.EqualValues(s.T(), 2, n)
	require.True(s.T(), s.mr.Exists(s.cache.Key("other", "a", "b")))
}

// TestConcurrentCallers all receive the same answer.
func (s *CacheSuite) TestConcurrentCallers() {
	var calls int32
	compute := func(context.Context) (ladder.Ladder, error) {
		atomic.AddInt32(&calls, 1)
		time.Sleep(20 * time.Millisecond)
		return ladder.Ladder{"cat", "cot"}, nil
	}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, _, err := s.cache.GetOrCompute(s.ctx, fp, "cat", "cot", compute)
			assert.NoError(s.T(), err)
			assert.Equal(s.T(), ladder.Ladder{"cat", "cot"}, got)
		}()
	}
	wg.Wait()
	require.GreaterOrEqual(s.T(), atomic.LoadInt32(&calls), int32(1))
	require.LessOrEqual(s.T(), atomic.LoadInt32(&calls), int32(8))
}

// TestCancelledCallerLeavesSharedSearchRunning cancels the caller that
// started a search while another caller waits on the same key.
func (s *CacheSuite) TestCancelledCallerLeavesSharedSearchRunning() {
	var (
		calls   int32
		once    sync.Once
		started = make(chan struct{})
		release = make(chan struct{})
	)
	want := ladder.Ladder{"cat", "cot", "dot", "dog"}
	compute := func(ctx context.Context) (ladder.Ladder, error) {
		atomic.AddInt32(&calls, 1)
		once.Do(func() { close(started) })
		select {
		case <-release:
			return want, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	firstCtx, cancel := context.WithCancel(s.ctx)
	defer cancel()
	firstErr := make(chan error, 1)
	go func() {
		_, _, err := s.cache.GetOrCompute(firstCtx, fp, "cat", "dog", compute)
		firstErr <- err
	}()
	<-started

	type result struct {
		l   ladder.Ladder
		err error
	}
	second := make(chan result, 1)
	go func() {
		l, _, err := s.cache.GetOrCompute(s.ctx, fp, "cat", "dog", compute)
		second <- result{l, err}
	}()
	time.Sleep(50 * time.Millisecond)

	cancel()
	require.ErrorIs(s.T(), <-firstErr, context.Canceled)

	close(release)
	got := <-second
	require.NoError(s.T(), got.err)
	require.Equal(s.T(), want, got.l)
	require.EqualValues(s.T(), 1, atomic.LoadInt32(&calls))
	require.True(s.T(), s.mr.Exists(s.cache.Key(fp, "cat", "dog")))
}

// TestComputeTimeout bounds a search nobody cancels.
func (s *CacheSuite) TestComputeTimeout() {
	c := cache.NewFromClient(backend.NewClient(&backend.Options{Addr: s.mr.Addr()}),
		cache.WithComputeTimeout(10*time.Millisecond),
	)
	defer c.Close()

	_, _, err := c.GetOrCompute(s.ctx, fp, "cat", "dog", func(ctx context.Context) (ladder.Ladder, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	require.ErrorIs(s.T(), err, context.DeadlineExceeded)
	require.False(s.T(), s.mr.Exists(c.Key(fp, "cat", "dog")))
}

// TestCancelledBeforeLookup returns at once without computing.
func (s *CacheSuite) TestCancelledBeforeLookup() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	var calls int32
	_, _, err := s.cache.GetOrCompute(ctx, fp, "cat", "dog", counting(&calls, ladder.Ladder{"cat", "dog"}, nil))
	require.ErrorIs(s.T(), err, context.Canceled)
	require.Zero(s.T(), calls)
}

func TestCacheSuite(t *testing.T) {
	suite.Run(t, new(CacheSuite))
}
