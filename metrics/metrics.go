// Package metrics defines the Prometheus collectors recorded by the solver
// and exposes an HTTP handler for scraping.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "wordzzule"

// Solve outcome labels.
const (
	ResultFound     = "found"
	ResultNotFound  = "not_found"
	ResultLength    = "length_mismatch"
	ResultNotInDict = "word_not_in_dictionary"
	ResultError     = "error"
	CacheHit        = "hit"
	CacheMiss       = "miss"
	CacheError      = "error"
)

// Metrics holds all collectors. A nil *Metrics records nothing.
type Metrics struct {
	SolvesTotal     *prometheus.CounterVec
	SolveDuration   prometheus.Histogram
	LadderSteps     prometheus.Histogram
	WordsVisited    prometheus.Histogram
	DictionaryWords prometheus.Gauge
	CacheRequests   *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
// Pass prometheus.NewRegistry() in tests to avoid global state.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SolvesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "solves_total",
				Help:      "Ladder queries by outcome.",
			},
			[]string{"result"},
		),
		SolveDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "solve_duration_seconds",
				Help:      "Ladder query latency in seconds, cache lookups included.",
				Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
		),
		LadderSteps: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "ladder_steps",
				Help:      "Edges in returned ladders.",
				Buckets:   prometheus.LinearBuckets(0, 2, 10),
			},
		),
		WordsVisited: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "words_visited",
				Help:      "Words enqueued per uncached search.",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
			},
		),
		DictionaryWords: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "dictionary_words",
				Help:      "Distinct words in the loaded dictionary.",
			},
		),
		CacheRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_requests_total",
				Help:      "Result cache lookups by outcome (hit, miss, error).",
			},
			[]string{"result"},
		),
	}
	if reg != nil {
		reg.MustRegister(
			m.SolvesTotal,
			m.SolveDuration,
			m.LadderSteps,
			m.WordsVisited,
			m.DictionaryWords,
			m.CacheRequests,
		)
	}

	return m
}

// ObserveSolve records one query's outcome and latency.
func (m *Metrics) ObserveSolve(result string, d time.Duration) {
	if m == nil {
		return
	}
	m.SolvesTotal.WithLabelValues(result).Inc()
	m.SolveDuration.Observe(d.Seconds())
}

// ObserveLadder records the step count of a returned ladder.
func (m *Metrics) ObserveLadder(steps int) {
	if m == nil {
		return
	}
	m.LadderSteps.Observe(float64(steps))
}

// ObserveVisited records how many words one search enqueued.
func (m *Metrics) ObserveVisited(n int) {
	if m == nil {
		return
	}
	m.WordsVisited.Observe(float64(n))
}

// SetDictionarySize publishes the dictionary size.
func (m *Metrics) SetDictionarySize(n int) {
	if m == nil {
		return
	}
	m.DictionaryWords.Set(float64(n))
}

// ObserveCache counts a cache lookup outcome.
func (m *Metrics) ObserveCache(result string) {
	if m == nil {
		return
	}
	m.CacheRequests.WithLabelValues(result).Inc()
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
