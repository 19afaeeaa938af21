// Package httpapi exposes ladder queries over HTTP.
//
//	GET /ladder?start=cat&end=dog  → 200 with the ladder, or an error body
//	GET /healthz                   → 200 {"status":"ok","words":N}
//	GET /metrics                   → Prometheus exposition (when a gatherer is set)
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/wordzzule/ladder"
	"github.com/katalvlaran/wordzzule/logging"
	"github.com/katalvlaran/wordzzule/metrics"
	"github.com/katalvlaran/wordzzule/render"
	"github.com/katalvlaran/wordzzule/wordset"
)

// Error codes returned in ErrorResponse.Code.
const (
	CodeBadRequest     = "bad_request"
	CodeLengthMismatch = "length_mismatch"
	CodeNotInDict      = "word_not_in_dictionary"
	CodeNotFound       = "not_found"
	CodeCancelled      = "cancelled"
	CodeInternal       = "internal"
)

// Solver is what the API needs from the solver service.
type Solver interface {
	Solve(ctx context.Context, start, end string) (ladder.Ladder, error)
	Dictionary() *wordset.Set
}

// LadderResponse is the body of a successful /ladder call.
type LadderResponse struct {
	Start   string        `json:"start"`
	End     string        `json:"end"`
	Ladder  ladder.Ladder `json:"ladder"`
	Steps   int           `json:"steps"`
	Display string        `json:"display"`
}

// ErrorResponse is the body of every failed call.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HealthResponse is the body of /healthz.
type HealthResponse struct {
	Status string `json:"status"`
	Words  int    `json:"words"`
}

// Server holds the handler dependencies.
type Server struct {
	solver Solver
	logger *slog.Logger
}

// Option configures NewHandler.
type Option func(*handlerConfig)

type handlerConfig struct {
	logger   *slog.Logger
	gatherer prometheus.Gatherer
}

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *handlerConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics mounts /metrics serving g.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(c *handlerConfig) { c.gatherer = g }
}

// NewHandler builds the router.
func NewHandler(s Solver, opts ...Option) http.Handler {
	cfg := handlerConfig{logger: logging.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	srv := &Server{solver: s, logger: cfg.logger.With("component", "http")}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(srv.logRequests)

	r.Get("/ladder", srv.Ladder)
	r.Get("/healthz", srv.Health)
	if cfg.gatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(cfg.gatherer))
	}

	return r
}

// Ladder handles GET /ladder.
func (s *Server) Ladder(w http.ResponseWriter, r *http.Request) {
	start := strings.TrimSpace(r.URL.Query().Get("start"))
	end := strings.TrimSpace(r.URL.Query().Get("end"))
	if start == "" || end == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error: "query parameters start and end are required",
			Code:  CodeBadRequest,
		})
		return
	}

	l, err := s.solver.Solve(r.Context(), start, end)
	if err != nil {
		status, code := classify(err)
		if status == http.StatusInternalServerError {
			s.logger.Error("ladder request failed", "start", start, "end", end, "error", err)
		}
		writeJSON(w, status, ErrorResponse{Error: render.Failure(start, end, err), Code: code})
		return
	}

	writeJSON(w, http.StatusOK, LadderResponse{
		Start:   l[0],
		End:     l[len(l)-1],
		Ladder:  l,
		Steps:   l.Steps(),
		Display: render.Ladder(l),
	})
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Words: s.solver.Dictionary().Size()})
}

// logRequests emits one debug line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// classify maps a solve error to an HTTP status and error code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, ladder.ErrLengthMismatch):
		return http.StatusBadRequest, CodeLengthMismatch
	case errors.Is(err, ladder.ErrWordNotInDictionary):
		return http.StatusUnprocessableEntity, CodeNotInDict
	case errors.Is(err, ladder.ErrNotFound):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, CodeCancelled
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
