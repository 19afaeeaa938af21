package main

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordzzule/cache"
	"github.com/katalvlaran/wordzzule/config"
	"github.com/katalvlaran/wordzzule/ladder"
	"github.com/katalvlaran/wordzzule/logging"
	"github.com/katalvlaran/wordzzule/metrics"
	"github.com/katalvlaran/wordzzule/render"
	"github.com/katalvlaran/wordzzule/solver"
	"github.com/katalvlaran/wordzzule/wordset"
)

// rootFlags are the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath string
	dictPath   string
	logLevel   string
	noColor    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "wordzzule",
		Short: "Wordzzule finds the shortest word ladder between two words",
		Long: `Wordzzule changes one letter at a time to get from a start word to an end
word, using only words from a dictionary, and always finds a shortest ladder.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "YAML configuration file")
	pf.StringVarP(&flags.dictPath, "dict", "d", "", "dictionary file, one word per line (overrides config)")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	pf.BoolVar(&flags.noColor, "no-color", false, "disable coloured output")

	cmd.AddCommand(
		newSolveCmd(flags),
		newPlayCmd(flags),
		newServeCmd(flags),
		newVersionCmd(),
	)

	return cmd
}

// app bundles what the subcommands build from configuration.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	styler   render.Styler
	registry *prometheus.Registry
	metrics  *metrics.Metrics
}

// newApp loads and validates configuration and applies flag overrides.
func newApp(cmd *cobra.Command, flags *rootFlags) (*app, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.dictPath != "" {
		cfg.Dictionary.Path = flags.dictPath
	}
	if flags.logLevel != "" {
		cfg.Logging.Level = flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	a := &app{
		cfg:      cfg,
		logger:   logging.New(cmd.ErrOrStderr(), logging.ParseLevel(cfg.Logging.Level), cfg.Logging.Format),
		styler:   render.NewStyler(!flags.noColor),
		registry: reg,
	}
	if cfg.Metrics.Enabled {
		a.metrics = metrics.New(reg)
	}

	return a, nil
}

// loadSolver reads the dictionary and assembles the solver. The returned
// cleanup releases the cache connection, if any.
// A dictionary failure is returned before anything else is attempted.
func (a *app) loadSolver(ctx context.Context) (*solver.Solver, func(), error) {
	dict, err := wordset.Load(a.cfg.Dictionary.Path)
	if err != nil {
		return nil, nil, err
	}
	a.logger.Info("dictionary loaded", "path", a.cfg.Dictionary.Path, "words", dict.Size())

	opts := []solver.Option{
		solver.WithLogger(a.logger),
		solver.WithMetrics(a.metrics),
		solver.WithSearchOptions(a.searchOptions()...),
	}
	cleanup := func() {}
	if a.cfg.Cache.Enabled {
		c := cache.New(a.cfg.Cache.Addr, a.cfg.Cache.Password, a.cfg.Cache.DB,
			cache.WithTTL(a.cfg.Cache.TTL),
			cache.WithPrefix(a.cfg.Cache.Prefix),
			cache.WithLogger(a.logger),
			cache.WithMetrics(a.metrics),
		)
		if err := c.Ping(ctx); err != nil {
			a.logger.Warn("result cache unavailable, continuing without it", "addr", a.cfg.Cache.Addr, "error", err)
			_ = c.Close()
		} else {
			opts = append(opts, solver.WithCache(c))
			cleanup = func() { _ = c.Close() }
		}
	}

	return solver.New(dict, opts...), cleanup, nil
}

// searchOptions translates the search section of the config.
func (a *app) searchOptions() []ladder.Option {
	s := a.cfg.Search
	opts := []ladder.Option{
		ladder.WithMaxDepth(s.MaxDepth),
		ladder.WithParallelNeighbors(s.ParallelWorkers),
	}
	if s.ParentLinks {
		opts = append(opts, ladder.WithParentLinks())
	}

	return opts
}

// failure is a command error whose message is the rendered explanation
// while errors.Is still sees the underlying cause.
type failure struct {
	msg string
	err error
}

func (f *failure) Error() string { return f.msg }

func (f *failure) Unwrap() error { return f.err }

// newFailure renders err for the start → end query.
func newFailure(start, end string, err error) error {
	return &failure{msg: render.Failure(start, end, err), err: err}
}
