// Package config loads wordzzule settings from an optional YAML file with
// WORDZZULE_* environment-variable overrides. Missing values fall back to
// defaults suitable for a local run.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "WORDZZULE_"

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the top-level application configuration.
type Config struct {
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Search     SearchConfig     `yaml:"search"`
	Logging    LoggingConfig    `yaml:"logging"`
	Server     ServerConfig     `yaml:"server"`
	Cache      CacheConfig      `yaml:"cache"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// DictionaryConfig locates the word list.
type DictionaryConfig struct {
	Path string `yaml:"path"`
}

// SearchConfig tunes ladder search.
type SearchConfig struct {
	MaxDepth        int  `yaml:"maxDepth"`
	ParallelWorkers int  `yaml:"parallelWorkers"`
	ParentLinks     bool `yaml:"parentLinks"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
}

// CacheConfig holds Redis result-cache parameters.
type CacheConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
	Prefix   string        `yaml:"prefix"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Load reads a YAML config file (if path is non-empty) over the defaults and
// then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)

	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Dictionary: DictionaryConfig{Path: "wordlist.txt"},
		Logging:    LoggingConfig{Level: "info", Format: "text"},
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Cache: CacheConfig{
			Addr:   "localhost:6379",
			TTL:    time.Hour,
			Prefix: "wordzzule:",
		},
		Metrics: MetricsConfig{Enabled: true},
	}
}

// Validate rejects settings the solver cannot honour.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Dictionary.Path) == "":
		return fmt.Errorf("%w: dictionary.path is empty", ErrInvalidConfig)
	case c.Search.MaxDepth < 0:
		return fmt.Errorf("%w: search.maxDepth is negative (%d)", ErrInvalidConfig, c.Search.MaxDepth)
	case c.Search.ParallelWorkers < 0:
		return fmt.Errorf("%w: search.parallelWorkers is negative (%d)", ErrInvalidConfig, c.Search.ParallelWorkers)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown logging.level %q", ErrInvalidConfig, c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown logging.format %q", ErrInvalidConfig, c.Logging.Format)
	}
	if c.Cache.Enabled && c.Cache.Addr == "" {
		return fmt.Errorf("%w: cache.addr is empty", ErrInvalidConfig)
	}

	return nil
}

// applyEnvOverrides reads WORDZZULE_* variables over cfg.
// Malformed numeric, boolean or duration values are ignored.
func applyEnvOverrides(cfg *Config) {
	setString(&cfg.Dictionary.Path, "DICTIONARY")
	setInt(&cfg.Search.MaxDepth, "SEARCH_MAX_DEPTH")
	setInt(&cfg.Search.ParallelWorkers, "SEARCH_WORKERS")
	setBool(&cfg.Search.ParentLinks, "SEARCH_PARENT_LINKS")
	setString(&cfg.Logging.Level, "LOG_LEVEL")
	setString(&cfg.Logging.Format, "LOG_FORMAT")
	setString(&cfg.Server.Addr, "SERVER_ADDR")
	setDuration(&cfg.Server.ShutdownTimeout, "SERVER_SHUTDOWN_TIMEOUT")
	setBool(&cfg.Cache.Enabled, "CACHE_ENABLED")
	setString(&cfg.Cache.Addr, "CACHE_ADDR")
	setString(&cfg.Cache.Password, "CACHE_PASSWORD")
	setInt(&cfg.Cache.DB, "CACHE_DB")
	setDuration(&cfg.Cache.TTL, "CACHE_TTL")
	setBool(&cfg.Metrics.Enabled, "METRICS_ENABLED")
}

func setString(dst *string, key string) {
	if v := os.Getenv(EnvPrefix + key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(EnvPrefix + key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(EnvPrefix + key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(EnvPrefix + key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}
