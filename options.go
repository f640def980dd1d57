package bazellens

import (
	"context"
	"errors"
	"log/slog"

	"github.com/albertocavalcante/bazel-lens/query"
	"github.com/albertocavalcante/bazel-lens/workspace"
)

// Option configures a Lens.
type Option func(*config) error

// config holds all Lens configuration.
type config struct {
	client   query.Client
	findRoot func(path string) (string, error)
	notifier Notifier

	// logger is the structured logger for debug output.
	// If nil, logging is disabled (silent mode).
	logger *slog.Logger
}

// WithQueryClient sets the query client used to enumerate targets.
// Defaults to a [query.BazelClient] with default settings; pass a
// buildfile.Lister for offline listing, or a fake in tests.
func WithQueryClient(c query.Client) Option {
	return func(cfg *config) error {
		if c == nil {
			return errors.New("query client cannot be nil")
		}
		cfg.client = c
		return nil
	}
}

// WithWorkspaceFinder sets the function that maps a file path to its
// enclosing workspace root. Defaults to [workspace.FindRoot]. Hosts with
// their own notion of a workspace (multi-root editors) inject it here; the
// function reports absence by returning an error.
func WithWorkspaceFinder(fn func(path string) (string, error)) Option {
	return func(cfg *config) error {
		if fn == nil {
			return errors.New("workspace finder cannot be nil")
		}
		cfg.findRoot = fn
		return nil
	}
}

// WithNotifier sets the sink for user-facing warnings. If not set,
// warnings are dropped.
func WithNotifier(n Notifier) Option {
	return func(cfg *config) error {
		if n == nil {
			return errors.New("notifier cannot be nil")
		}
		cfg.notifier = n
		return nil
	}
}

// WithLogger sets a structured logger for diagnostics. If not set, logging
// is disabled (silent mode).
//
// The library uses log/slog, so any backend can be plugged in via handlers.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) error {
		cfg.logger = l
		return nil
	}
}

// newConfig applies options and fills in defaults.
func newConfig(opts ...Option) (*config, error) {
	c := &config{}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.client == nil {
		client, err := query.NewBazelClient()
		if err != nil {
			return nil, err
		}
		c.client = client
	}
	if c.findRoot == nil {
		c.findRoot = workspace.FindRoot
	}
	if c.notifier == nil {
		c.notifier = noopNotifier{}
	}
	return c, nil
}

// log returns the configured logger, or a no-op logger if none was set.
// Libraries should be silent by default; users opt in via WithLogger.
func (c *config) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.New(discardHandler{})
}

// discardHandler is a slog.Handler that discards all log records.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
