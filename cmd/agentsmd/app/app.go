// Package app provides the application context and dependency management
// for the agentsmd CLI. It follows idiomatic Go patterns for CLI applications
// by centralizing configuration, dependency injection, and lifecycle management.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/agentsmd"
	"github.com/agentstation/agentsmd/cmd/application"
	"github.com/agentstation/agentsmd/pkg/errors"
)

// Compile-time check that App satisfies the command dependency surface.
var _ application.Application = (*App)(nil)

// App represents the agentsmd application with all its dependencies.
// It provides a centralized place for configuration, logging, and the
// aggregation client, following the dependency injection pattern.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Aggregation client (lazy-initialized, singleton)
	mu     sync.RWMutex
	client agentsmd.Client
}

// New creates a new App instance with the given version information.
// The app is initialized with default configuration that can be
// customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	// Initialize logger
	logger := NewLogger(config)
	app.logger = &logger

	// Apply any custom options
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Aggregator returns an aggregation client. Without options it returns the
// default instance built from the app configuration, creating it lazily if
// needed; this is thread-safe and ensures only one instance is created.
// With options, a new instance is built with the options applied on top of
// the configuration, and nothing is cached.
func (a *App) Aggregator(opts ...agentsmd.Option) (agentsmd.Client, error) {
	if len(opts) > 0 {
		client, err := agentsmd.New(append(a.buildClientOptions(), opts...)...)
		if err != nil {
			return nil, errors.WrapResource("create", "aggregator", "with custom options", err)
		}
		return client, nil
	}

	a.mu.RLock()
	if a.client != nil {
		client := a.client
		a.mu.RUnlock()
		return client, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.client != nil {
		return a.client, nil
	}

	client, err := agentsmd.New(a.buildClientOptions()...)
	if err != nil {
		return nil, errors.WrapResource("create", "aggregator", "", err)
	}

	a.client = client
	return client, nil
}

// Shutdown performs graceful shutdown of the application.
// The aggregation client holds no background tasks or open handles between
// runs, so this only gives hooks a place to land if that ever changes.
func (a *App) Shutdown(_ context.Context) error {
	a.logger.Debug().Msg("Shutdown complete")
	return nil
}

// buildClientOptions constructs client options from the app configuration.
func (a *App) buildClientOptions() []agentsmd.Option {
	var opts []agentsmd.Option

	if a.config.SourceDir != "" {
		opts = append(opts, agentsmd.WithSourceDir(a.config.SourceDir))
	}
	if a.config.OutputFile != "" {
		opts = append(opts, agentsmd.WithOutputFile(a.config.OutputFile))
	}
	if a.config.IndexFile != "" {
		opts = append(opts, agentsmd.WithIndexFile(a.config.IndexFile))
	}
	if a.config.TOC {
		opts = append(opts, agentsmd.WithTOC(true))
	}

	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithClient sets a custom aggregation client (useful for testing).
func WithClient(client agentsmd.Client) Option {
	return func(a *App) error {
		a.client = client
		return nil
	}
}
