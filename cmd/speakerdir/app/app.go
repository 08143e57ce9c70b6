// Package app provides the application context and dependency management
// for the speakerdir CLI. It centralizes configuration, logging and access
// to the speaker database for commands and the HTTP server.
package app

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agentstation/speakerdir/cmd/application"
	"github.com/agentstation/speakerdir/internal/speakers"
)

// App represents the speakerdir application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger
}

var _ application.Application = (*App)(nil)

// Option configures an App.
type Option func(*App) error

// WithConfig replaces the loaded configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		logger := NewLogger(config)
		a.logger = &logger
		return nil
	}
}

// WithLogger replaces the application logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = &logger
		return nil
	}
}

// New creates a new App instance with the given version information.
// Configuration is loaded from the environment and the default config
// file locations; options run afterwards.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

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

// DBPath returns the resolved database path.
func (a *App) DBPath() string {
	return a.config.DBPath
}

// OpenStore opens a new read-only handle on the speaker database.
func (a *App) OpenStore(ctx context.Context) (*speakers.Store, error) {
	return speakers.Open(ctx, a.config.DBPath)
}
