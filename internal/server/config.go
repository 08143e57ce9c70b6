package server

import (
	"fmt"
	"time"

	"github.com/agentstation/speakerdir/pkg/constants"
	"github.com/agentstation/speakerdir/pkg/errors"
)

// Config holds server configuration.
type Config struct {
	// Server settings
	Host string
	Port int

	// StaticDir holds index.html and the frontend assets.
	StaticDir string

	// CORS settings. Empty means any origin.
	CORSOrigins []string

	// CacheTTL enables the speaker response cache when positive.
	CacheTTL time.Duration

	// HTTP timeouts
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Host:            constants.DefaultHost,
		Port:            constants.DefaultPort,
		StaticDir:       ".",
		CacheTTL:        0,
		ReadTimeout:     constants.ReadTimeout,
		WriteTimeout:    constants.WriteTimeout,
		IdleTimeout:     constants.IdleTimeout,
		ShutdownTimeout: constants.ShutdownTimeout,
	}
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Validate reports configuration that cannot produce a working server.
func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return errors.NewConfigError("server", fmt.Sprintf("port %d out of range", c.Port), nil)
	}
	if c.StaticDir == "" {
		return errors.NewConfigError("server", "static directory is required", nil)
	}
	return nil
}
