package application

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agentstation/speakerdir/internal/speakers"
)

// Mock is an Application for tests. OpenStore opens DBPathValue unless
// OpenStoreFunc is set. A nil LoggerValue yields a no-op logger.
type Mock struct {
	DBPathValue   string
	OpenStoreFunc func(ctx context.Context) (*speakers.Store, error)
	LoggerValue   *zerolog.Logger
	Format        string
}

var _ Application = (*Mock)(nil)

// OpenStore implements Application.
func (m *Mock) OpenStore(ctx context.Context) (*speakers.Store, error) {
	if m.OpenStoreFunc != nil {
		return m.OpenStoreFunc(ctx)
	}
	return speakers.Open(ctx, m.DBPathValue)
}

// DBPath implements Application.
func (m *Mock) DBPath() string { return m.DBPathValue }

// Logger implements Application.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerValue == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return m.LoggerValue
}

// OutputFormat implements Application.
func (m *Mock) OutputFormat() string { return m.Format }

// Version implements Application.
func (m *Mock) Version() string { return "test" }

// Commit implements Application.
func (m *Mock) Commit() string { return "test-commit" }

// Date implements Application.
func (m *Mock) Date() string { return "test-date" }

// BuiltBy implements Application.
func (m *Mock) BuiltBy() string { return "test" }
