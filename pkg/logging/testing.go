package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// TestLogger creates a test logger that captures output
type TestLogger struct {
	*zerolog.Logger
	Buffer *bytes.Buffer
}

// NewTestLogger creates a new test logger that captures output
func NewTestLogger(t testing.TB) *TestLogger {
	t.Helper()

	buf := &bytes.Buffer{}
	oldLevel := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	logger := zerolog.New(buf).
		Level(zerolog.TraceLevel).
		With().
		Timestamp().
		Logger()

	t.Cleanup(func() {
		zerolog.SetGlobalLevel(oldLevel)
	})

	return &TestLogger{
		Logger: &logger,
		Buffer: buf,
	}
}

// String returns everything logged so far.
func (tl *TestLogger) String() string {
	return tl.Buffer.String()
}

// AssertContains fails the test if the captured output does not contain s.
func (tl *TestLogger) AssertContains(t testing.TB, s string) {
	t.Helper()
	if !strings.Contains(tl.Buffer.String(), s) {
		t.Errorf("log output does not contain %q:\n%s", s, tl.Buffer.String())
	}
}
