package app

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/agentstation/speakerdir/pkg/logging"
)

func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   string
	}{
		{"default", Config{}, "info"},
		{"env level", Config{EnvLogLevel: "error"}, "error"},
		{"invalid env level", Config{EnvLogLevel: "loud"}, "info"},
		{"verbose beats env", Config{Verbose: true, EnvLogLevel: "error"}, "debug"},
		{"quiet", Config{Quiet: true}, "warn"},
		{"verbose and quiet", Config{Verbose: true, Quiet: true}, "warn"},
		{"explicit beats shortcuts", Config{LogLevel: "trace", Quiet: true}, "trace"},
		{"explicit is case-insensitive", Config{LogLevel: "DEBUG"}, "debug"},
		{"invalid explicit", Config{LogLevel: "chatty"}, "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, determineLogLevel(&tt.config))
		})
	}
}

func TestNewLogger(t *testing.T) {
	original := *logging.Default()
	t.Cleanup(func() { logging.SetDefault(original) })

	logger := NewLogger(&Config{Quiet: true, LogFormat: "json", LogOutput: "discard"})
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
	assert.Equal(t, zerolog.WarnLevel, logging.Default().GetLevel(), "installed as the default logger")
}
