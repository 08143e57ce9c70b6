// Package handlers provides HTTP request handlers for the speakerdir API.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/speakerdir/cmd/application"
	"github.com/agentstation/speakerdir/internal/server/cache"
	"github.com/agentstation/speakerdir/internal/server/response"
	"github.com/agentstation/speakerdir/internal/speakers"
	"github.com/agentstation/speakerdir/pkg/errors"
	"github.com/agentstation/speakerdir/pkg/logging"
)

// Handlers provides access to all HTTP handlers.
type Handlers struct {
	app       application.Application
	cache     *cache.Cache
	staticDir string
	logger    *zerolog.Logger
	startTime time.Time
}

// New creates a new Handlers instance. A nil cache disables caching.
// startTime is the reference for the uptime reported by /health.
func New(
	app application.Application,
	cache *cache.Cache,
	staticDir string,
	logger *zerolog.Logger,
	startTime time.Time,
) *Handlers {
	return &Handlers{
		app:       app,
		cache:     cache,
		staticDir: staticDir,
		logger:    logger,
		startTime: startTime,
	}
}

// withStore opens a store for one request, runs fn and closes the store
// before returning, so the handle is released before the response is written.
func (h *Handlers) withStore(ctx context.Context, fn func(*speakers.Store) error) error {
	store, err := h.app.OpenStore(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logging.FromContext(ctx).Warn().Err(cerr).Msg("Failed to close store")
		}
	}()
	return fn(store)
}

// fail logs err and writes the failure envelope for its kind.
func (h *Handlers) fail(ctx context.Context, w http.ResponseWriter, err error) {
	kind := errors.KindOf(err)
	logger := logging.FromContext(ctx)

	event := logger.Error()
	if kind != errors.KindQuery {
		event = logger.Debug()
	}
	event.Err(err).Str("kind", string(kind)).Msg("Request failed")

	response.Error(w, err)
}
