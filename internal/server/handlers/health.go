package handlers

import (
	"net/http"
	"time"

	"github.com/agentstation/speakerdir/internal/server/cache"
	"github.com/agentstation/speakerdir/internal/server/response"
)

// Health is the body of GET /health.
type Health struct {
	Success bool        `json:"success"`
	Status  string      `json:"status"`
	Version string      `json:"version"`
	Uptime  string      `json:"uptime"`
	Cache   cache.Stats `json:"cache"`
}

// HandleHealth handles GET /health.
// @Summary Health check
// @Description Liveness probe. Does not touch the database.
// @Tags health
// @Produce json
// @Success 200 {object} Health
// @Router /health [get].
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, Health{
		Success: true,
		Status:  "healthy",
		Version: h.app.Version(),
		Uptime:  time.Since(h.startTime).Truncate(time.Second).String(),
		Cache:   h.cache.GetStats(),
	})
}
