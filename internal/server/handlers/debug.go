package handlers

import (
	"net/http"
	"strconv"

	"github.com/agentstation/speakerdir/internal/server/response"
	"github.com/agentstation/speakerdir/internal/speakers"
	"github.com/agentstation/speakerdir/pkg/constants"
	"github.com/agentstation/speakerdir/pkg/errors"
	"github.com/agentstation/speakerdir/pkg/logging"
)

// Counts summarizes how many speakers have a hook.
type Counts struct {
	Total      int    `json:"total"`
	WithHook   int    `json:"with_nonempty_zaczepka"`
	Percentage string `json:"percentage"`
}

// DebugInfo is the body of GET /api/debug/info.
type DebugInfo struct {
	Success       bool                  `json:"success"`
	DBPath        string                `json:"db_path_used"`
	Counts        Counts                `json:"counts"`
	SampleRecords []speakers.HookSample `json:"sample_records"`
}

// DebugSample is the body of GET /api/debug/sample/{id}.
type DebugSample struct {
	Success  bool              `json:"success"`
	Row      speakers.RawRow   `json:"row"`
	HookInfo speakers.HookInfo `json:"zaczepka_info"`
}

// SchemaProbe is the body of GET /api/test.
type SchemaProbe struct {
	Success          bool     `json:"success"`
	Message          string   `json:"message"`
	DBPath           string   `json:"db_path_used"`
	TableColumns     []string `json:"table_columns"`
	SampleRecordKeys []string `json:"sample_record_keys"`
}

// HandleDebugInfo handles GET /api/debug/info.
// @Summary Hook statistics
// @Description Counts of speakers with a non-blank hook and a few truncated samples
// @Tags debug
// @Produce json
// @Success 200 {object} DebugInfo
// @Failure 500 {object} response.Failure
// @Router /api/debug/info [get].
func (h *Handlers) HandleDebugInfo(w http.ResponseWriter, r *http.Request) {
	ctx := logging.WithOperation(r.Context(), "debug_info")

	var (
		stats   speakers.Stats
		samples []speakers.HookSample
	)
	err := h.withStore(ctx, func(store *speakers.Store) error {
		var err error
		if stats, err = store.Stats(ctx); err != nil {
			return err
		}
		samples, err = store.HookSamples(ctx, constants.HookSampleLimit, constants.HookSamplePreview)
		return err
	})
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	response.OK(w, DebugInfo{
		Success: true,
		DBPath:  h.app.DBPath(),
		Counts: Counts{
			Total:      stats.Total,
			WithHook:   stats.WithHook,
			Percentage: stats.Percentage(),
		},
		SampleRecords: samples,
	})
}

// HandleDebugSample handles GET /api/debug/sample/{id}.
// @Summary Raw speaker row
// @Description The stored row with the given id, columns in table order, plus a hook summary
// @Tags debug
// @Produce json
// @Param id path integer true "Row id"
// @Success 200 {object} DebugSample
// @Failure 400 {object} response.Failure
// @Failure 404 {object} response.Failure
// @Failure 500 {object} response.Failure
// @Router /api/debug/sample/{id} [get].
func (h *Handlers) HandleDebugSample(w http.ResponseWriter, r *http.Request, rawID string) {
	ctx := logging.WithOperation(r.Context(), "debug_sample")

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		h.fail(ctx, w, errors.NewValidationError("id", rawID, "must be an integer"))
		return
	}

	var row speakers.RawRow
	err = h.withStore(ctx, func(store *speakers.Store) error {
		var err error
		row, err = store.Row(ctx, id)
		return err
	})
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	response.OK(w, DebugSample{
		Success:  true,
		Row:      row,
		HookInfo: speakers.DescribeHook(row),
	})
}

// HandleSchemaProbe handles GET /api/test.
// @Summary Connectivity test
// @Description Confirms the database opens and reports the table's columns
// @Tags debug
// @Produce json
// @Success 200 {object} SchemaProbe
// @Failure 500 {object} response.Failure
// @Router /api/test [get].
func (h *Handlers) HandleSchemaProbe(w http.ResponseWriter, r *http.Request) {
	ctx := logging.WithOperation(r.Context(), "schema_probe")

	probe := SchemaProbe{
		Success: true,
		Message: "API is working",
		DBPath:  h.app.DBPath(),
	}
	err := h.withStore(ctx, func(store *speakers.Store) error {
		var err error
		if probe.TableColumns, err = store.Columns(ctx); err != nil {
			return err
		}
		probe.SampleRecordKeys, err = store.SampleKeys(ctx)
		return err
	})
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	response.OK(w, probe)
}
