package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/agentstation/speakerdir/internal/server/cache"
	"github.com/agentstation/speakerdir/internal/server/response"
	"github.com/agentstation/speakerdir/internal/speakers"
	"github.com/agentstation/speakerdir/pkg/constants"
	"github.com/agentstation/speakerdir/pkg/logging"
)

// SearchRequest is the body of POST /api/speakers/search.
type SearchRequest struct {
	Query   string   `json:"query"`
	Filters []string `json:"filters"`
}

// searchBody is the wire form of SearchRequest. Fields are decoded
// individually so one badly typed field does not discard the others.
type searchBody struct {
	Query   json.RawMessage `json:"query"`
	Filters json.RawMessage `json:"filters"`
}

// decodeSearchRequest reads the request body. A missing, oversized,
// malformed or non-object body is treated as an empty request. Scalar
// query and filter values are converted to strings; anything else is
// ignored.
func decodeSearchRequest(w http.ResponseWriter, r *http.Request) SearchRequest {
	var req SearchRequest
	if r.Body == nil {
		return req
	}

	var body searchBody
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, constants.MaxRequestBody))
	if err := dec.Decode(&body); err != nil {
		logging.FromContext(r.Context()).Debug().Err(err).Msg("Ignoring unreadable search body")
		return req
	}

	if v, ok := decodeScalar(body.Query); ok {
		req.Query = v
	}

	var filters []json.RawMessage
	if err := json.Unmarshal(body.Filters, &filters); err == nil {
		for _, raw := range filters {
			if v, ok := decodeScalar(raw); ok {
				req.Filters = append(req.Filters, v)
			}
		}
	}

	return req
}

// decodeScalar returns a JSON string, number or boolean as a string.
// Numbers keep their literal form.
func decodeScalar(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return "", false
	}

	switch v := v.(type) {
	case string:
		return v, true
	case json.Number, bool:
		return fmt.Sprint(v), true
	default:
		return "", false
	}
}

// HandleSearch handles POST /api/speakers/search.
// @Summary Search speakers
// @Description Case-insensitive substring search over name, company, topic and hook, optionally restricted to exact company names
// @Tags speakers
// @Accept json
// @Produce json
// @Param request body SearchRequest false "Search query and company filters"
// @Success 200 {object} response.List{data=[]speakers.Speaker}
// @Failure 500 {object} response.Failure
// @Router /api/speakers/search [post].
func (h *Handlers) HandleSearch(w http.ResponseWriter, r *http.Request) {
	req := decodeSearchRequest(w, r)
	criteria := speakers.NewCriteria(req.Query, req.Filters)

	key := cache.KeySearchPrefix + criteria.Key()
	if h.writeCached(w, key) {
		return
	}

	ctx := logging.WithOperation(r.Context(), "search")
	var results []speakers.Speaker
	err := h.withStore(ctx, func(store *speakers.Store) error {
		var err error
		results, err = store.Search(ctx, criteria)
		return err
	})
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	logging.FromContext(ctx).Debug().
		Int("filters", len(criteria.Filters)).
		Int("count", len(results)).
		Msg("Search completed")

	h.cache.Set(key, results)
	response.Items(w, results, len(results))
}

// HandleListAll handles GET /api/speakers/all.
// @Summary List speakers
// @Description Every speaker, ordered by name
// @Tags speakers
// @Produce json
// @Success 200 {object} response.List{data=[]speakers.Speaker}
// @Failure 500 {object} response.Failure
// @Router /api/speakers/all [get].
func (h *Handlers) HandleListAll(w http.ResponseWriter, r *http.Request) {
	if h.writeCached(w, cache.KeyAll) {
		return
	}

	ctx := logging.WithOperation(r.Context(), "list")
	var results []speakers.Speaker
	err := h.withStore(ctx, func(store *speakers.Store) error {
		var err error
		results, err = store.All(ctx)
		return err
	})
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	h.cache.Set(cache.KeyAll, results)
	response.Items(w, results, len(results))
}

// writeCached writes the speaker list cached under key, if any.
func (h *Handlers) writeCached(w http.ResponseWriter, key string) bool {
	cached, found := h.cache.Get(key)
	if !found {
		return false
	}
	list, ok := cached.([]speakers.Speaker)
	if !ok {
		return false
	}
	response.Items(w, list, len(list))
	return true
}
