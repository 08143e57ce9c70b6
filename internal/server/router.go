package server

import (
	"net/http"
	"strings"

	"github.com/agentstation/speakerdir/internal/server/handlers"
	"github.com/agentstation/speakerdir/internal/server/middleware"
	"github.com/agentstation/speakerdir/internal/server/response"
)

// setupRouter creates the HTTP handler with routes and middleware.
func (s *Server) setupRouter() http.Handler {
	mux := http.NewServeMux()

	h := handlers.New(s.app, s.cache, s.config.StaticDir, s.logger, s.startTime)

	s.registerRoutes(mux, h)

	return s.applyMiddleware(mux)
}

// registerRoutes registers all HTTP routes.
func (s *Server) registerRoutes(mux *http.ServeMux, h *handlers.Handlers) {
	// Frontend: GET / and every path not claimed below
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || r.Method == http.MethodHead {
			h.HandleStatic(w, r)
			return
		}
		response.MethodNotAllowed(w, r.Method)
	})

	mux.HandleFunc("/health", get(h.HandleHealth))

	// Speakers
	mux.HandleFunc("/api/speakers/search", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			h.HandleSearch(w, r)
			return
		}
		// OPTIONS never gets here: the CORS middleware answers it.
		response.MethodNotAllowed(w, r.Method)
	})
	mux.HandleFunc("/api/speakers/all", get(h.HandleListAll))

	// Diagnostics
	mux.HandleFunc("/api/debug/info", get(h.HandleDebugInfo))
	mux.HandleFunc("/api/debug/sample/", get(func(w http.ResponseWriter, r *http.Request) {
		parts := splitPath(strings.TrimPrefix(r.URL.Path, "/api/debug/sample/"))
		if len(parts) != 1 {
			response.Fail(w, http.StatusNotFound, "not_found", "not found")
			return
		}
		h.HandleDebugSample(w, r, parts[0])
	}))
	mux.HandleFunc("/api/test", get(h.HandleSchemaProbe))

	// OpenAPI specification endpoints
	mux.HandleFunc("/api/openapi.json", get(h.HandleOpenAPIJSON))
	mux.HandleFunc("/api/openapi.yaml", get(h.HandleOpenAPIYAML))
}

// applyMiddleware wraps handler with the middleware chain. CORS sits inside
// logging so preflight requests are logged too.
func (s *Server) applyMiddleware(handler http.Handler) http.Handler {
	corsConfig := middleware.DefaultCORSConfig()
	if len(s.config.CORSOrigins) > 0 {
		corsConfig.AllowedOrigins = s.config.CORSOrigins
	}

	return middleware.Chain(
		middleware.Recovery(s.logger),
		middleware.Logger(s.logger),
		middleware.CORS(corsConfig),
	)(handler)
}

// get restricts fn to GET requests.
func get(fn http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			response.MethodNotAllowed(w, r.Method)
			return
		}
		fn(w, r)
	}
}

// splitPath splits a URL path into parts, removing empty strings.
func splitPath(path string) []string {
	parts := []string{}
	for _, part := range strings.Split(path, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
