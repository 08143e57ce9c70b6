package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestDefaultCORSConfig tests default CORS configuration.
func TestDefaultCORSConfig(t *testing.T) {
	config := DefaultCORSConfig()

	if len(config.AllowedOrigins) != 1 || config.AllowedOrigins[0] != "*" {
		t.Errorf("expected wildcard origin, got %v", config.AllowedOrigins)
	}
}

// TestCORS tests the CORS middleware with various scenarios.
func TestCORS(t *testing.T) {
	tests := []struct {
		name          string
		config        CORSConfig
		method        string
		origin        string
		expectOrigin  string
		expectNextRun bool
	}{
		{
			name:          "default config, GET",
			config:        DefaultCORSConfig(),
			method:        http.MethodGet,
			origin:        "https://example.com",
			expectOrigin:  "*",
			expectNextRun: true,
		},
		{
			name:          "default config, no origin header",
			config:        DefaultCORSConfig(),
			method:        http.MethodPost,
			expectOrigin:  "*",
			expectNextRun: true,
		},
		{
			name:          "preflight short-circuits",
			config:        DefaultCORSConfig(),
			method:        http.MethodOptions,
			origin:        "https://example.com",
			expectOrigin:  "*",
			expectNextRun: false,
		},
		{
			name: "specific origin allowed",
			config: CORSConfig{
				AllowedOrigins: []string{"https://example.com"},
				AllowedMethods: []string{"GET"},
				AllowedHeaders: []string{"Content-Type"},
			},
			method:        http.MethodGet,
			origin:        "https://example.com",
			expectOrigin:  "https://example.com",
			expectNextRun: true,
		},
		{
			name: "origin not allowed",
			config: CORSConfig{
				AllowedOrigins: []string{"https://example.com"},
				AllowedMethods: []string{"GET"},
				AllowedHeaders: []string{"Content-Type"},
			},
			method:        http.MethodGet,
			origin:        "https://evil.com",
			expectOrigin:  "",
			expectNextRun: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextRun := false
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				nextRun = true
				w.WriteHeader(http.StatusTeapot)
			})

			req := httptest.NewRequest(tt.method, "/api/speakers/search", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			w := httptest.NewRecorder()

			CORS(tt.config)(next).ServeHTTP(w, req)

			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.expectOrigin {
				t.Errorf("expected Allow-Origin %q, got %q", tt.expectOrigin, got)
			}
			if nextRun != tt.expectNextRun {
				t.Errorf("expected next handler run=%v, got %v", tt.expectNextRun, nextRun)
			}
			if !tt.expectNextRun {
				if w.Code != http.StatusOK {
					t.Errorf("expected preflight status 200, got %d", w.Code)
				}
				if w.Body.Len() != 0 {
					t.Errorf("expected empty preflight body, got %q", w.Body.String())
				}
			}
		})
	}
}

// TestCORSHeaderValues checks the exact header values sent to browsers.
func TestCORSHeaderValues(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {})
	w := httptest.NewRecorder()

	CORS(DefaultCORSConfig())(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := w.Header().Get("Access-Control-Allow-Headers"); got != "Content-Type,Authorization" {
		t.Errorf("unexpected Allow-Headers %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Methods"); got != "GET,PUT,POST,DELETE,OPTIONS" {
		t.Errorf("unexpected Allow-Methods %q", got)
	}
}
