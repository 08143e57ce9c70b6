package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/speakerdir/cmd/application"
	"github.com/agentstation/speakerdir/internal/server/cache"
	"github.com/agentstation/speakerdir/internal/speakers"
	"github.com/agentstation/speakerdir/pkg/constants"
)

func newTestHandlers(t *testing.T, staticDir string) *Handlers {
	t.Helper()
	app := &application.Mock{DBPathValue: speakers.NewTestDB(t, speakers.SampleFixtures()...)}
	return New(app, cache.New(0), staticDir, app.Logger(), time.Now())
}

func TestDecodeSearchRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
		want SearchRequest
	}{
		{"full", `{"query":"Cloud","filters":["Acme"]}`, SearchRequest{Query: "Cloud", Filters: []string{"Acme"}}},
		{"unknown fields ignored", `{"query":"x","page":2}`, SearchRequest{Query: "x"}},
		{"malformed", `{"query":"x"`, SearchRequest{}},
		{"array", `[1,2]`, SearchRequest{}},
		{"filters not a list keeps query", `{"query":"x","filters":"Acme"}`, SearchRequest{Query: "x"}},
		{"mixed filter types", `{"query":"secur","filters":["Acme",7,true,null,{"a":1}]}`,
			SearchRequest{Query: "secur", Filters: []string{"Acme", "7", "true"}}},
		{"numeric query", `{"query":2024,"filters":["Acme"]}`, SearchRequest{Query: "2024", Filters: []string{"Acme"}}},
		{"null query", `{"query":null}`, SearchRequest{}},
		{"empty", ``, SearchRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/speakers/search", strings.NewReader(tt.body))
			assert.Equal(t, tt.want, decodeSearchRequest(httptest.NewRecorder(), r))
		})
	}
}

func TestHandleStaticHidesDatabaseFiles(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "prelegenci.db")
	for _, name := range []string{"prelegenci.db", "prelegenci.db-wal", "prelegenci.db-shm", "prelegenci.db-journal", "prelegenci.dbx"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("data"), 0o600))
	}

	app := &application.Mock{DBPathValue: dbPath}
	h := New(app, cache.New(0), dir, app.Logger(), time.Now())

	tests := []struct {
		path   string
		status int
	}{
		{"/prelegenci.db", http.StatusNotFound},
		{"/prelegenci.db-wal", http.StatusNotFound},
		{"/prelegenci.db-shm", http.StatusNotFound},
		{"/prelegenci.db-journal", http.StatusNotFound},
		{"/prelegenci.dbx", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			h.HandleStatic(w, r)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestDecodeSearchRequestTooLarge(t *testing.T) {
	big := `{"query":"` + strings.Repeat("a", constants.MaxRequestBody) + `"}`
	r := httptest.NewRequest(http.MethodPost, "/api/speakers/search", strings.NewReader(big))

	assert.Equal(t, SearchRequest{}, decodeSearchRequest(httptest.NewRecorder(), r))
}

func TestHandleStatic(t *testing.T) {
	root := t.TempDir()
	public := filepath.Join(root, "public")
	require.NoError(t, os.Mkdir(public, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "secret.txt"), []byte("secret"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(public, "index.html"), []byte("index"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(public, ".env"), []byte("TOKEN=x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(public, "style.css"), []byte("body{}"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(public, ".git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(public, ".git", "config"), []byte("[remote] url=secret"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(public, "assets", ".cache"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(public, "assets", ".cache", "x.js"), []byte("x"), 0o600))

	h := newTestHandlers(t, public)

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{"/", http.StatusOK, "index"},
		{"/index.html", http.StatusOK, "index"},
		{"/style.css", http.StatusOK, "body{}"},
		{"/.env", http.StatusNotFound, ""},
		{"/.git/config", http.StatusNotFound, ""},
		{"/assets/.cache/x.js", http.StatusNotFound, ""},
		{"/../secret.txt", http.StatusNotFound, ""},
		{"/missing.js", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.URL.Path = tt.path
			w := httptest.NewRecorder()

			h.HandleStatic(w, r)

			assert.Equal(t, tt.status, w.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, w.Body.String())
			}
		})
	}
}
