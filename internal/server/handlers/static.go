package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/agentstation/speakerdir/pkg/constants"
)

// HandleStatic serves GET / as the index page and any other path as a file
// from the static directory. Directories, dotfiles and the database file
// itself, with its -wal, -shm and -journal companions, are never served.
// A path is a dotfile when any of its segments starts with a dot.
func (h *Handlers) HandleStatic(w http.ResponseWriter, r *http.Request) {
	name := path.Clean("/" + r.URL.Path)
	if name == "/" {
		name = "/" + constants.IndexFile
	}

	if hasDotSegment(name) {
		http.NotFound(w, r)
		return
	}

	full := filepath.Join(h.staticDir, filepath.FromSlash(name))
	if h.isDatabase(full) {
		http.NotFound(w, r)
		return
	}

	f, err := os.Open(full)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

func (h *Handlers) isDatabase(full string) bool {
	db := h.app.DBPath()
	if db == "" {
		return false
	}
	a, errA := filepath.Abs(full)
	b, errB := filepath.Abs(db)
	if errA != nil || errB != nil {
		return false
	}
	return a == b || strings.HasPrefix(a, b+"-")
}

func hasDotSegment(name string) bool {
	for _, seg := range strings.Split(name, "/") {
		if strings.HasPrefix(seg, ".") {
			return true
		}
	}
	return false
}
