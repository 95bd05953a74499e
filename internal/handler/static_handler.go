package handler

import (
	"errors"
	"net/http"
	"path"

	apperrors "github.com/parisxmas/foreverfamily/internal/errors"
)

const indexFile = "index.html"

// StaticHandler serves files from a directory and falls back to the
// site's index.html for any path that is not a file.
type StaticHandler struct {
	dir string
	fs  http.FileSystem
}

func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{dir: dir, fs: http.Dir(dir)}
}

func (h *StaticHandler) Serve(w http.ResponseWriter, r *http.Request) {
	name := path.Clean("/" + r.URL.Path)
	if h.serveFile(w, r, name) {
		return
	}
	if h.serveFile(w, r, "/"+indexFile) {
		return
	}
	writeError(w, r, apperrors.NotFound("Not found."))
}

// serveFile writes the named file if it exists and is not a directory.
// A directory resolves to its index.html.
func (h *StaticHandler) serveFile(w http.ResponseWriter, r *http.Request, name string) bool {
	f, err := h.fs.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false
	}
	if info.IsDir() {
		if name == "/" || path.Base(name) != indexFile {
			return h.serveFile(w, r, path.Join(name, indexFile))
		}
		return false
	}
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	return true
}

// ErrNoIndex is reported at startup when the static dir has no index.html.
var ErrNoIndex = errors.New("static dir has no " + indexFile)

// CheckIndex reports whether the fallback page exists.
func (h *StaticHandler) CheckIndex() error {
	f, err := h.fs.Open("/" + indexFile)
	if err != nil {
		return ErrNoIndex
	}
	return f.Close()
}
