package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/viajante-ai/trip-planner/pkg/logging"
)

// FilesHandler serves export artifacts as attachment downloads.
type FilesHandler struct {
	dir    string
	logger *logging.Logger
}

func NewFilesHandler(dir string, logger *logging.Logger) *FilesHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &FilesHandler{dir: dir, logger: logger}
}

// Download handles GET /arquivos/{filename}.
func (h *FilesHandler) Download(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "filename")
	// Reject anything that is not a bare filename.
	if name == "" || name != filepath.Base(name) || strings.Contains(name, "..") {
		http.Error(w, "invalid filename", http.StatusBadRequest)
		return
	}

	path := filepath.Join(h.dir, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Disposition", "attachment; filename="+name)
	http.ServeFile(w, r, path)
}
