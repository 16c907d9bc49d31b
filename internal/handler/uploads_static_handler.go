package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// UploadsHandler serves previously uploaded files from the local uploads
// directory under GET /uploads/{path...}.
type UploadsHandler struct {
	dir string
}

// NewUploadsHandler creates an UploadsHandler reading from dir.
func NewUploadsHandler(dir string) *UploadsHandler {
	return &UploadsHandler{dir: dir}
}

// Serve handles GET /uploads/{path...}.
// Responds 404 when the file does not exist.
// Rejects path traversal attempts with 400.
func (h *UploadsHandler) Serve(w http.ResponseWriter, r *http.Request) {
	rel := r.PathValue("path")

	// Security: reject traversal characters before touching the filesystem.
	if rel == "" || strings.Contains(rel, "..") || strings.Contains(rel, "\\") {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	absDir, err := filepath.Abs(h.dir)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	filePath := filepath.Join(absDir, filepath.FromSlash(rel))

	// Confirm the resolved path is still within the uploads dir.
	if !strings.HasPrefix(filePath, absDir+string(filepath.Separator)) {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	info, err := os.Stat(filePath)
	if err != nil || info.IsDir() {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	http.ServeFile(w, r, filePath)
}
