package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestUploadsHandler_ServeExistingFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "projects"), 0o755); err != nil {
		t.Fatal(err)
	}
	content := []byte("fake image bytes")
	if err := os.WriteFile(filepath.Join(dir, "projects", "foto.png"), content, 0o644); err != nil {
		t.Fatal(err)
	}

	h := NewUploadsHandler(dir)
	req := httptest.NewRequest(http.MethodGet, "/uploads/projects/foto.png", nil)
	req.SetPathValue("path", "projects/foto.png")
	rec := httptest.NewRecorder()
	h.Serve(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != string(content) {
		t.Errorf("unexpected body: %q", rec.Body.String())
	}
}

func TestUploadsHandler_MissingFile(t *testing.T) {
	h := NewUploadsHandler(t.TempDir())
	req := httptest.NewRequest(http.MethodGet, "/uploads/projects/weg.png", nil)
	req.SetPathValue("path", "projects/weg.png")
	rec := httptest.NewRecorder()
	h.Serve(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestUploadsHandler_DirectoryIsNotFound(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "projects"), 0o755); err != nil {
		t.Fatal(err)
	}

	h := NewUploadsHandler(dir)
	req := httptest.NewRequest(http.MethodGet, "/uploads/projects", nil)
	req.SetPathValue("path", "projects")
	rec := httptest.NewRecorder()
	h.Serve(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for a directory, got %d", rec.Code)
	}
}

func TestUploadsHandler_TraversalRejected(t *testing.T) {
	h := NewUploadsHandler(t.TempDir())

	for _, p := range []string{"../etc/passwd", "projects/../../secret", `a\b`, ""} {
		req := httptest.NewRequest(http.MethodGet, "/uploads/x", nil)
		req.SetPathValue("path", p)
		rec := httptest.NewRecorder()
		h.Serve(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("path %q: expected 400, got %d", p, rec.Code)
		}
	}
}
