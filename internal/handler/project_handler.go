package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/vormwerk/backend/internal/model"
	"github.com/vormwerk/backend/internal/schema"
	"github.com/vormwerk/backend/internal/service"
	"github.com/vormwerk/backend/internal/storage"
)

// parseID validates the {id} path segment as a UUID. A malformed id cannot
// match any row, so it maps to not-found rather than a storage error.
func parseID(r *http.Request) (string, bool) {
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

// ProjectHandler handles portfolio project CRUD, including the optional
// multipart image on create and update.
type ProjectHandler struct {
	projectService service.ProjectService
	storage        storage.Storage
}

// NewProjectHandler creates a ProjectHandler with the given dependencies.
func NewProjectHandler(projectService service.ProjectService, store storage.Storage) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, storage: store}
}

// List handles GET /api/projects. Rows come back oldest first.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.List(r.Context())
	if err != nil {
		respondStorageError(w, err, "project.list")
		return
	}
	// Return [] not null for empty lists
	if projects == nil {
		projects = []*model.Project{}
	}
	respondJSON(w, http.StatusOK, projects)
}

// Get handles GET /api/projects/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found")
		return
	}
	project, err := h.projectService.GetByID(r.Context(), id)
	if err != nil {
		respondStorageError(w, err, "project.get")
		return
	}
	respondJSON(w, http.StatusOK, project)
}

// Create handles POST /api/projects. The body is multipart form data with an
// optional "image" file, or plain JSON when there is no file. The body is
// validated before the image is written; if the row insert fails afterwards
// the stored file is deleted again.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in schema.ProjectCreate
	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxImageSize); err != nil {
			respondError(w, http.StatusBadRequest, "invalid_form")
			return
		}
		form := r.MultipartForm
		in = schema.ProjectCreate{
			Title:       formValue(form, "title"),
			Description: formValue(form, "description"),
			Category:    formValue(form, "category"),
			Status:      formValue(form, "status"),
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			respondError(w, http.StatusBadRequest, "invalid_json")
			return
		}
	}
	if err := schema.Validate(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_body")
		return
	}

	var img *uploadedImage
	imageURL := ""
	if isMultipart(r) {
		var err error
		img, err = formImage(r, "projects")
		if err != nil {
			respondImageError(w, err)
			return
		}
		if img != nil {
			defer img.file.Close()
			imageURL, err = h.storage.Save(r.Context(), img.key, img.file, img.contentType)
			if err != nil {
				slog.Error("image upload failed", "error", err, "key", img.key)
				respondError(w, http.StatusInternalServerError, "upload_failed")
				return
			}
		}
	}

	project, err := h.projectService.Create(r.Context(), &in, imageURL)
	if err != nil {
		if img != nil {
			_ = h.storage.Delete(r.Context(), img.key)
		}
		respondStorageError(w, err, "project.create")
		return
	}
	respondJSON(w, http.StatusOK, project)
}

// Update handles PUT /api/projects/{id}. Only the supplied fields change;
// an omitted field keeps its stored value.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found")
		return
	}

	var in schema.ProjectUpdate
	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxImageSize); err != nil {
			respondError(w, http.StatusBadRequest, "invalid_form")
			return
		}
		form := r.MultipartForm
		in = schema.ProjectUpdate{
			Title:       formString(form, "title"),
			Description: formString(form, "description"),
			Category:    formString(form, "category"),
			Status:      formString(form, "status"),
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			respondError(w, http.StatusBadRequest, "invalid_json")
			return
		}
	}
	if err := schema.Validate(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_body")
		return
	}

	var img *uploadedImage
	var imageURL *string
	if isMultipart(r) {
		var err error
		img, err = formImage(r, "projects")
		if err != nil {
			respondImageError(w, err)
			return
		}
		if img != nil {
			defer img.file.Close()
			url, err := h.storage.Save(r.Context(), img.key, img.file, img.contentType)
			if err != nil {
				slog.Error("image upload failed", "error", err, "key", img.key)
				respondError(w, http.StatusInternalServerError, "upload_failed")
				return
			}
			imageURL = &url
		}
	}

	project, err := h.projectService.Update(r.Context(), id, &in, imageURL)
	if err != nil {
		if img != nil {
			_ = h.storage.Delete(r.Context(), img.key)
		}
		respondStorageError(w, err, "project.update")
		return
	}
	respondJSON(w, http.StatusOK, project)
}

// Delete handles DELETE /api/projects/{id}.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found")
		return
	}
	if err := h.projectService.Delete(r.Context(), id); err != nil {
		respondStorageError(w, err, "project.delete")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// respondImageError maps image intake failures to 400s.
func respondImageError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errImageTooLarge):
		respondError(w, http.StatusBadRequest, "file_too_large")
	case errors.Is(err, errBadImageType):
		respondError(w, http.StatusBadRequest, "invalid_content_type")
	default:
		respondError(w, http.StatusBadRequest, "invalid_image")
	}
}
