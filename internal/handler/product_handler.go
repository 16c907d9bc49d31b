package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/vormwerk/backend/internal/model"
	"github.com/vormwerk/backend/internal/schema"
	"github.com/vormwerk/backend/internal/service"
	"github.com/vormwerk/backend/internal/storage"
)

// ProductHandler handles catalog product CRUD. Same shape as projects,
// including the optional multipart image.
type ProductHandler struct {
	productService service.ProductService
	storage        storage.Storage
}

// NewProductHandler creates a ProductHandler with the given dependencies.
func NewProductHandler(productService service.ProductService, store storage.Storage) *ProductHandler {
	return &ProductHandler{productService: productService, storage: store}
}

// List handles GET /api/products. Rows come back oldest first.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.List(r.Context())
	if err != nil {
		respondStorageError(w, err, "product.list")
		return
	}
	if products == nil {
		products = []*model.Product{}
	}
	respondJSON(w, http.StatusOK, products)
}

// Get handles GET /api/products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found")
		return
	}
	product, err := h.productService.GetByID(r.Context(), id)
	if err != nil {
		respondStorageError(w, err, "product.get")
		return
	}
	respondJSON(w, http.StatusOK, product)
}

// Create handles POST /api/products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in schema.ProductCreate
	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxImageSize); err != nil {
			respondError(w, http.StatusBadRequest, "invalid_form")
			return
		}
		form := r.MultipartForm
		in = schema.ProductCreate{
			Title:       formValue(form, "title"),
			Description: formValue(form, "description"),
			Price:       formValue(form, "price"),
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
		img, err = formImage(r, "products")
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

	product, err := h.productService.Create(r.Context(), &in, imageURL)
	if err != nil {
		if img != nil {
			_ = h.storage.Delete(r.Context(), img.key)
		}
		respondStorageError(w, err, "product.create")
		return
	}
	respondJSON(w, http.StatusOK, product)
}

// Update handles PUT /api/products/{id}. Only the supplied fields change.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found")
		return
	}

	var in schema.ProductUpdate
	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxImageSize); err != nil {
			respondError(w, http.StatusBadRequest, "invalid_form")
			return
		}
		form := r.MultipartForm
		in = schema.ProductUpdate{
			Title:       formString(form, "title"),
			Description: formString(form, "description"),
			Price:       formString(form, "price"),
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
		img, err = formImage(r, "products")
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

	product, err := h.productService.Update(r.Context(), id, &in, imageURL)
	if err != nil {
		if img != nil {
			_ = h.storage.Delete(r.Context(), img.key)
		}
		respondStorageError(w, err, "product.update")
		return
	}
	respondJSON(w, http.StatusOK, product)
}

// Delete handles DELETE /api/products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found")
		return
	}
	if err := h.productService.Delete(r.Context(), id); err != nil {
		respondStorageError(w, err, "product.delete")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
