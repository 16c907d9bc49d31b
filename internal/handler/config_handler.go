package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vormwerk/backend/internal/schema"
	"github.com/vormwerk/backend/internal/service"
)

// ConfigHandler handles reads and writes of the site configuration singleton.
type ConfigHandler struct {
	configService service.SiteConfigService
}

// NewConfigHandler creates a ConfigHandler with the given service.
func NewConfigHandler(configService service.SiteConfigService) *ConfigHandler {
	return &ConfigHandler{configService: configService}
}

// Get handles GET /api/config. The row is created with defaults on the
// first read.
func (h *ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.configService.Get(r.Context())
	if err != nil {
		respondStorageError(w, err, "config.get")
		return
	}
	respondJSON(w, http.StatusOK, cfg)
}

// Update handles PUT /api/config. All fields are optional; only the supplied
// ones are written. Company name is required only when this write has to
// create the row.
func (h *ConfigHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in schema.SiteConfigUpdate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if err := schema.Validate(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_body")
		return
	}

	cfg, err := h.configService.Update(r.Context(), &in)
	if err != nil {
		if errors.Is(err, service.ErrCompanyNameRequired) {
			respondError(w, http.StatusBadRequest, "company_name_required")
			return
		}
		respondStorageError(w, err, "config.update")
		return
	}
	respondJSON(w, http.StatusOK, cfg)
}
