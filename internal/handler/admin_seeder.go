package handler

import (
	"net/http"

	"github.com/themepick/api/internal/model"
	"github.com/themepick/api/internal/service"
)

// AdminSeederHandler handles admin seeding endpoints
type AdminSeederHandler struct {
	seederService *service.SeederService
}

// NewAdminSeederHandler creates a new admin seeder handler
func NewAdminSeederHandler(seederService *service.SeederService) *AdminSeederHandler {
	return &AdminSeederHandler{seederService: seederService}
}

// Seed handles POST /v1/admin/seed
func (h *AdminSeederHandler) Seed(w http.ResponseWriter, r *http.Request) {
	var req service.SeedThemesRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("Invalid request body: "+err.Error()))
		return
	}

	if req.Count <= 0 {
		WriteError(w, model.NewBadRequestError("count must be greater than 0"))
		return
	}

	result, err := h.seederService.SeedThemes(r.Context(), req)
	if err != nil {
		WriteError(w, model.NewInternalError("Failed to seed themes: "+err.Error()))
		return
	}

	WriteData(w, http.StatusCreated, result, map[string]string{
		"self":    "/v1/admin/seed",
		"cleanup": "/v1/admin/seed",
	})
}

// Cleanup handles DELETE /v1/admin/seed
func (h *AdminSeederHandler) Cleanup(w http.ResponseWriter, r *http.Request) {
	result, err := h.seederService.Cleanup(r.Context())
	if err != nil {
		WriteError(w, model.NewInternalError("Failed to cleanup: "+err.Error()))
		return
	}

	WriteData(w, http.StatusOK, result, map[string]string{
		"self": "/v1/admin/seed",
	})
}
