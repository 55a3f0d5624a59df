package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/themepick/api/internal/model"
)

// ThemeProvider is the service interface for serving random themes
type ThemeProvider interface {
	RandomTheme(ctx context.Context) (*model.ThemeBundle, error)
}

// ThemeHandler handles theme HTTP requests
type ThemeHandler struct {
	themes ThemeProvider
}

// NewThemeHandler creates a new theme handler
func NewThemeHandler(themes ThemeProvider) *ThemeHandler {
	return &ThemeHandler{themes: themes}
}

// Random handles GET /v1/themes/random - serve a uniformly random eligible theme
func (h *ThemeHandler) Random(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// user_id is accepted and logged for traffic attribution but does not
	// influence which theme is selected.
	if userID := r.URL.Query().Get("user_id"); userID != "" {
		slog.InfoContext(ctx, "random theme requested", slog.String("user_id", userID))
	}

	bundle, err := h.themes.RandomTheme(ctx)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "random theme"))
		return
	}

	WriteData(w, http.StatusOK, bundle, map[string]string{
		"self":       "/v1/themes/random",
		"stylesheet": "/v1/themes/stylesheet",
	})
}
