package handler

import (
	"net/http"

	"github.com/themepick/api/internal/assets"
)

// StylesheetHandler serves the embedded swipe-deck stylesheet
type StylesheetHandler struct{}

// NewStylesheetHandler creates a new stylesheet handler
func NewStylesheetHandler() *StylesheetHandler {
	return &StylesheetHandler{}
}

// Get handles GET /v1/themes/stylesheet.
// Content-Length is left to net/http: the compression middleware may rewrite
// the body, so a precomputed length would be wrong for gzip-accepting clients.
func (h *StylesheetHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(assets.Stylesheet)
}
