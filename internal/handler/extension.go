package handler

import (
	"context"
	"net/http"

	"github.com/themepick/api/internal/model"
)

// ExtensionUpserter is the service interface for extension writes
type ExtensionUpserter interface {
	Upsert(ctx context.Context, ext *model.Extension) (string, error)
}

// ExtensionHandler handles extension HTTP requests
type ExtensionHandler struct {
	extensions ExtensionUpserter
}

// NewExtensionHandler creates a new extension handler
func NewExtensionHandler(extensions ExtensionUpserter) *ExtensionHandler {
	return &ExtensionHandler{extensions: extensions}
}

// UpsertResponse is the success payload for an extension upsert
type UpsertResponse struct {
	ID string `json:"id"`
}

// Upsert handles PUT /v1/extensions - insert or replace an extension keyed by id.
//
// The three outcomes form one exhaustive decision: invalid input is 422,
// a store failure is 500, and everything else is the 200 with the record id.
// There is no fallthrough path.
func (h *ExtensionHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.UpsertExtensionRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "body", Message: "invalid request body"},
		}))
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		WriteError(w, model.NewValidationError(errs))
		return
	}

	id, err := h.extensions.Upsert(ctx, req.ToExtension())
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "extension upsert"))
		return
	}

	WriteData(w, http.StatusOK, UpsertResponse{ID: id}, map[string]string{
		"self": "/v1/extensions",
	})
}
