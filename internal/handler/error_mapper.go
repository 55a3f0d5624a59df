package handler

import (
	"errors"

	"github.com/themepick/api/internal/database"
	"github.com/themepick/api/internal/model"
	"github.com/themepick/api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrThemeNotFound):
		return model.NewNotFoundError("theme")
	case errors.Is(err, service.ErrNoEligibleThemes):
		return model.NewNotFoundError("eligible theme")
	case errors.Is(err, service.ErrExtensionNotFound):
		return model.NewNotFoundError("extension")

	// ===== Validation Errors → 422 =====
	case errors.Is(err, service.ErrMissingExtension):
		return model.NewValidationError([]model.FieldError{{Field: "extension", Message: err.Error()}})

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, database.ErrDuplicate):
		return model.NewConflictError("the record was modified concurrently")

	// ===== Default → 500 =====
	// ErrSampleFailed and ErrProcedureInstall land here: both mean the
	// sampling machinery itself broke, not that nothing matched.
	default:
		return model.NewInternalError("")
	}
}

// MapServiceErrorWithContext converts a service error to a ProblemDetails
// response with additional context about the operation that failed.
func MapServiceErrorWithContext(err error, operation string) *model.ProblemDetails {
	pd := MapServiceError(err)
	if pd != nil && pd.Status == 500 {
		pd.Detail = operation + ": an unexpected error occurred"
	}
	return pd
}
