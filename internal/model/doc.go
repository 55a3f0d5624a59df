// Package model defines the domain entities and API error types for the
// ThemePick API.
//
// # Entities
//
//   - Theme: a named UI skin definition, cross-referencing one Extension
//     through its extension_id join key
//   - Extension: client add-on metadata carrying the join key and a
//     human-readable display name
//   - ThemeBundle: a resolved (theme, extension) pair returned by the random
//     fetch endpoint
//
// # Request Types
//
// Request types carry their own validation, returning []FieldError for use
// with NewValidationError:
//
//	if errs := req.Validate(); len(errs) > 0 {
//	    WriteError(w, model.NewValidationError(errs))
//	}
//
// # Error Types
//
// HTTP errors follow RFC 9457 Problem Details (ProblemDetails). Handlers use
// the New*Error constructors rather than building responses by hand.
package model
