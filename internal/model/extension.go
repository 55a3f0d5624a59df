package model

// Extension represents metadata describing a client-side add-on.
//
// ExtensionID is the join key referenced by Theme.ExtensionID. It is a
// cross-reference field, distinct from the record's own ID.
type Extension struct {
	ID          string `json:"id"`
	ExtensionID string `json:"extension_id"`
	DisplayName string `json:"display_name"`
	// Seeded marks records created by the admin seeder for later cleanup.
	Seeded bool `json:"seeded,omitempty"`
}

// Business constraints for extensions
const (
	MaxExtensionIDLength   = 256
	MaxDisplayNameLength   = 200
	MaxExtensionJoinKeyLen = 256
)

// UpsertExtensionRequest represents a request to insert or replace an
// extension record keyed by id.
type UpsertExtensionRequest struct {
	ID          string `json:"id"`
	ExtensionID string `json:"extension_id"`
	DisplayName string `json:"display_name"`
}

// Validate validates the upsert request
func (r *UpsertExtensionRequest) Validate() []FieldError {
	var errors []FieldError

	if r.ID == "" {
		errors = append(errors, FieldError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if len(r.ID) > MaxExtensionIDLength {
		errors = append(errors, FieldError{
			Field:   "id",
			Message: "id exceeds maximum length",
		})
	}

	if r.ExtensionID == "" {
		errors = append(errors, FieldError{
			Field:   "extension_id",
			Message: "extension_id is required",
		})
	}
	if len(r.ExtensionID) > MaxExtensionJoinKeyLen {
		errors = append(errors, FieldError{
			Field:   "extension_id",
			Message: "extension_id exceeds maximum length",
		})
	}

	if r.DisplayName == "" {
		errors = append(errors, FieldError{
			Field:   "display_name",
			Message: "display_name is required",
		})
	}
	if len(r.DisplayName) > MaxDisplayNameLength {
		errors = append(errors, FieldError{
			Field:   "display_name",
			Message: "display_name exceeds maximum length",
		})
	}

	return errors
}

// ToExtension converts the request into an Extension record
func (r *UpsertExtensionRequest) ToExtension() *Extension {
	return &Extension{
		ID:          r.ID,
		ExtensionID: r.ExtensionID,
		DisplayName: r.DisplayName,
	}
}
