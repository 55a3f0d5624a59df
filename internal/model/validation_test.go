package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpsertExtensionRequest_Validate_Valid(t *testing.T) {
	req := &UpsertExtensionRequest{
		ID:          "ext-1",
		ExtensionID: "xref-ext-1",
		DisplayName: "Dark Reader",
	}
	assert.Empty(t, req.Validate())
}

func TestUpsertExtensionRequest_Validate_MissingFields(t *testing.T) {
	req := &UpsertExtensionRequest{}
	errs := req.Validate()

	fields := make(map[string]bool)
	for _, e := range errs {
		fields[e.Field] = true
	}
	assert.True(t, fields["id"])
	assert.True(t, fields["extension_id"])
	assert.True(t, fields["display_name"])
}

func TestUpsertExtensionRequest_Validate_TooLong(t *testing.T) {
	req := &UpsertExtensionRequest{
		ID:          strings.Repeat("x", MaxExtensionIDLength+1),
		ExtensionID: "xref-1",
		DisplayName: strings.Repeat("y", MaxDisplayNameLength+1),
	}
	errs := req.Validate()

	var idLen, nameLen bool
	for _, e := range errs {
		if e.Field == "id" && strings.Contains(e.Message, "maximum length") {
			idLen = true
		}
		if e.Field == "display_name" && strings.Contains(e.Message, "maximum length") {
			nameLen = true
		}
	}
	assert.True(t, idLen)
	assert.True(t, nameLen)
}

func TestUpsertExtensionRequest_ToExtension(t *testing.T) {
	req := &UpsertExtensionRequest{
		ID:          "ext-1",
		ExtensionID: "xref-ext-1",
		DisplayName: "Dark Reader",
	}
	ext := req.ToExtension()
	assert.Equal(t, "ext-1", ext.ID)
	assert.Equal(t, "xref-ext-1", ext.ExtensionID)
	assert.Equal(t, "Dark Reader", ext.DisplayName)
	assert.False(t, ext.Seeded)
}

func TestProblemDetails_Error(t *testing.T) {
	pd := NewNotFoundError("theme")
	assert.Contains(t, pd.Error(), "404")
	assert.Contains(t, pd.Error(), "theme not found")
}

func TestNewValidationError_Detail(t *testing.T) {
	pd := NewValidationError([]FieldError{
		{Field: "id", Message: "id is required"},
		{Field: "display_name", Message: "display_name is required"},
	})
	assert.Equal(t, 422, pd.Status)
	assert.Contains(t, pd.Detail, "id: id is required")
	assert.Contains(t, pd.Detail, "1 more")
	assert.Len(t, pd.Errors, 2)
}
