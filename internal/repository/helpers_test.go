package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/themepick/api/internal/model"
)

func TestRecordKey_String(t *testing.T) {
	assert.Equal(t, "ext-1", recordKey("extensions:ext-1"))
	assert.Equal(t, "bare", recordKey("bare"))
	assert.Equal(t, "ext-1", recordKey("extensions:⟨ext-1⟩"))
}

func TestRecordKey_RecordID(t *testing.T) {
	rid := models.RecordID{Table: "themes", ID: "theme-7"}
	assert.Equal(t, "theme-7", recordKey(rid))
	assert.Equal(t, "theme-7", recordKey(&rid))
}

func TestRecordKey_Map(t *testing.T) {
	assert.Equal(t, "t1", recordKey(map[string]interface{}{"tb": "themes", "id": "t1"}))
}

func TestUnmarshalRecord_Theme(t *testing.T) {
	raw := map[string]interface{}{
		"id":             models.RecordID{Table: "themes", ID: "t1"},
		"name":           "Midnight",
		"extension_id":   "xref-1",
		"image_captured": true,
		"display":        map[string]interface{}{"accent": "#7aa2f7"},
	}

	theme, err := unmarshalRecord[model.Theme](raw)
	assert.NoError(t, err)
	assert.Equal(t, "t1", theme.ID)
	assert.Equal(t, "Midnight", theme.Name)
	assert.Equal(t, "xref-1", theme.ExtensionID)
	assert.True(t, theme.ImageCaptured)
	assert.Equal(t, "#7aa2f7", theme.Display["accent"])
}

func TestUnmarshalRecord_EmptyArray(t *testing.T) {
	_, err := unmarshalRecord[model.Extension]([]interface{}{})
	assert.Error(t, err)
}

func TestExtractQueryRows(t *testing.T) {
	results := []interface{}{
		map[string]interface{}{
			"status": "OK",
			"result": []interface{}{"a", "b"},
		},
		map[string]interface{}{
			"status": "ERR",
			"result": []interface{}{"ignored"},
		},
	}
	rows := extractQueryRows(results)
	assert.Equal(t, []interface{}{"a", "b"}, rows)
}

func TestExtractCount(t *testing.T) {
	wrapped := map[string]interface{}{
		"status": "OK",
		"result": []interface{}{map[string]interface{}{"count": float64(42)}},
	}
	assert.Equal(t, 42, extractCount(wrapped))

	direct := map[string]interface{}{"count": float64(7)}
	assert.Equal(t, 7, extractCount(direct))
}
