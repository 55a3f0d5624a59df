package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/surrealdb/surrealdb.go/pkg/models"
	"github.com/themepick/api/internal/database"
)

// recordKey extracts the application-level key from a SurrealDB record id.
// Records are keyed by their application id ("extensions:ext-1" -> "ext-1"),
// so callers only ever see the bare key.
func recordKey(id interface{}) string {
	switch v := id.(type) {
	case string:
		return stripTablePrefix(v)
	case models.RecordID:
		return fmt.Sprintf("%v", v.ID)
	case *models.RecordID:
		if v != nil {
			return fmt.Sprintf("%v", v.ID)
		}
	case map[string]interface{}:
		// Handle {"tb": "table", "id": "xxx"} format
		if idVal, ok := v["id"]; ok {
			return fmt.Sprintf("%v", idVal)
		}
		if idVal, ok := v["ID"]; ok {
			return fmt.Sprintf("%v", idVal)
		}
	}
	return fmt.Sprintf("%v", id)
}

// stripTablePrefix removes a leading "table:" prefix from a record id string
func stripTablePrefix(id string) string {
	if i := strings.IndexByte(id, ':'); i >= 0 {
		key := id[i+1:]
		// SurrealDB may angle-quote or backtick-quote non-trivial keys
		if strings.HasPrefix(key, "⟨") && strings.HasSuffix(key, "⟩") {
			return strings.TrimSuffix(strings.TrimPrefix(key, "⟨"), "⟩")
		}
		if len(key) >= 2 && key[0] == '`' && key[len(key)-1] == '`' {
			return key[1 : len(key)-1]
		}
		return key
	}
	return id
}

// unmarshalRecord converts a raw result map into a typed record via JSON
// round-trip, normalizing the record id to its bare key first.
func unmarshalRecord[T any](result interface{}) (*T, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	if arr, ok := result.([]interface{}); ok {
		if len(arr) == 0 {
			return nil, database.ErrNotFound
		}
		result = arr[0]
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	if id, ok := data["id"]; ok {
		data["id"] = recordKey(id)
	}

	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	var record T
	if err := json.Unmarshal(jsonBytes, &record); err != nil {
		return nil, err
	}

	return &record, nil
}

// extractQueryRows unwraps the {status, result} response wrapper produced by
// database.Query and returns the flattened rows of every statement.
func extractQueryRows(results []interface{}) []interface{} {
	rows := make([]interface{}, 0)
	for _, result := range results {
		resp, ok := result.(map[string]interface{})
		if !ok {
			continue
		}
		if status, ok := resp["status"].(string); !ok || status != "OK" {
			continue
		}
		if resultData, ok := resp["result"].([]interface{}); ok {
			rows = append(rows, resultData...)
		}
	}
	return rows
}

// extractCount extracts count from a SurrealDB count query result
func extractCount(result interface{}) int {
	if resp, ok := result.(map[string]interface{}); ok {
		if status, ok := resp["status"].(string); ok && status == "OK" {
			if resultData, ok := resp["result"].([]interface{}); ok && len(resultData) > 0 {
				if data, ok := resultData[0].(map[string]interface{}); ok {
					return extractCountValue(data["count"])
				}
			}
		}
		// Direct access
		return extractCountValue(resp["count"])
	}
	return 0
}

// extractCountValue converts various numeric types to int
func extractCountValue(v interface{}) int {
	switch c := v.(type) {
	case float64:
		return int(c)
	case float32:
		return int(c)
	case int:
		return c
	case int64:
		return int(c)
	case uint64:
		return int(c)
	}
	return 0
}
