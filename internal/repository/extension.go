package repository

import (
	"context"
	"errors"

	"github.com/themepick/api/internal/database"
	"github.com/themepick/api/internal/model"
)

// ExtensionRepository handles extension data access
type ExtensionRepository struct {
	db database.Database
}

// NewExtensionRepository creates a new extension repository
func NewExtensionRepository(db database.Database) *ExtensionRepository {
	return &ExtensionRepository{db: db}
}

// GetByID retrieves an extension by its application id.
// Returns (nil, nil) when no extension with that id exists.
func (r *ExtensionRepository) GetByID(ctx context.Context, id string) (*model.Extension, error) {
	query := `SELECT * FROM ONLY type::thing('extensions', $id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if result == nil {
		return nil, nil
	}

	return unmarshalRecord[model.Extension](result)
}

// GetByJoinKey retrieves the extension whose extension_id join key matches.
// This is the cross-reference used by Theme.ExtensionID, distinct from the
// record's own id. Returns (nil, nil) when no extension matches.
func (r *ExtensionRepository) GetByJoinKey(ctx context.Context, extensionID string) (*model.Extension, error) {
	query := `SELECT * FROM extensions WHERE extension_id = $extension_id LIMIT 1`
	vars := map[string]interface{}{"extension_id": extensionID}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return unmarshalRecord[model.Extension](result)
}

// Upsert inserts or replaces an extension keyed by its application id
func (r *ExtensionRepository) Upsert(ctx context.Context, ext *model.Extension) error {
	query := `
		UPSERT type::thing('extensions', $id) CONTENT {
			extension_id: $extension_id,
			display_name: $display_name,
			seeded: $seeded
		}
	`
	vars := map[string]interface{}{
		"id":           ext.ID,
		"extension_id": ext.ExtensionID,
		"display_name": ext.DisplayName,
		"seeded":       ext.Seeded,
	}
	return r.db.Execute(ctx, query, vars)
}

// FilterExistingJoinKeys returns, for a batch of join keys, the subset that
// resolves to at least one extension record. Used by the integrity sweep to
// detect dangling theme references without a per-theme query.
func (r *ExtensionRepository) FilterExistingJoinKeys(ctx context.Context, keys []string) (map[string]bool, error) {
	existing := make(map[string]bool, len(keys))
	if len(keys) == 0 {
		return existing, nil
	}

	query := `SELECT VALUE extension_id FROM extensions WHERE extension_id IN $keys`
	vars := map[string]interface{}{"keys": keys}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	for _, row := range extractQueryRows(results) {
		if key, ok := row.(string); ok {
			existing[key] = true
		}
	}
	return existing, nil
}

// Count counts all extension records
func (r *ExtensionRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT count() AS count FROM extensions GROUP ALL`

	result, err := r.db.QueryOne(ctx, query, nil)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return extractCount(result), nil
}
