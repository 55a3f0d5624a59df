package repository

import (
	"context"
	"errors"

	"github.com/themepick/api/internal/database"
	"github.com/themepick/api/internal/model"
)

// ThemeRepository handles theme data access
type ThemeRepository struct {
	db database.Database
}

// NewThemeRepository creates a new theme repository
func NewThemeRepository(db database.Database) *ThemeRepository {
	return &ThemeRepository{db: db}
}

// GetByID retrieves a theme by its application id.
// Returns (nil, nil) when no theme with that id exists.
func (r *ThemeRepository) GetByID(ctx context.Context, id string) (*model.Theme, error) {
	query := `SELECT * FROM ONLY type::thing('themes', $id)`
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

	return unmarshalRecord[model.Theme](result)
}

// Upsert inserts or replaces a theme keyed by its application id
func (r *ThemeRepository) Upsert(ctx context.Context, theme *model.Theme) error {
	query := `
		UPSERT type::thing('themes', $id) CONTENT {
			name: $name,
			extension_id: $extension_id,
			image_captured: $image_captured,
			display: $display,
			seeded: $seeded
		}
	`
	vars := map[string]interface{}{
		"id":             theme.ID,
		"name":           theme.Name,
		"extension_id":   theme.ExtensionID,
		"image_captured": theme.ImageCaptured,
		"display":        theme.Display,
		"seeded":         theme.Seeded,
	}
	return r.db.Execute(ctx, query, vars)
}

// ListPage returns one bounded page of themes, ordered by id for a stable
// scan. start is a numeric offset cursor; a short page means the scan is
// complete.
func (r *ThemeRepository) ListPage(ctx context.Context, start, limit int) ([]*model.Theme, error) {
	query := `SELECT * FROM themes ORDER BY id LIMIT $limit START $start`
	vars := map[string]interface{}{"start": start, "limit": limit}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	rows := extractQueryRows(results)
	themes := make([]*model.Theme, 0, len(rows))
	for _, row := range rows {
		theme, err := unmarshalRecord[model.Theme](row)
		if err != nil {
			continue
		}
		themes = append(themes, theme)
	}
	return themes, nil
}

// CountEligible counts themes eligible for sampling (image_captured = true)
func (r *ThemeRepository) CountEligible(ctx context.Context) (int, error) {
	query := `SELECT count() AS count FROM themes WHERE image_captured = true GROUP ALL`

	result, err := r.db.QueryOne(ctx, query, nil)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return extractCount(result), nil
}
