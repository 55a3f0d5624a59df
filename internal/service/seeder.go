package service

import (
	"context"
	"fmt"
	mrand "math/rand/v2"
	"time"

	"github.com/themepick/api/internal/database"

	"github.com/google/uuid"
)

// SeederService generates mock data for testing and development
type SeederService struct {
	db database.Database
}

// NewSeederService creates a new seeder service
func NewSeederService(db database.Database) *SeederService {
	return &SeederService{db: db}
}

// SeedThemesRequest configures theme seeding
type SeedThemesRequest struct {
	Count int `json:"count"`
	// ExtensionsPerBatch controls how many distinct extensions the themes
	// are spread across. Defaults to one extension per 5 themes.
	ExtensionsPerBatch int `json:"extensions_per_batch,omitempty"`
	// EligiblePercent is the share of themes created with image_captured set.
	// Defaults to 80.
	EligiblePercent int `json:"eligible_percent,omitempty"`
	// DanglingPercent is the share of themes given an extension_id that
	// matches no extension record, for exercising the integrity sweep.
	DanglingPercent int `json:"dangling_percent,omitempty"`
}

// SeedResult contains the results of a seeding operation
type SeedResult struct {
	ThemesCreated     int      `json:"themes_created"`
	ExtensionsCreated int      `json:"extensions_created"`
	ThemeIDs          []string `json:"theme_ids"`
	ExtensionIDs      []string `json:"extension_ids"`
	Duration          int64    `json:"duration_ms"`
}

// CleanupResult contains the results of a cleanup operation
type CleanupResult struct {
	ThemesDeleted     int   `json:"themes_deleted"`
	ExtensionsDeleted int   `json:"extensions_deleted"`
	Duration          int64 `json:"duration_ms"`
}

// Sample data for realistic generation
var (
	themeAdjectives = []string{
		"Midnight", "Solar", "Nordic", "Pastel", "Neon", "Muted", "Vivid",
		"Dusty", "Arctic", "Amber", "Cobalt", "Crimson", "Sage", "Slate",
		"Obsidian", "Ivory", "Copper", "Lilac", "Teal", "Mono",
	}
	themeNouns = []string{
		"Dawn", "Dusk", "Forest", "Harbor", "Meadow", "Canyon", "Drift",
		"Ember", "Frost", "Grove", "Haze", "Horizon", "Lagoon", "Mirage",
		"Nebula", "Orchid", "Prism", "Reef", "Summit", "Tide",
	}
	extensionPublishers = []string{
		"nightowl", "palette-labs", "chromaworks", "hueforge", "tintsmith",
		"shadecraft", "colorloom", "spectra", "gradientry", "tonebox",
	}
)

// SeedThemes creates mock extensions and themes referencing them.
// All records carry seeded = true so cleanup can remove exactly this data.
func (s *SeederService) SeedThemes(ctx context.Context, req SeedThemesRequest) (*SeedResult, error) {
	start := time.Now()

	if req.Count <= 0 || req.Count > 1000 {
		return nil, fmt.Errorf("count must be between 1 and 1000")
	}
	if req.ExtensionsPerBatch <= 0 {
		req.ExtensionsPerBatch = (req.Count + 4) / 5
	}
	if req.EligiblePercent <= 0 || req.EligiblePercent > 100 {
		req.EligiblePercent = 80
	}
	if req.DanglingPercent < 0 || req.DanglingPercent > 100 {
		req.DanglingPercent = 0
	}

	extensionIDs := make([]string, 0, req.ExtensionsPerBatch)
	joinKeys := make([]string, 0, req.ExtensionsPerBatch)

	extBatch := database.NewAtomicBatch()
	for i := 0; i < req.ExtensionsPerBatch; i++ {
		id := uuid.NewString()
		publisher := extensionPublishers[mrand.IntN(len(extensionPublishers))]
		joinKey := fmt.Sprintf("%s.%s", publisher, uuid.NewString()[:8])
		name := fmt.Sprintf("%s themes", publisher)

		extBatch.Add(`
			UPSERT type::thing('extensions', $id) CONTENT {
				extension_id: $extension_id,
				display_name: $display_name,
				seeded: true
			}
		`, map[string]interface{}{
			"id":           id,
			"extension_id": joinKey,
			"display_name": name,
		})

		extensionIDs = append(extensionIDs, id)
		joinKeys = append(joinKeys, joinKey)
	}
	if err := extBatch.Execute(ctx, s.db); err != nil {
		return nil, fmt.Errorf("failed to seed extensions: %w", err)
	}

	themeIDs := make([]string, 0, req.Count)

	themeBatch := database.NewAtomicBatch()
	for i := 0; i < req.Count; i++ {
		id := uuid.NewString()
		name := fmt.Sprintf("%s %s",
			themeAdjectives[mrand.IntN(len(themeAdjectives))],
			themeNouns[mrand.IntN(len(themeNouns))])

		joinKey := joinKeys[i%len(joinKeys)]
		if req.DanglingPercent > 0 && mrand.IntN(100) < req.DanglingPercent {
			joinKey = fmt.Sprintf("orphan.%s", uuid.NewString()[:8])
		}

		eligible := mrand.IntN(100) < req.EligiblePercent

		themeBatch.Add(`
			UPSERT type::thing('themes', $id) CONTENT {
				name: $name,
				extension_id: $extension_id,
				image_captured: $image_captured,
				display: {
					accent: $accent,
					dark: $dark
				},
				seeded: true
			}
		`, map[string]interface{}{
			"id":             id,
			"name":           name,
			"extension_id":   joinKey,
			"image_captured": eligible,
			"accent":         fmt.Sprintf("#%06x", mrand.IntN(0x1000000)),
			"dark":           mrand.IntN(2) == 0,
		})

		themeIDs = append(themeIDs, id)
	}
	if err := themeBatch.Execute(ctx, s.db); err != nil {
		return nil, fmt.Errorf("failed to seed themes: %w", err)
	}

	return &SeedResult{
		ThemesCreated:     len(themeIDs),
		ExtensionsCreated: len(extensionIDs),
		ThemeIDs:          themeIDs,
		ExtensionIDs:      extensionIDs,
		Duration:          time.Since(start).Milliseconds(),
	}, nil
}

// Cleanup removes all seeded records
func (s *SeederService) Cleanup(ctx context.Context) (*CleanupResult, error) {
	start := time.Now()

	themes, err := s.countSeeded(ctx, "themes")
	if err != nil {
		return nil, err
	}
	extensions, err := s.countSeeded(ctx, "extensions")
	if err != nil {
		return nil, err
	}

	batch := database.NewAtomicBatch()
	batch.Add(`DELETE themes WHERE seeded = true`, nil)
	batch.Add(`DELETE extensions WHERE seeded = true`, nil)
	if err := batch.Execute(ctx, s.db); err != nil {
		return nil, fmt.Errorf("failed to delete seeded data: %w", err)
	}

	return &CleanupResult{
		ThemesDeleted:     themes,
		ExtensionsDeleted: extensions,
		Duration:          time.Since(start).Milliseconds(),
	}, nil
}

func (s *SeederService) countSeeded(ctx context.Context, table string) (int, error) {
	query := fmt.Sprintf(`SELECT count() AS count FROM %s WHERE seeded = true GROUP ALL`, table)
	results, err := s.db.Query(ctx, query, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count seeded %s: %w", table, err)
	}
	return extractSeededCount(results), nil
}

func extractSeededCount(results []interface{}) int {
	if len(results) == 0 {
		return 0
	}
	resp, ok := results[0].(map[string]interface{})
	if !ok {
		return 0
	}
	arr, ok := resp["result"].([]interface{})
	if !ok || len(arr) == 0 {
		return 0
	}
	row, ok := arr[0].(map[string]interface{})
	if !ok {
		return 0
	}
	switch v := row["count"].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	}
	return 0
}
