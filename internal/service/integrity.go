package service

import (
	"context"

	"github.com/themepick/api/internal/model"
)

// ThemePager pages through all themes in stable order
type ThemePager interface {
	ListPage(ctx context.Context, start, limit int) ([]*model.Theme, error)
}

// JoinKeyFilter reports which of a batch of join keys resolve to extensions
type JoinKeyFilter interface {
	FilterExistingJoinKeys(ctx context.Context, keys []string) (map[string]bool, error)
}

// DanglingReference describes a theme whose extension_id cross-reference
// matches no extension record.
type DanglingReference struct {
	ThemeID     string `json:"theme_id"`
	ExtensionID string `json:"extension_id"`
}

// IntegrityService detects dangling theme→extension references.
//
// The reference is not enforced at write time, so a theme can point at an
// extension join key that no record carries. The service pages through all
// themes and checks each page's keys in one batched query.
type IntegrityService struct {
	themes     ThemePager
	extensions JoinKeyFilter
	pageSize   int
}

// IntegrityServiceConfig configures an IntegrityService
type IntegrityServiceConfig struct {
	ThemeRepo     ThemePager
	ExtensionRepo JoinKeyFilter
	PageSize      int
}

// NewIntegrityService creates a new integrity service
func NewIntegrityService(cfg IntegrityServiceConfig) *IntegrityService {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 1000
	}
	return &IntegrityService{
		themes:     cfg.ThemeRepo,
		extensions: cfg.ExtensionRepo,
		pageSize:   pageSize,
	}
}

// FindDanglingReferences scans every theme and returns those whose
// extension_id resolves to no extension record.
func (s *IntegrityService) FindDanglingReferences(ctx context.Context) ([]DanglingReference, error) {
	var dangling []DanglingReference

	for start := 0; ; start += s.pageSize {
		page, err := s.themes.ListPage(ctx, start, s.pageSize)
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			break
		}

		keys := make([]string, 0, len(page))
		seen := make(map[string]bool, len(page))
		for _, theme := range page {
			if theme.ExtensionID == "" || seen[theme.ExtensionID] {
				continue
			}
			seen[theme.ExtensionID] = true
			keys = append(keys, theme.ExtensionID)
		}

		existing, err := s.extensions.FilterExistingJoinKeys(ctx, keys)
		if err != nil {
			return nil, err
		}

		for _, theme := range page {
			if theme.ExtensionID == "" || existing[theme.ExtensionID] {
				continue
			}
			dangling = append(dangling, DanglingReference{
				ThemeID:     theme.ID,
				ExtensionID: theme.ExtensionID,
			})
		}

		if len(page) < s.pageSize {
			break
		}
	}

	return dangling, nil
}
