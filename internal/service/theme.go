package service

import (
	"context"

	"github.com/themepick/api/internal/model"
)

// ThemeStore is the theme data access needed by ThemeService
type ThemeStore interface {
	GetByID(ctx context.Context, id string) (*model.Theme, error)
}

// ExtensionResolver resolves extensions by their join key
type ExtensionResolver interface {
	GetByJoinKey(ctx context.Context, extensionID string) (*model.Extension, error)
}

// RandomSource draws a random eligible theme id
type RandomSource interface {
	Sample(ctx context.Context) (string, error)
}

// ThemeService serves randomly selected themes with their resolved
// extension metadata.
type ThemeService struct {
	themes     ThemeStore
	extensions ExtensionResolver
	sampler    RandomSource
}

// ThemeServiceConfig configures a ThemeService
type ThemeServiceConfig struct {
	ThemeRepo     ThemeStore
	ExtensionRepo ExtensionResolver
	Sampler       RandomSource
}

// NewThemeService creates a new theme service
func NewThemeService(cfg ThemeServiceConfig) *ThemeService {
	return &ThemeService{
		themes:     cfg.ThemeRepo,
		extensions: cfg.ExtensionRepo,
		sampler:    cfg.Sampler,
	}
}

// RandomTheme draws a random eligible theme and resolves its extension.
//
// Both resolution steps are guarded: a theme that vanished between sampling
// and the point read yields ErrThemeNotFound, and a dangling extension_id
// cross-reference yields ErrExtensionNotFound. Neither case dereferences an
// absent record.
func (s *ThemeService) RandomTheme(ctx context.Context) (*model.ThemeBundle, error) {
	id, err := s.sampler.Sample(ctx)
	if err != nil {
		return nil, err
	}

	theme, err := s.themes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if theme == nil {
		return nil, ErrThemeNotFound
	}

	ext, err := s.extensions.GetByJoinKey(ctx, theme.ExtensionID)
	if err != nil {
		return nil, err
	}
	if ext == nil {
		return nil, ErrExtensionNotFound
	}

	return &model.ThemeBundle{Theme: theme, Extension: ext}, nil
}
