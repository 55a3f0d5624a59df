package service

import (
	"context"

	"github.com/themepick/api/internal/model"
)

// ExtensionStore is the extension data access needed by ExtensionService
type ExtensionStore interface {
	GetByID(ctx context.Context, id string) (*model.Extension, error)
	Upsert(ctx context.Context, ext *model.Extension) error
}

// ExtensionService handles extension record writes
type ExtensionService struct {
	extensions ExtensionStore
}

// ExtensionServiceConfig configures an ExtensionService
type ExtensionServiceConfig struct {
	ExtensionRepo ExtensionStore
}

// NewExtensionService creates a new extension service
func NewExtensionService(cfg ExtensionServiceConfig) *ExtensionService {
	return &ExtensionService{extensions: cfg.ExtensionRepo}
}

// Upsert inserts or replaces an extension keyed by id and returns the id.
// The write is an atomic insert-or-replace: a second upsert with the same id
// leaves exactly one record reflecting the latest payload.
func (s *ExtensionService) Upsert(ctx context.Context, ext *model.Extension) (string, error) {
	if ext == nil {
		return "", ErrMissingExtension
	}

	if err := s.extensions.Upsert(ctx, ext); err != nil {
		return "", err
	}
	return ext.ID, nil
}

// Get retrieves an extension by id
func (s *ExtensionService) Get(ctx context.Context, id string) (*model.Extension, error) {
	ext, err := s.extensions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ext == nil {
		return nil, ErrExtensionNotFound
	}
	return ext, nil
}
