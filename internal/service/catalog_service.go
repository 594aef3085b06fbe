package service

import (
	"context"

	"github.com/rohan-06-eng/cantilver-expense/internal/models"
	"github.com/rohan-06-eng/cantilver-expense/internal/storage"
)

// CatalogService exposes the read-only category catalog.
type CatalogService struct {
	store storage.Store
}

// NewCatalogService creates a new CatalogService with the given storage backend.
func NewCatalogService(store storage.Store) *CatalogService {
	return &CatalogService{store: store}
}

// ListCategories returns all categories in catalog (seed) order.
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.store.ListCategories(ctx)
}

// CategoryNames returns just the category names, in catalog order.
func (s *CatalogService) CategoryNames(ctx context.Context) ([]string, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	return names, nil
}
