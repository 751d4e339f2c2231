package port

import (
	"context"

	"fooddelivery/internal/core/domain"
)

type CatalogRepository interface {
	// AllocateID returns a 5-digit ID not present in the current catalog
	AllocateID(ctx context.Context) (string, error)

	// Insert appends a new catalog row
	Insert(ctx context.Context, item domain.FoodItem) error

	// GetByID returns the first row matching, ErrNotFound on miss
	GetByID(ctx context.Context, id string) (*domain.FoodItem, error)

	// Update replaces the matching row, leaving all others untouched
	Update(ctx context.Context, item domain.FoodItem) error

	// Delete removes the matching row
	Delete(ctx context.Context, id string) error

	// ListAll returns every readable row in file order
	ListAll(ctx context.Context) ([]domain.FoodItem, error)
}
