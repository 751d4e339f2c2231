package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"fooddelivery/internal/core/domain"
	"fooddelivery/internal/port"
)

// ItemDraft carries the fields an admin enters for a new food item; the ID
// is allocated by the store.
type ItemDraft struct {
	Name            string
	QuantityUnit    string
	Price           decimal.Decimal
	DiscountPercent decimal.Decimal
	Stock           int
}

// CatalogService is the façade for catalog maintenance. Duplicate names are
// allowed; only IDs are unique, guaranteed by allocation.
type CatalogService struct {
	catalog port.CatalogRepository
	logger  *zap.SugaredLogger
}

func NewCatalogService(catalog port.CatalogRepository, logger *zap.SugaredLogger) *CatalogService {
	return &CatalogService{catalog: catalog, logger: logger}
}

// Add allocates a fresh ID and appends the item.
func (s *CatalogService) Add(ctx context.Context, draft ItemDraft) (*domain.FoodItem, error) {
	id, err := s.catalog.AllocateID(ctx)
	if err != nil {
		return nil, fmt.Errorf("allocate food id: %w", err)
	}

	item := domain.FoodItem{
		ID:              id,
		Name:            draft.Name,
		QuantityUnit:    draft.QuantityUnit,
		Price:           draft.Price,
		DiscountPercent: draft.DiscountPercent,
		Stock:           draft.Stock,
	}
	if err := s.catalog.Insert(ctx, item); err != nil {
		return nil, fmt.Errorf("insert food item: %w", err)
	}

	s.logger.Infow("food item added", "food_id", item.ID, "name", item.Name)
	return &item, nil
}

// Get returns the item with the given ID.
func (s *CatalogService) Get(ctx context.Context, id string) (*domain.FoodItem, error) {
	return s.catalog.GetByID(ctx, id)
}

// Edit replaces the stored row for item.ID. The ID itself is immutable.
func (s *CatalogService) Edit(ctx context.Context, item domain.FoodItem) error {
	if err := s.catalog.Update(ctx, item); err != nil {
		return err
	}
	s.logger.Infow("food item updated", "food_id", item.ID)
	return nil
}

// Remove deletes the item with the given ID.
func (s *CatalogService) Remove(ctx context.Context, id string) error {
	if err := s.catalog.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("food item removed", "food_id", id)
	return nil
}

// List returns the catalog in file order.
func (s *CatalogService) List(ctx context.Context) ([]domain.FoodItem, error) {
	return s.catalog.ListAll(ctx)
}
