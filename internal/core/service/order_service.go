package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"fooddelivery/internal/core/domain"
	"fooddelivery/internal/port"
)

var ErrInsufficientStock = errors.New("insufficient stock")

// OrderService runs the composite order transaction: validate availability,
// decrement catalog stock, append to the user's order history.
type OrderService struct {
	catalog port.CatalogRepository
	users   port.UserRepository
	logger  *zap.SugaredLogger
	now     func() time.Time
}

func NewOrderService(catalog port.CatalogRepository, users port.UserRepository, logger *zap.SugaredLogger) *OrderService {
	return &OrderService{
		catalog: catalog,
		users:   users,
		logger:  logger,
		now:     time.Now,
	}
}

// PlaceOrder commits one confirmed order and returns the item with its
// decremented stock. The authoritative stock is re-read from the catalog,
// never taken from the snapshot the caller displayed.
//
// The stock update and the history append are two independent atomic file
// rewrites, not one cross-store transaction. A failure between them leaves
// stock decremented with no history entry; that inconsistency is logged
// here and the error returned, never swallowed.
func (s *OrderService) PlaceOrder(ctx context.Context, itemID string, quantity int, email string) (*domain.FoodItem, error) {
	item, err := s.catalog.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if quantity <= 0 || quantity > item.Stock {
		return nil, fmt.Errorf("%d of %s (stock %d): %w", quantity, item.Name, item.Stock, ErrInsufficientStock)
	}

	item.Stock -= quantity
	if err := s.catalog.Update(ctx, *item); err != nil {
		return nil, fmt.Errorf("decrement stock: %w", err)
	}

	entry := domain.FormatOrderEntry(item.Name, item.Price, s.now())
	if err := s.users.AppendOrderHistory(ctx, email, entry); err != nil {
		s.logger.Errorw("order history append failed after stock decrement",
			"food_id", item.ID,
			"email", email,
			"quantity", quantity,
			"entry", entry,
			"error", err)
		return nil, fmt.Errorf("record order history: %w", err)
	}

	return item, nil
}
