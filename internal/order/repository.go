package order

import (
	"context"
	"fmt"

	"arova-be/internal/logger"
	"arova-be/internal/storage"

	"go.uber.org/zap"
)

// ordersKey names the single durable record holding the order history.
const ordersKey = "arova_orders"

type Repository interface {
	Append(ctx context.Context, o *Order) error
	List(ctx context.Context) ([]Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)
}

type repository struct {
	store *storage.Store
}

func NewRepository(store *storage.Store) Repository {
	return &repository{store: store}
}

// Append reads the full order list, appends o, and writes the list
// back. Last writer wins; acceptable for a single-user local store.
func (r *repository) Append(ctx context.Context, o *Order) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Append"),
		zap.String("order_id", o.ID),
	)

	var orders []Order
	if err := r.store.Read(ordersKey, &orders); err != nil {
		log.Error("failed to read order list", zap.Error(err))
		return fmt.Errorf("append order: %w", err)
	}

	orders = append(orders, *o)

	if err := r.store.Write(ordersKey, orders); err != nil {
		log.Error("failed to write order list", zap.Error(err))
		return fmt.Errorf("append order: %w", err)
	}

	log.Info("order persisted", zap.Int("orders_total", len(orders)))

	return nil
}

func (r *repository) List(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := r.store.Read(ordersKey, &orders); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Order, error) {
	orders, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, nil
}
