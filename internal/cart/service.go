package cart

import (
	"context"

	"arova-be/internal/catalog"
	"arova-be/internal/logger"

	"go.uber.org/zap"
)

// Service defines the business logic for the cart.
type Service interface {
	AddToCart(ctx context.Context, productID string) (*CartItem, error)
	RemoveFromCart(ctx context.Context, productID string) error
	UpdateQuantity(ctx context.Context, productID string, quantity int) error
	Items(ctx context.Context) ([]CartItem, error)
	Subtotal(ctx context.Context) (float64, error)
	TotalQuantity(ctx context.Context) (int, error)
	Clear(ctx context.Context) error
}

type service struct {
	repo        Repository
	catalogRepo catalog.Repository
}

// NewService creates a new cart service
func NewService(repo Repository, catalogRepo catalog.Repository) Service {
	return &service{repo: repo, catalogRepo: catalogRepo}
}

// AddToCart puts one unit of the product in the cart. An existing line
// for the same product id has its quantity incremented instead of a
// second line being appended.
func (s *service) AddToCart(ctx context.Context, productID string) (*CartItem, error) {
	log := logger.FromCtx(ctx).With(zap.String("product_id", productID))

	// 1. Look the product up in the catalog
	product, err := s.catalogRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	// 2. Get existing cart line (if any)
	item, err := s.repo.GetItem(ctx, productID)
	if err != nil {
		return nil, err
	}

	// 3. Create or increment
	if item == nil {
		item, err = s.repo.Create(ctx, *product, 1)
	} else {
		item, err = s.repo.UpdateQuantity(ctx, productID, item.Quantity+1)
	}
	if err != nil {
		return nil, err
	}

	log.Info("added to cart", zap.Int("final_qty", item.Quantity))

	return item, nil
}

// RemoveFromCart deletes a product's line from the cart. Removing a
// product that is not in the cart is a no-op.
func (s *service) RemoveFromCart(ctx context.Context, productID string) error {
	return s.repo.Remove(ctx, productID)
}

// UpdateQuantity sets a line's quantity. A quantity of zero or less
// removes the line; both directions are idempotent.
func (s *service) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		return s.repo.Remove(ctx, productID)
	}

	_, err := s.repo.UpdateQuantity(ctx, productID, quantity)
	return err
}

func (s *service) Items(ctx context.Context) ([]CartItem, error) {
	return s.repo.Items(ctx)
}

// Subtotal is the sum of price times quantity over every line.
func (s *service) Subtotal(ctx context.Context) (float64, error) {
	items, err := s.repo.Items(ctx)
	if err != nil {
		return 0, err
	}

	var sum float64
	for _, item := range items {
		sum += item.Product.Price * float64(item.Quantity)
	}
	return sum, nil
}

// TotalQuantity is the unit count across all lines (the header badge).
func (s *service) TotalQuantity(ctx context.Context) (int, error) {
	items, err := s.repo.Items(ctx)
	if err != nil {
		return 0, err
	}

	var total int
	for _, item := range items {
		total += item.Quantity
	}
	return total, nil
}

func (s *service) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx)
}
