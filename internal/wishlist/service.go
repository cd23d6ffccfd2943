package wishlist

import (
	"context"

	"arova-be/internal/catalog"
	"arova-be/internal/logger"

	"go.uber.org/zap"
)

// Service defines the business logic for the wishlist.
type Service interface {
	Add(ctx context.Context, productID string) (*Item, error)
	Remove(ctx context.Context, productID string) error
	Contains(ctx context.Context, productID string) (bool, error)
	Items(ctx context.Context) ([]Item, error)
	Count(ctx context.Context) (int, error)
}

type service struct {
	repo        Repository
	catalogRepo catalog.Repository
}

func NewService(repo Repository, catalogRepo catalog.Repository) Service {
	return &service{repo: repo, catalogRepo: catalogRepo}
}

func (s *service) Add(ctx context.Context, productID string) (*Item, error) {
	product, err := s.catalogRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	item, err := s.repo.Add(ctx, *product)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("added to wishlist", zap.String("product_id", productID))

	return item, nil
}

func (s *service) Remove(ctx context.Context, productID string) error {
	return s.repo.Remove(ctx, productID)
}

func (s *service) Contains(ctx context.Context, productID string) (bool, error) {
	return s.repo.Contains(ctx, productID)
}

func (s *service) Items(ctx context.Context) ([]Item, error) {
	return s.repo.Items(ctx)
}

func (s *service) Count(ctx context.Context) (int, error) {
	items, err := s.repo.Items(ctx)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}
