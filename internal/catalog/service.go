package catalog

import (
	"context"

	"arova-be/internal/logger"
	"arova-be/internal/utils"

	"go.uber.org/zap"
)

// Service defines read access to the product catalog.
type Service interface {
	ListProducts(ctx context.Context, category *string) ([]Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	Categories(ctx context.Context) ([]Category, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// ListProducts returns the catalog, optionally narrowed to one gender
// category. The filter is a case-sensitive exact match; no match is an
// empty slice, not an error. Insertion order is preserved either way.
func (s *service) ListProducts(ctx context.Context, category *string) ([]Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if category != nil && *category != "" {
		filtered := make([]Product, 0, len(products))
		for _, p := range products {
			if p.Gender == *category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	logger.FromCtx(ctx).Debug("catalog listed",
		zap.String("category", utils.PtrString(category)),
		zap.Int("matches", len(products)),
	)

	return products, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

// Categories lists the distinct gender keys in catalog order with their
// product counts, for the home page grid.
func (s *service) Categories(ctx context.Context) ([]Category, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	categories := make([]Category, 0, 4)
	for _, p := range products {
		if i, ok := index[p.Gender]; ok {
			categories[i].Count++
			continue
		}
		index[p.Gender] = len(categories)
		categories = append(categories, Category{Key: p.Gender, Count: 1})
	}

	return categories, nil
}
