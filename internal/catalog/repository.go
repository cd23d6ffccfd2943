package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed products.json
var productsJSON []byte

type Repository interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
}

// repository holds the immutable product dataset, loaded once. Nothing
// mutates it after construction, so reads need no locking.
type repository struct {
	products []Product
	byID     map[string]int
}

func NewRepository() (Repository, error) {
	var products []Product
	if err := json.Unmarshal(productsJSON, &products); err != nil {
		return nil, fmt.Errorf("load product catalog: %w", err)
	}

	byID := make(map[string]int, len(products))
	for i, p := range products {
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("load product catalog: duplicate product id %q", p.ID)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("load product catalog: negative price on %q", p.ID)
		}
		byID[p.ID] = i
	}

	return &repository{products: products, byID: byID}, nil
}

// List returns the full catalog in insertion order.
func (r *repository) List(ctx context.Context) ([]Product, error) {
	out := make([]Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	p := r.products[i]
	return &p, nil
}
