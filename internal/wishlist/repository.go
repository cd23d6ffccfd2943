package wishlist

import (
	"context"
	"sync"
	"time"

	"arova-be/internal/catalog"
)

type Repository interface {
	Contains(ctx context.Context, productID string) (bool, error)
	Items(ctx context.Context) ([]Item, error)
	Add(ctx context.Context, product catalog.Product) (*Item, error)
	Remove(ctx context.Context, productID string) error
}

// memoryRepository keeps the wishlist as an insertion-ordered set of
// product ids.
type memoryRepository struct {
	mu    sync.Mutex
	items []*Item
	index map[string]struct{}
}

func NewMemoryRepository() Repository {
	return &memoryRepository{index: make(map[string]struct{})}
}

func (r *memoryRepository) Contains(ctx context.Context, productID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.index[productID]
	return ok, nil
}

func (r *memoryRepository) Items(ctx context.Context) ([]Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Item, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, *item)
	}
	return out, nil
}

// Add inserts the product once; adding an already-present product
// returns the existing entry unchanged.
func (r *memoryRepository) Add(ctx context.Context, product catalog.Product) (*Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[product.ID]; ok {
		for _, item := range r.items {
			if item.Product.ID == product.ID {
				cp := *item
				return &cp, nil
			}
		}
	}

	item := &Item{Product: product, AddedAt: time.Now()}
	r.items = append(r.items, item)
	r.index[product.ID] = struct{}{}

	cp := *item
	return &cp, nil
}

// Remove deletes the entry for productID. Absent ids are a no-op.
func (r *memoryRepository) Remove(ctx context.Context, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[productID]; !ok {
		return nil
	}

	delete(r.index, productID)
	for i, item := range r.items {
		if item.Product.ID == productID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			break
		}
	}
	return nil
}
