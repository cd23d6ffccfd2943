package cart

import (
	"context"
	"sync"
	"time"

	"arova-be/internal/catalog"
)

type Repository interface {
	GetItem(ctx context.Context, productID string) (*CartItem, error)
	Items(ctx context.Context) ([]CartItem, error)
	Create(ctx context.Context, product catalog.Product, quantity int) (*CartItem, error)
	UpdateQuantity(ctx context.Context, productID string, quantity int) (*CartItem, error)
	Remove(ctx context.Context, productID string) error
	Clear(ctx context.Context) error
}

// memoryRepository is the live cart: an ordered sequence of line items,
// at most one per product id. It is the single owner of the cart state;
// every read hands out copies.
type memoryRepository struct {
	mu    sync.Mutex
	items []*CartItem
}

func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) GetItem(ctx context.Context, productID string) (*CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item := r.find(productID); item != nil {
		cp := *item
		return &cp, nil
	}
	return nil, nil
}

func (r *memoryRepository) Items(ctx context.Context) ([]CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]CartItem, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, *item)
	}
	return out, nil
}

func (r *memoryRepository) Create(ctx context.Context, product catalog.Product, quantity int) (*CartItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	item := &CartItem{Product: product, Quantity: quantity, AddedAt: time.Now()}
	r.items = append(r.items, item)

	cp := *item
	return &cp, nil
}

func (r *memoryRepository) UpdateQuantity(ctx context.Context, productID string, quantity int) (*CartItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	item := r.find(productID)
	if item == nil {
		return nil, nil
	}
	item.Quantity = quantity

	cp := *item
	return &cp, nil
}

// Remove deletes the line for productID. Absent ids are a no-op.
func (r *memoryRepository) Remove(ctx context.Context, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, item := range r.items {
		if item.Product.ID == productID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memoryRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = nil
	return nil
}

// find must be called with the lock held.
func (r *memoryRepository) find(productID string) *CartItem {
	for _, item := range r.items {
		if item.Product.ID == productID {
			return item
		}
	}
	return nil
}
