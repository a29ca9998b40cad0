// Package memory provides in-memory repository implementations backed by
// maps. They satisfy the same contracts as the redis implementations and
// are intended for tests and local development without a Redis instance.
package memory

import (
	"context"
	"sync"

	"github.com/zenithwear/storefront/internal/domain"
)

// CartRepository implements repository.CartRepository using an in-memory map.
type CartRepository struct {
	mu    sync.RWMutex
	carts map[string][]domain.LineItem
}

// NewCartRepository creates a new in-memory cart repository.
func NewCartRepository() *CartRepository {
	return &CartRepository{
		carts: make(map[string][]domain.LineItem),
	}
}

// Get returns the cart for the given user. A user with no stored cart
// gets an empty cart, matching the redis implementation.
func (r *CartRepository) Get(_ context.Context, userID string) (*domain.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart := &domain.Cart{UserID: userID, Items: []domain.LineItem{}}
	if items, ok := r.carts[userID]; ok {
		cart.Items = cloneItems(items)
	}
	return cart, nil
}

// Save stores a copy of the cart's items keyed by user ID.
func (r *CartRepository) Save(_ context.Context, cart *domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[cart.UserID] = cloneItems(cart.Items)
	return nil
}

// Delete removes the stored cart for the given user.
func (r *CartRepository) Delete(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, userID)
	return nil
}

func cloneItems(items []domain.LineItem) []domain.LineItem {
	out := make([]domain.LineItem, len(items))
	copy(out, items)
	return out
}
