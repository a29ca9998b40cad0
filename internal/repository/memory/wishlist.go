package memory

import (
	"context"
	"sync"

	"github.com/zenithwear/storefront/internal/domain"
)

// WishlistRepository implements repository.WishlistRepository using an
// in-memory map.
type WishlistRepository struct {
	mu sync.RWMutex
	lists  map[string][]string
}

// NewWishlistRepository creates a new in-memory wishlist repository.
func NewWishlistRepository() *WishlistRepository {
	return &WishlistRepository{
		lists: make(map[string][]string),
	}
}

// Get returns the wishlist for the given user, empty when none is stored.
func (r *WishlistRepository) Get(_ context.Context, userID string) (*domain.Wishlist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w := &domain.Wishlist{UserID: userID, ProductIDs: []string{}}
	if ids, ok := r.lists[userID]; ok {
		w.ProductIDs = cloneIDs(ids)
	}
	return w, nil
}

// Save stores a copy of the wishlist's product IDs keyed by user ID.
func (r *WishlistRepository) Save(_ context.Context, w *domain.Wishlist) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lists[w.UserID] = cloneIDs(w.ProductIDs)
	return nil
}

// Delete removes the stored wishlist for the given user.
func (r *WishlistRepository) Delete(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.lists, userID)
	return nil
}

func cloneIDs(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
