package repository

import (
	"context"

	"github.com/zenithwear/storefront/internal/domain"
)

// CartRepository defines the persistence boundary for carts. The storage
// slot is keyed per user and holds the whole line-item collection as one
// blob.
//
// Get never fails on a missing or unreadable blob: both degrade to an empty
// cart. Corrupt state is discarded, not surfaced.
type CartRepository interface {
	// Get retrieves the cart for a user, returning an empty cart when no
	// usable state exists.
	Get(ctx context.Context, userID string) (*domain.Cart, error)

	// Save persists the full cart, overwriting any existing state for the
	// user.
	Save(ctx context.Context, cart *domain.Cart) error

	// Delete removes the user's cart state entirely.
	Delete(ctx context.Context, userID string) error
}

// WishlistRepository defines the persistence boundary for wishlists, with
// the same keying and degrade-to-empty contract as CartRepository. The blob
// is a bare JSON array of product ids.
type WishlistRepository interface {
	// Get retrieves the wishlist for a user, returning an empty wishlist
	// when no usable state exists.
	Get(ctx context.Context, userID string) (*domain.Wishlist, error)

	// Save persists the full membership set, overwriting any existing state
	// for the user.
	Save(ctx context.Context, wishlist *domain.Wishlist) error

	// Delete removes the user's wishlist state entirely.
	Delete(ctx context.Context, userID string) error
}
