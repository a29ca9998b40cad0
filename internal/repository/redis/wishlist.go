package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/zenithwear/storefront/internal/domain"
)

const wishlistKeyPrefix = "wishlist:"

// WishlistRepository implements repository.WishlistRepository using Redis.
// The value under wishlist:<userID> is a bare JSON array of product ids.
type WishlistRepository struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewWishlistRepository creates a Redis-backed wishlist repository. A zero
// ttl means the keys never expire.
func NewWishlistRepository(client *redis.Client, ttl time.Duration, logger *slog.Logger) *WishlistRepository {
	return &WishlistRepository{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Get retrieves the wishlist for a user. A missing key or an unparseable
// blob yields an empty wishlist.
func (r *WishlistRepository) Get(ctx context.Context, userID string) (*domain.Wishlist, error) {
	key := wishlistKeyPrefix + userID

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return &domain.Wishlist{UserID: userID, ProductIDs: []string{}}, nil
		}
		return nil, fmt.Errorf("redis get wishlist: %w", err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		r.logger.WarnContext(ctx, "discarding unreadable wishlist blob",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		return &domain.Wishlist{UserID: userID, ProductIDs: []string{}}, nil
	}

	return &domain.Wishlist{UserID: userID, ProductIDs: ids}, nil
}

// Save persists the full membership set for the wishlist's user.
func (r *WishlistRepository) Save(ctx context.Context, wishlist *domain.Wishlist) error {
	key := wishlistKeyPrefix + wishlist.UserID

	ids := wishlist.ProductIDs
	if ids == nil {
		ids = []string{}
	}

	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshal wishlist: %w", err)
	}

	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set wishlist: %w", err)
	}

	return nil
}

// Delete removes the user's wishlist key.
func (r *WishlistRepository) Delete(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, wishlistKeyPrefix+userID).Err(); err != nil {
		return fmt.Errorf("redis del wishlist: %w", err)
	}
	return nil
}
