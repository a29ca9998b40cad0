package service

import (
	"context"
	"fmt"
	"log/slog"

	apperrors "github.com/zenithwear/storefront/pkg/errors"

	"github.com/zenithwear/storefront/internal/catalog"
	"github.com/zenithwear/storefront/internal/domain"
	"github.com/zenithwear/storefront/internal/event"
	"github.com/zenithwear/storefront/internal/repository"
)

// WishlistView is the wishlist enriched with catalog data. Product IDs
// no longer present in the catalog are omitted from Products but stay
// in ProductIDs.
type WishlistView struct {
	UserID     string
	ProductIDs []string
	Products   []domain.Product
	Count      int
}

// WishlistService implements the business logic for wishlist operations.
type WishlistService struct {
	repo     repository.WishlistRepository
	catalog  *catalog.Catalog
	producer *event.Producer
	logger   *slog.Logger
}

// NewWishlistService creates a new wishlist service.
func NewWishlistService(repo repository.WishlistRepository, cat *catalog.Catalog, producer *event.Producer, logger *slog.Logger) *WishlistService {
	return &WishlistService{
		repo:     repo,
		catalog:  cat,
		producer: producer,
		logger:   logger,
	}
}

// GetWishlist retrieves the wishlist for a user, enriched with live
// catalog data. A user with no stored wishlist gets an empty view.
func (s *WishlistService) GetWishlist(ctx context.Context, userID string) (*WishlistView, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}

	w, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get wishlist: %w", err)
	}

	return s.view(w), nil
}

// AddProduct adds a product to the wishlist. Adding a product that is
// already present leaves the wishlist unchanged.
func (s *WishlistService) AddProduct(ctx context.Context, userID, productID string) (*WishlistView, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	w, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get wishlist for add: %w", err)
	}

	if !w.Add(productID) {
		return s.view(w), nil
	}

	if err := s.repo.Save(ctx, w); err != nil {
		return nil, fmt.Errorf("save wishlist: %w", err)
	}

	s.publishUpdated(ctx, w)

	s.logger.InfoContext(ctx, "product added to wishlist",
		slog.String("user_id", userID),
		slog.String("product_id", productID),
	)

	return s.view(w), nil
}

// RemoveProduct removes a product from the wishlist. Removing an absent
// product leaves the wishlist unchanged.
func (s *WishlistService) RemoveProduct(ctx context.Context, userID, productID string) (*WishlistView, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	w, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get wishlist for remove: %w", err)
	}

	if !w.Remove(productID) {
		return s.view(w), nil
	}

	if err := s.repo.Save(ctx, w); err != nil {
		return nil, fmt.Errorf("save wishlist: %w", err)
	}

	s.publishUpdated(ctx, w)

	s.logger.InfoContext(ctx, "product removed from wishlist",
		slog.String("user_id", userID),
		slog.String("product_id", productID),
	)

	return s.view(w), nil
}

// ToggleProduct flips a product's wishlist membership and reports the
// new state: true when the product is now present.
func (s *WishlistService) ToggleProduct(ctx context.Context, userID, productID string) (*WishlistView, bool, error) {
	if userID == "" {
		return nil, false, apperrors.InvalidInput("user id is required")
	}
	if productID == "" {
		return nil, false, apperrors.InvalidInput("product id is required")
	}

	w, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, false, fmt.Errorf("get wishlist for toggle: %w", err)
	}

	present := w.Toggle(productID)

	if err := s.repo.Save(ctx, w); err != nil {
		return nil, false, fmt.Errorf("save wishlist: %w", err)
	}

	s.publishUpdated(ctx, w)

	s.logger.InfoContext(ctx, "wishlist toggled",
		slog.String("user_id", userID),
		slog.String("product_id", productID),
		slog.Bool("present", present),
	)

	return s.view(w), present, nil
}

// Has reports whether the given product is on the user's wishlist.
func (s *WishlistService) Has(ctx context.Context, userID, productID string) (bool, error) {
	if userID == "" {
		return false, apperrors.InvalidInput("user id is required")
	}
	if productID == "" {
		return false, apperrors.InvalidInput("product id is required")
	}

	w, err := s.repo.Get(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("get wishlist: %w", err)
	}

	return w.Has(productID), nil
}

// ClearWishlist removes the user's entire wishlist.
func (s *WishlistService) ClearWishlist(ctx context.Context, userID string) error {
	if userID == "" {
		return apperrors.InvalidInput("user id is required")
	}

	if err := s.repo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("clear wishlist: %w", err)
	}

	s.publishUpdated(ctx, &domain.Wishlist{UserID: userID, ProductIDs: []string{}})

	s.logger.InfoContext(ctx, "wishlist cleared", slog.String("user_id", userID))

	return nil
}

func (s *WishlistService) view(w *domain.Wishlist) *WishlistView {
	return &WishlistView{
		UserID:     w.UserID,
		ProductIDs: w.ProductIDs,
		Products:   w.Products(s.catalog.Resolve),
		Count:      w.Count(),
	}
}

func (s *WishlistService) publishUpdated(ctx context.Context, w *domain.Wishlist) {
	if err := s.producer.PublishWishlistUpdated(ctx, w); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish wishlist.updated event",
			slog.String("user_id", w.UserID),
			slog.String("error", err.Error()),
		)
	}
}
