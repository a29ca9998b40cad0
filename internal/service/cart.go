// Package service implements the business logic for the storefront:
// cart mutations, wishlist mutations, and derived views priced against
// the live catalog.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	apperrors "github.com/zenithwear/storefront/pkg/errors"

	"github.com/zenithwear/storefront/internal/catalog"
	"github.com/zenithwear/storefront/internal/domain"
	"github.com/zenithwear/storefront/internal/event"
	"github.com/zenithwear/storefront/internal/repository"
)

// AddItemInput holds the parameters for adding an item to the cart.
type AddItemInput struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

// CartView is the cart enriched with catalog data. Lines whose product
// no longer exists in the catalog are omitted from Items and contribute
// nothing to TotalPrice, but their stored entries are untouched and
// still count toward TotalItems.
type CartView struct {
	UserID     string
	Items      []domain.DetailedLine
	TotalItems int
	TotalPrice int64
}

// CartService implements the business logic for cart operations.
// Writes go straight through to the repository on every mutation;
// concurrent writers follow last-write-wins.
type CartService struct {
	repo     repository.CartRepository
	catalog  *catalog.Catalog
	producer *event.Producer
	logger   *slog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(repo repository.CartRepository, cat *catalog.Catalog, producer *event.Producer, logger *slog.Logger) *CartService {
	return &CartService{
		repo:     repo,
		catalog:  cat,
		producer: producer,
		logger:   logger,
	}
}

// GetCart retrieves the cart for a user, enriched with live catalog
// data. A user with no stored cart gets an empty view.
func (s *CartService) GetCart(ctx context.Context, userID string) (*CartView, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}

	cart, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	return s.view(cart), nil
}

// AddItem adds an item to the user's cart. A line with the same
// product, size and color is merged by increasing its quantity; any
// difference in size or color creates a separate line. Quantity 0
// defaults to 1, negative quantity leaves the cart unchanged. The
// product ID is not checked against the catalog: stale references are
// filtered when the cart is read.
func (s *CartService) AddItem(ctx context.Context, userID string, input AddItemInput) (*CartView, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}
	if input.ProductID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}

	cart, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get cart for add: %w", err)
	}

	if input.Quantity < 0 {
		return s.view(cart), nil
	}

	qty := input.Quantity
	if qty == 0 {
		qty = 1
	}

	if i := cart.FindLine(input.ProductID, input.Size, input.Color); i >= 0 {
		cart.Items[i].Quantity += qty
	} else {
		cart.Items = append(cart.Items, domain.LineItem{
			ID:        uuid.New().String(),
			ProductID: input.ProductID,
			Quantity:  qty,
			Size:      input.Size,
			Color:     input.Color,
		})
	}

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	s.publishCartUpdated(ctx, cart)

	s.logger.InfoContext(ctx, "item added to cart",
		slog.String("user_id", userID),
		slog.String("product_id", input.ProductID),
		slog.Int("quantity", qty),
	)

	return s.view(cart), nil
}

// UpdateQuantity sets the quantity of a cart line identified by its
// item ID. A quantity of zero or less removes the line. An unknown
// item ID leaves the cart unchanged.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (*CartView, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}
	if itemID == "" {
		return nil, apperrors.InvalidInput("item id is required")
	}

	cart, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get cart for update: %w", err)
	}

	i := cart.FindLineByID(itemID)
	if i < 0 {
		return s.view(cart), nil
	}

	if quantity <= 0 {
		cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
	} else {
		cart.Items[i].Quantity = quantity
	}

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	s.publishCartUpdated(ctx, cart)

	s.logger.InfoContext(ctx, "cart item quantity updated",
		slog.String("user_id", userID),
		slog.String("item_id", itemID),
		slog.Int("quantity", quantity),
	)

	return s.view(cart), nil
}

// RemoveItem removes a cart line identified by its item ID. An unknown
// item ID leaves the cart unchanged.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID string) (*CartView, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}
	if itemID == "" {
		return nil, apperrors.InvalidInput("item id is required")
	}

	cart, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get cart for remove: %w", err)
	}

	i := cart.FindLineByID(itemID)
	if i < 0 {
		return s.view(cart), nil
	}

	cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	s.publishCartUpdated(ctx, cart)

	s.logger.InfoContext(ctx, "item removed from cart",
		slog.String("user_id", userID),
		slog.String("item_id", itemID),
	)

	return s.view(cart), nil
}

// ClearCart removes the user's entire cart.
func (s *CartService) ClearCart(ctx context.Context, userID string) error {
	if userID == "" {
		return apperrors.InvalidInput("user id is required")
	}

	if err := s.repo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}

	if err := s.producer.PublishCartCleared(ctx, userID); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.cleared event",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "cart cleared", slog.String("user_id", userID))

	return nil
}

func (s *CartService) view(cart *domain.Cart) *CartView {
	return &CartView{
		UserID:     cart.UserID,
		Items:      cart.DetailedItems(s.catalog.Resolve),
		TotalItems: cart.TotalQuantity(),
		TotalPrice: cart.TotalPrice(s.catalog.Resolve),
	}
}

func (s *CartService) publishCartUpdated(ctx context.Context, cart *domain.Cart) {
	if err := s.producer.PublishCartUpdated(ctx, cart); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.updated event",
			slog.String("user_id", cart.UserID),
			slog.String("error", err.Error()),
		)
	}
}
