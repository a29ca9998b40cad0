package service

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/zenithwear/storefront/pkg/errors"
	pkgkafka "github.com/zenithwear/storefront/pkg/kafka"

	"github.com/zenithwear/storefront/internal/catalog"
	"github.com/zenithwear/storefront/internal/domain"
	"github.com/zenithwear/storefront/internal/event"
)

// --- Mock Repositories ---

type mockCartRepository struct {
	mock.Mock
}

func (m *mockCartRepository) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cart), args.Error(1)
}

func (m *mockCartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}

func (m *mockCartRepository) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type mockWishlistRepository struct {
	mock.Mock
}

func (m *mockWishlistRepository) Get(ctx context.Context, userID string) (*domain.Wishlist, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wishlist), args.Error(1)
}

func (m *mockWishlistRepository) Save(ctx context.Context, w *domain.Wishlist) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *mockWishlistRepository) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Test Helpers ---

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestProducer() *event.Producer {
	logger := newTestLogger()
	// Points at a non-existent broker; publish failures are logged, not returned.
	kafkaCfg := pkgkafka.DefaultProducerConfig([]string{"localhost:9092"})
	return event.NewProducer(pkgkafka.NewProducer(kafkaCfg, logger), logger)
}

func newTestCartService(repo *mockCartRepository) *CartService {
	return NewCartService(repo, catalog.Default(), newTestProducer(), newTestLogger())
}

func cartWithLines(userID string, items ...domain.LineItem) *domain.Cart {
	return &domain.Cart{UserID: userID, Items: items}
}

// --- GetCart ---

func TestCartService_GetCart_EmptyUserID(t *testing.T) {
	svc := newTestCartService(new(mockCartRepository))

	_, err := svc.GetCart(context.Background(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestCartService_GetCart_EnrichesFromCatalog(t *testing.T) {
	repo := new(mockCartRepository)
	svc := newTestCartService(repo)

	stored := cartWithLines("u1",
		domain.LineItem{ID: "i1", ProductID: "p1", Quantity: 2},
	)
	repo.On("Get", mock.Anything, "u1").Return(stored, nil)

	view, err := svc.GetCart(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "Classic White T-Shirt", view.Items[0].Product.Name)
	assert.Equal(t, 2, view.TotalItems)
	assert.Equal(t, int64(2*799), view.TotalPrice)
}

func TestCartService_GetCart_DropsUnknownProducts(t *testing.T) {
	repo := new(mockCartRepository)
	svc := newTestCartService(repo)

	stored := cartWithLines("u1",
		domain.LineItem{ID: "i1", ProductID: "p1", Quantity: 1},
		domain.LineItem{ID: "i2", ProductID: "discontinued", Quantity: 5},
	)
	repo.On("Get", mock.Anything, "u1").Return(stored, nil)

	view, err := svc.GetCart(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "p1", view.Items[0].ProductID)
	// The dangling line still counts toward quantity but never price.
	assert.Equal(t, 6, view.TotalItems)
	assert.Equal(t, int64(799), view.TotalPrice)
}

// --- AddItem ---

func TestCartService_AddItem_NewLine(t *testing.T) {
	repo := new(mockCartRepository)
	svc := newTestCartService(repo)

	repo.On("Get", mock.Anything, "u1").Return(cartWithLines("u1"), nil)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(c *domain.Cart) bool {
		return len(c.Items) == 1 &&
			c.Items[0].ProductID == "p2" &&
			c.Items[0].Quantity == 3 &&
			c.Items[0].ID != ""
	})).Return(nil)

	view, err := svc.AddItem(context.Background(), "u1", AddItemInput{ProductID: "p2", Quantity: 3, Size: "M"})
	require.NoError(t, err)
	assert.Equal(t, 3, view.TotalItems)
	repo.AssertExpectations(t)
}

func TestCartService_AddItem_ZeroQuantityDefaultsToOne(t *testing.T) {
	repo := new(mockCartRepository)
	svc := newTestCartService(repo)

	repo.On("Get", mock.Anything, "u1").Return(cartWithLines("u1"), nil)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(c *domain.Cart) bool {
		return len(c.Items) == 1 && c.Items[0].Quantity == 1
	})).Return(nil)

	_, err := svc.AddItem(context.Background(), "u1", AddItemInput{ProductID: "p1"})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCartService_AddItem_NegativeQuantityIsNoOp(t *testing.T) {
	repo := new(mockCartRepository)
	svc := newTestCartService(repo)

	repo.On("Get", mock.Anything, "u1").Return(cartWithLines("u1"), nil)

	view, err := svc.AddItem(context.Background(), "u1", AddItemInput{ProductID: "p1", Quantity: -2})
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCartService_AddItem_MergesSameVariant(t *testing.T) {
	repo := new(mockCartRepository)
	svc := newTestCartService(repo)

	stored := cartWithLines("u1",
		domain.LineItem{ID: "i1", ProductID: "p1", Quantity: 1, Size: "M", Color: "#FFFFFF"},
	)
	repo.On("Get", mock.Anything, "u1").Return(stored, nil)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(c *domain.Cart) bool {
		return len(c.Items) == 1 && c.Items[0].ID == "i1" && c.Items[0].Quantity == 3
	})).Return(nil)

	_, err := svc.AddItem(context.Background(), "u1", AddItemInput{
		ProductID: "p1", Quantity: 2, Size: "M", Color: "#FFFFFF",
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCartService_AddItem_DifferentSizeIsNewLine(t *testing.T) {
	repo := new(mockCartRepository)
	svc := newTestCartService(repo)

	stored := cartWithLines("u1",
		domain.LineItem{ID: "i1", ProductID: "p1", Quantity: 1, Size: "M"},
	)
	repo.On("Get", mock.Anything, "u1").Return(stored, nil)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(c *domain.Cart) bool {
		return len(c.Items) == 2 && c.Items[1].Size == "L" && c.Items[1].ID != "i1"
	})).Return(nil)

	_, err := svc.AddItem(context.Background(), "u1", AddItemInput{ProductID: "p1", Quantity: 1, Size: "L"})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCartService_AddItem_UnknownProductStillStored(t *testing.T) {
	repo := new(mockCartRepository)
	svc := newTestCartService(repo)

	repo.On("Get", mock.Anything, "u1").Return(cartWithLines("u1"), nil)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(c *domain.Cart) bool {
		return len(c.Items) == 1 && c.Items[0].ProductID == "not-in-catalog"
	})).Return(nil)

	view, err := svc.AddItem(context.Background(), "u1", AddItemInput{ProductID: "not-in-catalog", Quantity: 1})
	require.NoError(t, err)
	// Stored but invisible in the derived view.
	assert.Empty(t, view.Items)
	repo.AssertExpectations(t)
}

// --- UpdateQuantity ---

func TestCartService_UpdateQuantity_SetsQuantity(t *testing.T) {
	repo := new(mockCartRepository)
	svc := newTestCartService(repo)

	stored := cartWithLines("u1",
		domain.LineItem{ID: "i1", ProductID: "p1", Quantity: 1},
	)
	repo.On("Get", mock.Anything, "u1").Return(stored, nil)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(c *domain.Cart) bool {
		return len(c.Items) == 1 && c.Items[0].Quantity == 5
	})).Return(nil)

	view, err := svc.UpdateQuantity(context.Background(), "u1", "i1", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, view.TotalItems)
	repo.AssertExpectations(t)
}

func TestCartService_UpdateQuantity_ZeroRemovesLine(t *testing.T) {
	repo := new(mockCartRepository)
	svc := newTestCartService(repo)

	stored := cartWithLines("u1",
		domain.LineItem{ID: "i1", ProductID: "p1", Quantity: 2},
		domain.LineItem{ID: "i2", ProductID: "p2", Quantity: 1},
	)
	repo.On("Get", mock.Anything, "u1").Return(stored, nil)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(c *domain.Cart) bool {
		return len(c.Items) == 1 && c.Items[0].ID == "i2"
	})).Return(nil)

	_, err := svc.UpdateQuantity(context.Background(), "u1", "i1", 0)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCartService_UpdateQuantity_NegativeRemovesLine(t *testing.T) {
	repo := new(mockCartRepository)
	svc := newTestCartService(repo)

	stored := cartWithLines("u1",
		domain.LineItem{ID: "i1", ProductID: "p1", Quantity: 2},
	)
	repo.On("Get", mock.Anything, "u1").Return(stored, nil)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(c *domain.Cart) bool {
		return len(c.Items) == 0
	})).Return(nil)

	_, err := svc.UpdateQuantity(context.Background(), "u1", "i1", -3)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCartService_UpdateQuantity_UnknownItemIsNoOp(t *testing.T) {
	repo := new(mockCartRepository)
	svc := newTestCartService(repo)

	stored := cartWithLines("u1",
		domain.LineItem{ID: "i1", ProductID: "p1", Quantity: 2},
	)
	repo.On("Get", mock.Anything, "u1").Return(stored, nil)

	view, err := svc.UpdateQuantity(context.Background(), "u1", "no-such-item", 5)
	require.NoError(t, err)
	assert.Equal(t, 2, view.TotalItems)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

// --- RemoveItem ---

func TestCartService_RemoveItem(t *testing.T) {
	repo := new(mockCartRepository)
	svc := newTestCartService(repo)

	stored := cartWithLines("u1",
		domain.LineItem{ID: "i1", ProductID: "p1", Quantity: 2},
		domain.LineItem{ID: "i2", ProductID: "p2", Quantity: 1},
	)
	repo.On("Get", mock.Anything, "u1").Return(stored, nil)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(c *domain.Cart) bool {
		return len(c.Items) == 1 && c.Items[0].ID == "i1"
	})).Return(nil)

	_, err := svc.RemoveItem(context.Background(), "u1", "i2")
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCartService_RemoveItem_UnknownItemIsNoOp(t *testing.T) {
	repo := new(mockCartRepository)
	svc := newTestCartService(repo)

	repo.On("Get", mock.Anything, "u1").Return(cartWithLines("u1"), nil)

	_, err := svc.RemoveItem(context.Background(), "u1", "ghost")
	require.NoError(t, err)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

// --- ClearCart ---

func TestCartService_ClearCart(t *testing.T) {
	repo := new(mockCartRepository)
	svc := newTestCartService(repo)

	repo.On("Delete", mock.Anything, "u1").Return(nil)

	require.NoError(t, svc.ClearCart(context.Background(), "u1"))
	repo.AssertExpectations(t)
}

func TestCartService_ClearCart_EmptyUserID(t *testing.T) {
	svc := newTestCartService(new(mockCartRepository))

	err := svc.ClearCart(context.Background(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}
