package redis

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenithwear/storefront/internal/domain"
)

func setupWishlistRepo(t *testing.T) (*WishlistRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewWishlistRepository(client, 0, testLogger()), mr
}

func TestWishlistRepository_Get_Success(t *testing.T) {
	repo, mr := setupWishlistRepo(t)

	require.NoError(t, mr.Set("wishlist:user-1", `["p1","p4","p9"]`))

	w, err := repo.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", w.UserID)
	assert.Equal(t, []string{"p1", "p4", "p9"}, w.ProductIDs)
}

func TestWishlistRepository_Get_MissingKeyIsEmptySet(t *testing.T) {
	repo, _ := setupWishlistRepo(t)

	w, err := repo.Get(context.Background(), "fresh-user")
	require.NoError(t, err)
	assert.NotNil(t, w.ProductIDs)
	assert.Zero(t, w.Count())
}

func TestWishlistRepository_Get_CorruptBlobIsEmptySet(t *testing.T) {
	repo, mr := setupWishlistRepo(t)

	require.NoError(t, mr.Set("wishlist:user-bad", `{"not":"an array"}`))

	w, err := repo.Get(context.Background(), "user-bad")
	require.NoError(t, err)
	assert.Zero(t, w.Count())
}

func TestWishlistRepository_Save_WritesBareIDArray(t *testing.T) {
	repo, mr := setupWishlistRepo(t)

	w := &domain.Wishlist{UserID: "user-1", ProductIDs: []string{"p2", "p7"}}
	require.NoError(t, repo.Save(context.Background(), w))

	raw, err := mr.Get("wishlist:user-1")
	require.NoError(t, err)

	var ids []string
	require.NoError(t, json.Unmarshal([]byte(raw), &ids))
	assert.Equal(t, []string{"p2", "p7"}, ids)
}

func TestWishlistRepository_SaveGet_RoundTrip(t *testing.T) {
	repo, _ := setupWishlistRepo(t)

	original := &domain.Wishlist{UserID: "user-1", ProductIDs: []string{"p3", "p1", "p10"}}
	require.NoError(t, repo.Save(context.Background(), original))

	got, err := repo.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.ElementsMatch(t, original.ProductIDs, got.ProductIDs)
}

func TestWishlistRepository_Delete(t *testing.T) {
	repo, mr := setupWishlistRepo(t)

	require.NoError(t, repo.Save(context.Background(), &domain.Wishlist{UserID: "user-1", ProductIDs: []string{"p1"}}))
	require.True(t, mr.Exists("wishlist:user-1"))

	require.NoError(t, repo.Delete(context.Background(), "user-1"))
	assert.False(t, mr.Exists("wishlist:user-1"))
}
