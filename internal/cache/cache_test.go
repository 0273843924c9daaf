package cache

import (
	"context"
	"testing"

	"github.com/shopfront/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	UseClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "test")
	t.Cleanup(func() {
		_ = Close()
	})
	return mr
}

func TestDisabledCacheIsNoop(t *testing.T) {
	require.NoError(t, Close())

	var dest map[string]string
	hit, err := GetJSON(context.Background(), "anything", &dest)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, SetJSON(context.Background(), "anything", map[string]string{"a": "b"}, 0))
	assert.NoError(t, Del(context.Background(), "anything"))
	assert.NoError(t, Ping(context.Background()))
}

func TestUserAuthStateRoundTrip(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	state := BuildUserAuthState(&models.User{ID: 7, Role: "delivery", Status: "active", TokenVersion: 3})
	require.NoError(t, SetUserAuthState(ctx, state))
	assert.True(t, mr.Exists("test:auth:user:7"))

	got, hit, err := GetUserAuthState(ctx, 7)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, "delivery", got.Role)
	assert.Equal(t, uint64(3), got.TokenVersion)

	require.NoError(t, DelUserAuthState(ctx, 7))
	_, hit, err = GetUserAuthState(ctx, 7)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestProductCacheInvalidate(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	product := &models.Product{ID: 11, Name: "Mouse", Stock: 4, Price: models.NewMoneyFromDecimal(decimal.NewFromInt(10))}
	require.NoError(t, SetProduct(ctx, product))

	got, hit, err := GetProduct(ctx, 11)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, "Mouse", got.Name)
	assert.Equal(t, "10.00", got.Price.String())

	require.NoError(t, InvalidateProducts(ctx, 11, 0))
	assert.False(t, mr.Exists("test:catalog:product:11"))
}
