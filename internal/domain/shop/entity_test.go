//go:build unit

package shop_test

import (
	"testing"
	"time"

	"localshop-api/internal/domain/shop"
	"localshop-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShop(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewShopBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Sharma General Store", actual.Name())
		assert.Equal(t, shop.CategoryGrocery, actual.Category())
		assert.Equal(t, "09:00", actual.OpeningTime())
		assert.Equal(t, float64(0), actual.Rating())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.ShopBuilder)
			errIs  error
		}{
			{
				name:   "empty shop name",
				mutate: func(b *builder.ShopBuilder) { b.Name = "   " },
				errIs:  shop.ErrEmptyShopName,
			},
			{
				name:   "empty city",
				mutate: func(b *builder.ShopBuilder) { b.City = "" },
				errIs:  shop.ErrEmptyCity,
			},
			{
				name:   "empty address",
				mutate: func(b *builder.ShopBuilder) { b.Address = "" },
				errIs:  shop.ErrEmptyAddress,
			},
			{
				name:   "unknown category",
				mutate: func(b *builder.ShopBuilder) { b.Category = "Hardware" },
				errIs:  shop.ErrInvalidCategory,
			},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				actual, err := builder.NewShopBuilder().With(c.mutate).BuildDomain()
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			})
		}
	})

	t.Run("defaults opening hours when omitted", func(t *testing.T) {
		actual, err := builder.NewShopBuilder().
			With(func(b *builder.ShopBuilder) {
				b.OpeningTime = ""
				b.ClosingTime = ""
			}).
			BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "09:00", actual.OpeningTime())
		assert.Equal(t, "21:00", actual.ClosingTime())
	})
}

func TestShopSubscriptionExpired(t *testing.T) {
	expiry := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)

	actual, err := builder.NewShopBuilder().
		With(func(b *builder.ShopBuilder) { b.SubscriptionExpiresAt = expiry }).
		BuildDomain()
	require.NoError(t, err)

	assert.False(t, actual.SubscriptionExpired(expiry.Add(-time.Hour)))
	assert.False(t, actual.SubscriptionExpired(expiry))
	assert.True(t, actual.SubscriptionExpired(expiry.Add(time.Second)))
}

func TestShopCurrentCycleStart(t *testing.T) {
	actual, err := builder.NewShopBuilder().WithOpeningTime("09:00").BuildDomain()
	require.NoError(t, err)

	now := time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC)
	want := time.Date(2026, time.March, 9, 9, 0, 0, 0, time.UTC)
	assert.True(t, actual.CurrentCycleStart(now).Equal(want))
}
