//go:build unit

package order_test

import (
	"testing"

	"localshop-api/internal/domain/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	productID := uuid.New()

	t.Run("valid item", func(t *testing.T) {
		item, err := order.NewItem("  Basmati Rice  ", 2, " 120 ", productID)
		require.NoError(t, err)
		assert.Equal(t, "Basmati Rice", item.Name())
		assert.Equal(t, 2, item.Qty())
		assert.Equal(t, "120", item.UnitPrice())
	})

	t.Run("validation", func(t *testing.T) {
		_, err := order.NewItem("", 1, "120", productID)
		require.ErrorIs(t, err, order.ErrEmptyItemName)

		_, err = order.NewItem("Rice", 0, "120", productID)
		require.ErrorIs(t, err, order.ErrNonPositiveQty)

		_, err = order.NewItem("Rice", -1, "120", productID)
		require.ErrorIs(t, err, order.ErrNonPositiveQty)

		_, err = order.NewItem("Rice", 1, "  ", productID)
		require.ErrorIs(t, err, order.ErrEmptyItemPrice)
	})
}

func TestItemNumericUnitPrice(t *testing.T) {
	productID := uuid.New()

	t.Run("plain number parses", func(t *testing.T) {
		item, err := order.NewItem("Rice", 3, "120.50", productID)
		require.NoError(t, err)

		unit, ok := item.NumericUnitPrice()
		require.True(t, ok)
		assert.True(t, unit.Equal(decimal.RequireFromString("120.50")))

		total, ok := item.LineTotal()
		require.True(t, ok)
		assert.True(t, total.Equal(decimal.RequireFromString("361.50")))
	})

	t.Run("weight-based price does not parse", func(t *testing.T) {
		item, err := order.NewItem("Tomatoes", 2, "80/kg", productID)
		require.NoError(t, err)

		_, ok := item.NumericUnitPrice()
		assert.False(t, ok)
		_, ok = item.LineTotal()
		assert.False(t, ok)
	})
}

func TestNewPricing(t *testing.T) {
	t.Run("rejects any negative component", func(t *testing.T) {
		neg := decimal.NewFromInt(-1)
		zero := decimal.Zero

		for i := 0; i < 4; i++ {
			parts := []decimal.Decimal{zero, zero, zero, zero}
			parts[i] = neg
			_, err := order.NewPricing(parts[0], parts[1], parts[2], parts[3])
			require.ErrorIs(t, err, order.ErrNegativePricing)
		}
	})

	t.Run("zero pricing is fine", func(t *testing.T) {
		p, err := order.NewPricing(decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero)
		require.NoError(t, err)
		assert.True(t, p.TotalPrice().IsZero())
	})
}

func TestPricingRecomputed(t *testing.T) {
	p, err := order.NewPricing(
		decimal.NewFromInt(999),  // stale client items total
		decimal.NewFromInt(12),   // tax
		decimal.NewFromInt(30),   // delivery
		decimal.NewFromInt(1041), // stale client grand total
	)
	require.NoError(t, err)

	got := p.Recomputed([]decimal.Decimal{
		decimal.NewFromInt(240),
		decimal.NewFromInt(60),
	})

	assert.True(t, got.ItemsPrice().Equal(decimal.NewFromInt(300)))
	assert.True(t, got.TaxPrice().Equal(decimal.NewFromInt(12)))
	assert.True(t, got.DeliveryPrice().Equal(decimal.NewFromInt(30)))
	assert.True(t, got.TotalPrice().Equal(decimal.NewFromInt(342)))
}
