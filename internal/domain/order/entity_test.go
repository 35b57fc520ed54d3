//go:build unit

package order_test

import (
	"testing"
	"time"

	"localshop-api/internal/domain/order"
	"localshop-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, order.StatusPending, actual.Status())
		assert.Equal(t, int32(1), actual.Version())
		assert.Len(t, actual.Items(), 1)
	})

	t.Run("rejects empty items", func(t *testing.T) {
		actual, err := builder.NewOrderBuilder().WithItems().BuildDomain()
		require.Nil(t, actual)
		require.ErrorIs(t, err, order.ErrNoItems)
	})

	t.Run("rejects unknown order type", func(t *testing.T) {
		actual, err := builder.NewOrderBuilder().WithOrderType("Wholesale").BuildDomain()
		require.Nil(t, actual)
		require.ErrorIs(t, err, order.ErrInvalidOrderType)
	})

	t.Run("service order carries appointment", func(t *testing.T) {
		actual, err := builder.NewOrderBuilder().AsService("2026-03-12", "15:30").BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, order.TypeService, actual.OrderType())
		assert.Equal(t, "2026-03-12", actual.Appointment().Date())
		assert.Equal(t, "15:30", actual.Appointment().Time())
		assert.False(t, actual.Appointment().IsZero())
	})
}

func TestOrderIsActiveAt(t *testing.T) {
	base := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		status    string
		updatedAt time.Time
		now       time.Time
		want      bool
	}{
		{
			name:      "pending is always active",
			status:    "Pending",
			updatedAt: base.Add(-30 * 24 * time.Hour),
			now:       base,
			want:      true,
		},
		{
			name:      "preparing is always active",
			status:    "Preparing",
			updatedAt: base.Add(-30 * 24 * time.Hour),
			now:       base,
			want:      true,
		},
		{
			name:      "completed inside grace window",
			status:    "Completed",
			updatedAt: base.Add(-47 * time.Hour),
			now:       base,
			want:      true,
		},
		{
			name:      "completed exactly at grace boundary",
			status:    "Completed",
			updatedAt: base.Add(-order.GracePeriod),
			now:       base,
			want:      false,
		},
		{
			name:      "completed past grace window",
			status:    "Completed",
			updatedAt: base.Add(-49 * time.Hour),
			now:       base,
			want:      false,
		},
		{
			name:      "cancelled inside grace window",
			status:    "Cancelled",
			updatedAt: base.Add(-time.Hour),
			now:       base,
			want:      true,
		},
		{
			name:      "cancelled past grace window",
			status:    "Cancelled",
			updatedAt: base.Add(-3 * 24 * time.Hour),
			now:       base,
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := builder.NewOrderBuilder().
				WithStatus(tt.status).
				WithUpdatedAt(tt.updatedAt).
				BuildReconstructed()
			assert.Equal(t, tt.want, o.IsActiveAt(tt.now))
		})
	}
}

func TestOrderIsOwnedBy(t *testing.T) {
	customerID := uuid.New()
	o := builder.NewOrderBuilder().WithCustomerID(customerID).BuildReconstructed()

	assert.True(t, o.IsOwnedBy(customerID))
	assert.False(t, o.IsOwnedBy(uuid.New()))
}
