//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"localshop-api/internal/infra"
	"localshop-api/internal/pkg/clock"
	"localshop-api/internal/pkg/errs"
	"localshop-api/internal/usecase/queries"
	"localshop-api/tests/common/builder"
	queriesmock "localshop-api/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type dashboardFixture struct {
	orders *queriesmock.MockOrderViewRepo
	shops  *queriesmock.MockShopViewRepo
	clock  *clock.MockClock
	q      queries.DashboardQueries
}

func newDashboardFixture(t *testing.T, now time.Time) *dashboardFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &dashboardFixture{
		orders: queriesmock.NewMockOrderViewRepo(ctrl),
		shops:  queriesmock.NewMockShopViewRepo(ctrl),
		clock:  clock.NewMockClock(now),
	}
	f.q = queries.NewDashboardQueries(f.orders, f.shops, f.clock)
	return f
}

func TestDashboardQueries_ShopStats(t *testing.T) {
	ownerID := uuid.New()
	// Mid-afternoon, well past the 09:00 opening.
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	cycleStart := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("aggregates one snapshot of the cycle's orders", func(t *testing.T) {
		f := newDashboardFixture(t, now)
		shopView := builder.NewShopBuilder().WithOwnerID(ownerID).BuildView()

		repeatCustomer := uuid.New()
		cycleOrders := []*queries.OrderView{
			builder.NewOrderBuilder().
				WithCustomerID(repeatCustomer).
				AsCompleted().
				WithTotalPrice(decimal.RequireFromString("100")).
				WithCreatedAt(cycleStart.Add(30 * time.Minute)).
				BuildView(),
			builder.NewOrderBuilder().
				WithCustomerID(repeatCustomer).
				AsCompleted().
				WithTotalPrice(decimal.RequireFromString("150.50")).
				WithCreatedAt(now.Add(-45 * time.Minute)).
				BuildView(),
			builder.NewOrderBuilder().
				WithStatus("Pending").
				WithTotalPrice(decimal.RequireFromString("999")).
				WithCreatedAt(now.Add(-10 * time.Minute)).
				BuildView(),
			builder.NewOrderBuilder().
				WithStatus("Pending").
				WithCreatedAt(cycleStart.Add(time.Hour)).
				BuildView(),
			builder.NewOrderBuilder().
				AsCancelled().
				WithTotalPrice(decimal.RequireFromString("500")).
				WithCreatedAt(cycleStart.Add(2 * time.Hour)).
				BuildView(),
		}

		f.shops.EXPECT().FindByOwner(gomock.Any(), ownerID).Return(shopView, nil)
		f.orders.EXPECT().FindByShopSince(gomock.Any(), shopView.ID, cycleStart).Return(cycleOrders, nil)

		stats, err := f.q.ShopStats(context.Background(), ownerID)
		require.NoError(t, err)

		assert.Equal(t, 5, stats.TotalOrders)
		// Completed orders only; Pending and Cancelled never contribute.
		assert.True(t, stats.TotalRevenue.Equal(decimal.RequireFromString("250.50")),
			"revenue = %s", stats.TotalRevenue)
		assert.Equal(t, 2, stats.PendingOrdersCount)
		// The repeat customer counts once: 1 + 3 distinct = 4.
		assert.Equal(t, 4, stats.NewCustomersCount)

		// Recent = created within the last hour: orders[1] and orders[2].
		require.Len(t, stats.RecentOrders, 2)
		assert.Equal(t, cycleOrders[1].ID, stats.RecentOrders[0].ID)
		assert.Equal(t, cycleOrders[2].ID, stats.RecentOrders[1].ID)
	})

	t.Run("empty cycle yields zero stats", func(t *testing.T) {
		f := newDashboardFixture(t, now)
		shopView := builder.NewShopBuilder().WithOwnerID(ownerID).BuildView()

		f.shops.EXPECT().FindByOwner(gomock.Any(), ownerID).Return(shopView, nil)
		f.orders.EXPECT().FindByShopSince(gomock.Any(), shopView.ID, cycleStart).Return([]*queries.OrderView{}, nil)

		stats, err := f.q.ShopStats(context.Background(), ownerID)
		require.NoError(t, err)

		assert.Equal(t, 0, stats.TotalOrders)
		assert.True(t, stats.TotalRevenue.IsZero())
		assert.Equal(t, 0, stats.PendingOrdersCount)
		assert.Equal(t, 0, stats.NewCustomersCount)
		assert.NotNil(t, stats.RecentOrders)
		assert.Empty(t, stats.RecentOrders)
	})

	t.Run("recent window clamps to cycle start shortly after opening", func(t *testing.T) {
		justOpened := time.Date(2026, 3, 10, 9, 20, 0, 0, time.UTC)
		f := newDashboardFixture(t, justOpened)
		shopView := builder.NewShopBuilder().WithOwnerID(ownerID).BuildView()

		early := builder.NewOrderBuilder().
			WithCreatedAt(cycleStart.Add(5 * time.Minute)).
			BuildView()

		f.shops.EXPECT().FindByOwner(gomock.Any(), ownerID).Return(shopView, nil)
		f.orders.EXPECT().FindByShopSince(gomock.Any(), shopView.ID, cycleStart).Return([]*queries.OrderView{early}, nil)

		stats, err := f.q.ShopStats(context.Background(), ownerID)
		require.NoError(t, err)
		require.Len(t, stats.RecentOrders, 1)
		assert.Equal(t, early.ID, stats.RecentOrders[0].ID)
	})

	t.Run("before opening the cycle anchors to yesterday's opening", func(t *testing.T) {
		beforeOpening := time.Date(2026, 3, 10, 7, 45, 0, 0, time.UTC)
		yesterdayStart := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
		f := newDashboardFixture(t, beforeOpening)
		shopView := builder.NewShopBuilder().WithOwnerID(ownerID).BuildView()

		f.shops.EXPECT().FindByOwner(gomock.Any(), ownerID).Return(shopView, nil)
		f.orders.EXPECT().FindByShopSince(gomock.Any(), shopView.ID, yesterdayStart).Return([]*queries.OrderView{}, nil)

		_, err := f.q.ShopStats(context.Background(), ownerID)
		require.NoError(t, err)
	})

	t.Run("unknown owner maps to ErrShopNotFound", func(t *testing.T) {
		f := newDashboardFixture(t, now)
		f.shops.EXPECT().FindByOwner(gomock.Any(), ownerID).
			Return(nil, infra.WrapRepoErr("shop not found", errors.New("no rows"), infra.KindNotFound))

		_, err := f.q.ShopStats(context.Background(), ownerID)
		assert.ErrorIs(t, err, errs.ErrShopNotFound)
	})

	t.Run("order fetch failure maps to ErrDatabaseOperationFailed", func(t *testing.T) {
		f := newDashboardFixture(t, now)
		shopView := builder.NewShopBuilder().WithOwnerID(ownerID).BuildView()

		f.shops.EXPECT().FindByOwner(gomock.Any(), ownerID).Return(shopView, nil)
		f.orders.EXPECT().FindByShopSince(gomock.Any(), shopView.ID, cycleStart).
			Return(nil, infra.WrapRepoErr("query failed", errors.New("conn reset")))

		_, err := f.q.ShopStats(context.Background(), ownerID)
		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})
}
