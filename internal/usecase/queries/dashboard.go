package queries

import (
	"context"
	"time"

	"localshop-api/internal/domain/order"
	"localshop-api/internal/domain/shop"
	"localshop-api/internal/infra"
	"localshop-api/internal/pkg/clock"
	"localshop-api/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// recentWindow bounds the dashboard's recent-activity list.
const recentWindow = time.Hour

type DashboardQueries interface {
	ShopStats(ctx context.Context, ownerID uuid.UUID) (*DashboardStats, error)
}

type dashboardQueriesImpl struct {
	orders OrderViewRepo
	shops  ShopViewRepo
	clock  clock.Clock
}

func NewDashboardQueries(orders OrderViewRepo, shops ShopViewRepo, clock clock.Clock) DashboardQueries {
	return &dashboardQueriesImpl{orders: orders, shops: shops, clock: clock}
}

// ShopStats aggregates the shop's current business cycle. The cycle is
// anchored to the shop's opening time, not midnight, so all "daily" numbers
// reset when the shop opens. Everything derives from one snapshot read of
// the cycle's orders, so the five statistics and the recent list are
// mutually consistent.
func (q *dashboardQueriesImpl) ShopStats(ctx context.Context, ownerID uuid.UUID) (*DashboardStats, error) {
	shopView, err := q.shops.FindByOwner(ctx, ownerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrShopNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	now := q.clock.Now()
	cycleStart := shop.CycleStart(shopView.OpeningTime, now)

	cycleOrders, err := q.orders.FindByShopSince(ctx, shopView.ID, cycleStart)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return aggregate(cycleOrders, cycleStart, now), nil
}

func aggregate(cycleOrders []*OrderView, cycleStart, now time.Time) *DashboardStats {
	stats := &DashboardStats{
		TotalOrders:  len(cycleOrders),
		TotalRevenue: decimal.Zero,
		RecentOrders: []*OrderView{},
	}

	// Only Completed orders count toward revenue; Pending and Cancelled
	// never contribute. A repeat customer within the cycle counts once.
	customers := make(map[uuid.UUID]struct{})
	for _, o := range cycleOrders {
		switch order.Status(o.Status) {
		case order.StatusCompleted:
			stats.TotalRevenue = stats.TotalRevenue.Add(o.TotalPrice)
		case order.StatusPending:
			stats.PendingOrdersCount++
		}
		customers[o.CustomerID] = struct{}{}
	}
	stats.NewCustomersCount = len(customers)

	// The recent window never reaches back past the cycle boundary.
	recentStart := now.Add(-recentWindow)
	if recentStart.Before(cycleStart) {
		recentStart = cycleStart
	}
	for _, o := range cycleOrders {
		if !o.CreatedAt.Before(recentStart) {
			stats.RecentOrders = append(stats.RecentOrders, o)
		}
	}

	return stats
}
