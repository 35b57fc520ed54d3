package response

import (
	"localshop-api/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type DashboardResponse struct {
	TotalOrders        int              `json:"totalOrders"`
	TotalRevenue       decimal.Decimal  `json:"totalRevenue"`
	PendingOrdersCount int              `json:"pendingOrdersCount"`
	NewCustomersCount  int              `json:"newCustomersCount"`
	RecentOrders       []*OrderResponse `json:"recentOrders"`
}

func FromDashboardStats(rm *queries.DashboardStats) *DashboardResponse {
	return &DashboardResponse{
		TotalOrders:        rm.TotalOrders,
		TotalRevenue:       rm.TotalRevenue,
		PendingOrdersCount: rm.PendingOrdersCount,
		NewCustomersCount:  rm.NewCustomersCount,
		RecentOrders:       FromOrderViews(rm.RecentOrders),
	}
}
