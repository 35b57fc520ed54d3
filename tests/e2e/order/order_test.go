//go:build e2e

package order_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"localshop-api/internal/domain/user"
	"localshop-api/internal/handler/dto/request"
	"localshop-api/internal/handler/dto/response"
	"localshop-api/tests/common/authtest"
	"localshop-api/tests/common/builder"
	"localshop-api/tests/common/dbtest"
	"localshop-api/tests/common/httptest"
	"localshop-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	ordersURL       = "/api/orders"
	orderURLFmt     = "/api/orders/%s"
	statusURLFmt    = "/api/orders/%s/status"
	cancelURLFmt    = "/api/orders/%s/cancel"
	activeOrdersURL = "/api/shops/me/orders"
	historyURL      = "/api/shops/me/orders/history"
	dashboardURL    = "/api/shops/me/dashboard"
)

type OrderSuite struct {
	e2e.SharedSuite
}

func (s *OrderSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestOrderSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(OrderSuite))
}

// storefront bundles the fixtures every order test starts from: a registered
// shop with one product, plus an unrelated customer account.
type storefront struct {
	shop          response.ShopResponse
	product       response.ProductResponse
	ownerToken    string
	customerID    uuid.UUID
	customerToken string
}

func (s *OrderSuite) setupStorefront() storefront {
	t := s.T()
	t.Helper()

	jwtHelper := authtest.NewJWTHelper(s.Config.JWT)

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/shops",
		builder.NewShopBuilder().BuildRegisterRequestDTO(), "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var shop response.ShopResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &shop))

	ownerToken := jwtHelper.GenerateToken(t, shop.OwnerID, user.RoleShopkeeper)

	w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/products",
		builder.NewProductBuilder().WithName("Basmati Rice").BuildCreateRequestDTO(), ownerToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var product response.ProductResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &product))

	customerID := dbtest.CreateTestUser(t, s.DB, "Test Customer", "customer@example.com", string(user.RoleCustomer))
	customerToken := jwtHelper.GenerateToken(t, customerID, user.RoleCustomer)

	return storefront{
		shop:          shop,
		product:       product,
		ownerToken:    ownerToken,
		customerID:    customerID,
		customerToken: customerToken,
	}
}

func (s *OrderSuite) placeOrder(sf storefront) response.OrderResponse {
	t := s.T()
	t.Helper()

	req := builder.NewOrderBuilder().
		WithShopID(sf.shop.ID).
		WithItems(builder.OrderItemSpec{
			Name:      sf.product.Name,
			Qty:       2,
			UnitPrice: sf.product.Price,
			ProductID: sf.product.ID,
		}).
		BuildPlaceRequestDTO()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, req, sf.customerToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var placed response.OrderResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &placed))
	return placed
}

func (s *OrderSuite) updateStatus(orderID uuid.UUID, status, token string) *response.OrderResponse {
	t := s.T()
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(statusURLFmt, orderID),
		request.UpdateOrderStatusRequest{Status: status}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated response.OrderResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &updated))
	return &updated
}

// =============================================================================
// TestPlaceOrder - Order placement API tests
// =============================================================================

func (s *OrderSuite) TestPlaceOrder() {
	s.Run("Normal case: Customer places order and reads it back", func() {
		t := s.T()

		sf := s.setupStorefront()
		placed := s.placeOrder(sf)

		require.Equal(t, "Pending", placed.Status)
		require.Equal(t, sf.shop.ID, placed.ShopID)
		require.Equal(t, sf.customerID, placed.CustomerID)
		require.Equal(t, int32(1), placed.Version)
		require.Len(t, placed.Items, 1)
		require.Equal(t, 2, placed.Items[0].Qty)
		require.True(t, placed.TotalPrice.Equal(decimal.NewFromInt(282)), "got total %s", placed.TotalPrice)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(orderURLFmt, placed.ID), nil, sf.customerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var fetched response.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &fetched))
		require.Equal(t, placed.ID, fetched.ID)
		require.Equal(t, "Sharma General Store", fetched.ShopName)
		require.Equal(t, "Test Customer", fetched.CustomerName)
	})

	s.Run("Normal case: Own orders appear in customer listing", func() {
		t := s.T()

		sf := s.setupStorefront()
		s.placeOrder(sf)
		s.placeOrder(sf)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL, nil, sf.customerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var orders []response.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &orders))
		require.Len(t, orders, 2)
	})

	s.Run("Error case: Shopkeeper cannot place orders", func() {
		t := s.T()

		sf := s.setupStorefront()
		req := builder.NewOrderBuilder().WithShopID(sf.shop.ID).BuildPlaceRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, req, sf.ownerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("Error case: Order against unknown shop fails", func() {
		t := s.T()

		sf := s.setupStorefront()
		req := builder.NewOrderBuilder().WithShopID(uuid.New()).BuildPlaceRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, req, sf.customerToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Shop not found")
	})

	s.Run("Error case: Stranger cannot read another customer's order", func() {
		t := s.T()

		sf := s.setupStorefront()
		placed := s.placeOrder(sf)

		strangerID := dbtest.CreateTestUser(t, s.DB, "Other Customer", "other@example.com", string(user.RoleCustomer))
		strangerToken := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, strangerID, user.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(orderURLFmt, placed.ID), nil, strangerToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Order not found")
	})
}

// =============================================================================
// TestOrderStatusFlow - Shopkeeper-driven lifecycle
// =============================================================================

func (s *OrderSuite) TestOrderStatusFlow() {
	s.Run("Normal case: Shopkeeper walks order to completion", func() {
		t := s.T()

		sf := s.setupStorefront()
		placed := s.placeOrder(sf)

		confirmed := s.updateStatus(placed.ID, "Confirmed", sf.ownerToken)
		require.Equal(t, "Confirmed", confirmed.Status)
		require.Equal(t, int32(2), confirmed.Version)

		preparing := s.updateStatus(placed.ID, "Preparing", sf.ownerToken)
		require.Equal(t, "Preparing", preparing.Status)

		completed := s.updateStatus(placed.ID, "Completed", sf.ownerToken)
		require.Equal(t, "Completed", completed.Status)
		require.Equal(t, int32(4), completed.Version)
	})

	s.Run("Normal case: Legacy Accepted label lands as Confirmed", func() {
		t := s.T()

		sf := s.setupStorefront()
		placed := s.placeOrder(sf)

		updated := s.updateStatus(placed.ID, "Accepted", sf.ownerToken)
		require.Equal(t, "Confirmed", updated.Status)
	})

	s.Run("Normal case: Shopkeeper reopens a completed order", func() {
		t := s.T()

		sf := s.setupStorefront()
		placed := s.placeOrder(sf)
		s.updateStatus(placed.ID, "Completed", sf.ownerToken)

		reopened := s.updateStatus(placed.ID, "Pending", sf.ownerToken)
		require.Equal(t, "Pending", reopened.Status)
		require.Equal(t, int32(3), reopened.Version)
	})

	s.Run("Error case: Unknown status label is rejected", func() {
		t := s.T()

		sf := s.setupStorefront()
		placed := s.placeOrder(sf)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(statusURLFmt, placed.ID),
			request.UpdateOrderStatusRequest{Status: "Shipped"}, sf.ownerToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid order status")
	})

	s.Run("Error case: Customer cannot drive the status machine", func() {
		t := s.T()

		sf := s.setupStorefront()
		placed := s.placeOrder(sf)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(statusURLFmt, placed.ID),
			request.UpdateOrderStatusRequest{Status: "Confirmed"}, sf.customerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Not allowed to modify this order")
	})
}

// =============================================================================
// TestCancelOrder - Customer cancellation rules
// =============================================================================

func (s *OrderSuite) TestCancelOrder() {
	s.Run("Normal case: Customer cancels own pending order", func() {
		t := s.T()

		sf := s.setupStorefront()
		placed := s.placeOrder(sf)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURLFmt, placed.ID), nil, sf.customerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var cancelled response.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &cancelled))
		require.Equal(t, "Cancelled", cancelled.Status)
	})

	s.Run("Error case: Confirmed order can no longer be cancelled by customer", func() {
		t := s.T()

		sf := s.setupStorefront()
		placed := s.placeOrder(sf)
		s.updateStatus(placed.ID, "Confirmed", sf.ownerToken)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURLFmt, placed.ID), nil, sf.customerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Not allowed to modify this order")
	})

	s.Run("Error case: Stranger cannot cancel someone else's order", func() {
		t := s.T()

		sf := s.setupStorefront()
		placed := s.placeOrder(sf)

		strangerID := dbtest.CreateTestUser(t, s.DB, "Other Customer", "other@example.com", string(user.RoleCustomer))
		strangerToken := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, strangerID, user.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURLFmt, placed.ID), nil, strangerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Not allowed to modify this order")
	})
}

// =============================================================================
// TestShopQueueAndDashboard - Live queue, history and cycle stats
// =============================================================================

func (s *OrderSuite) TestShopQueueAndDashboard() {
	s.Run("Normal case: Fresh orders stay in the live queue", func() {
		t := s.T()

		sf := s.setupStorefront()
		s.placeOrder(sf)
		second := s.placeOrder(sf)
		s.updateStatus(second.ID, "Completed", sf.ownerToken)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, activeOrdersURL, nil, sf.ownerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var active []response.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &active))
		// Settled orders stay visible until the grace period elapses
		require.Len(t, active, 2)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, historyURL, nil, sf.ownerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var history []response.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &history))
		require.Empty(t, history)
	})

	s.Run("Normal case: Settled orders past the grace period move to history", func() {
		t := s.T()

		sf := s.setupStorefront()
		fresh := s.placeOrder(sf)
		stale := s.placeOrder(sf)
		s.updateStatus(fresh.ID, "Completed", sf.ownerToken)
		s.updateStatus(stale.ID, "Completed", sf.ownerToken)

		// Push one settlement past the 48h window
		_, err := s.DB.Exec(context.Background(),
			`UPDATE orders SET updated_at = updated_at - interval '49 hours' WHERE id = $1`,
			stale.ID)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, activeOrdersURL, nil, sf.ownerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var active []response.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &active))
		require.Len(t, active, 1)
		require.Equal(t, fresh.ID, active[0].ID)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, historyURL, nil, sf.ownerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var history []response.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &history))
		require.Len(t, history, 1)
		require.Equal(t, stale.ID, history[0].ID)
	})

	s.Run("Normal case: Dashboard aggregates the current cycle", func() {
		t := s.T()

		sf := s.setupStorefront()
		first := s.placeOrder(sf)
		second := s.placeOrder(sf)
		s.placeOrder(sf)
		s.updateStatus(first.ID, "Completed", sf.ownerToken)
		s.updateStatus(second.ID, "Confirmed", sf.ownerToken)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, dashboardURL, nil, sf.ownerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var stats response.DashboardResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &stats))

		require.Equal(t, 3, stats.TotalOrders)
		// Only the completed order counts toward revenue
		require.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(282)), "got revenue %s", stats.TotalRevenue)
		require.Equal(t, 1, stats.PendingOrdersCount)
		require.Equal(t, 1, stats.NewCustomersCount, "Repeat orders from one customer count once")
		require.Len(t, stats.RecentOrders, 3, "Orders just placed fall inside the recent window")
	})

	s.Run("Error case: Dashboard without a shop is not found", func() {
		t := s.T()

		orphanID := dbtest.CreateTestUser(t, s.DB, "No Shop", "noshop@example.com", string(user.RoleShopkeeper))
		orphanToken := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, orphanID, user.RoleShopkeeper)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, dashboardURL, nil, orphanToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Shop not found")
	})
}
