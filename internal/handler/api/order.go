package api

import (
	"context"
	"errors"
	"net/http"

	"localshop-api/internal/domain/user"
	reqdto "localshop-api/internal/handler/dto/request"
	resdto "localshop-api/internal/handler/dto/response"
	"localshop-api/internal/handler/middleware"
	"localshop-api/internal/pkg/errs"
	"localshop-api/internal/usecase/commands"
	"localshop-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderCommands  commands.OrderCommands
	orderQueries   queries.OrderQueries
	dashboardQuery queries.DashboardQueries
}

func NewOrderHandler(
	orderCommands commands.OrderCommands,
	orderQueries queries.OrderQueries,
	dashboardQuery queries.DashboardQueries,
) *OrderHandler {
	return &OrderHandler{
		orderCommands:  orderCommands,
		orderQueries:   orderQueries,
		dashboardQuery: dashboardQuery,
	}
}

// @Summary Place order
// @Description Place a new order with a shop
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PlaceOrderRequest true "Order request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /orders [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.PlaceOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	orderRM, err := h.orderCommands.PlaceOrder(c.Request.Context(), userID, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrShopNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Shop not found",
			})
		case errors.Is(err, errs.ErrEmptyOrderItems):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Order must contain at least one item",
			})
		case errors.Is(err, errs.ErrInvalidOrderStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid order type",
			})
		case errors.Is(err, errs.ErrNegativePricing):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Pricing must not be negative",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOrderView(orderRM))
}

// @Summary Get order
// @Description Get order by ID
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID format",
		})
		return
	}

	orderRM, err := h.orderQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	// Customers can only see their own orders. Shopkeepers see orders placed
	// with any shop they could serve; a stranger's order reads as not found.
	userID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)
	if role == user.RoleCustomer && orderRM.CustomerID != userID {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(orderRM))
}

// @Summary Get my orders
// @Description Get all orders for the current customer
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OrderResponse
// @Failure 401 {object} map[string]string
// @Router /orders [get]
func (h *OrderHandler) GetMyOrders(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	ordersRM, err := h.orderQueries.ListMyOrders(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderViews(ordersRM))
}

// @Summary Update order status
// @Description Move an order to a new status
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.UpdateOrderStatusRequest true "Status update"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders/{id}/status [patch]
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID format",
		})
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	var req reqdto.UpdateOrderStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	orderRM, err := h.orderCommands.UpdateStatus(c.Request.Context(), id, req.Status, userID, role)
	if err != nil {
		h.respondOrderMutationError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(orderRM))
}

// @Summary Cancel order
// @Description Cancel an order. Customers can only cancel their own pending orders.
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders/{id}/cancel [post]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID format",
		})
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	orderRM, err := h.orderCommands.CancelOrder(c.Request.Context(), id, userID, role)
	if err != nil {
		h.respondOrderMutationError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(orderRM))
}

// @Summary Get active orders
// @Description Get the live order queue for the current shopkeeper's shop
// @Tags shop-orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OrderResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /shops/me/orders [get]
func (h *OrderHandler) GetActiveOrders(c *gin.Context) {
	h.respondShopOrders(c, h.orderQueries.ListShopActiveOrders)
}

// @Summary Get order history
// @Description Get settled orders that have aged out of the live queue
// @Tags shop-orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OrderResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /shops/me/orders/history [get]
func (h *OrderHandler) GetOrderHistory(c *gin.Context) {
	h.respondShopOrders(c, h.orderQueries.ListShopHistory)
}

// @Summary Get dashboard
// @Description Get business-cycle stats for the current shopkeeper's shop
// @Tags shop-orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DashboardResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /shops/me/dashboard [get]
func (h *OrderHandler) GetDashboard(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	statsRM, err := h.dashboardQuery.ShopStats(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrShopNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Shop not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDashboardStats(statsRM))
}

func (h *OrderHandler) respondShopOrders(
	c *gin.Context,
	list func(ctx context.Context, ownerID uuid.UUID) ([]*queries.OrderView, error),
) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	ordersRM, err := list(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrShopNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Shop not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderViews(ordersRM))
}

func (h *OrderHandler) respondOrderMutationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
	case errors.Is(err, errs.ErrInvalidOrderStatus):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order status",
		})
	case errors.Is(err, errs.ErrForbiddenOrder):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Not allowed to modify this order",
		})
	case errors.Is(err, errs.ErrOrderConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Order was modified concurrently, retry with fresh state",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
