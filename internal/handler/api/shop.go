package api

import (
	"errors"
	"net/http"

	reqdto "localshop-api/internal/handler/dto/request"
	resdto "localshop-api/internal/handler/dto/response"
	"localshop-api/internal/handler/middleware"
	"localshop-api/internal/pkg/errs"
	"localshop-api/internal/usecase/commands"
	"localshop-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ShopHandler struct {
	shopCommands commands.ShopCommands
	shopQueries  queries.ShopQueries
}

func NewShopHandler(shopCommands commands.ShopCommands, shopQueries queries.ShopQueries) *ShopHandler {
	return &ShopHandler{
		shopCommands: shopCommands,
		shopQueries:  shopQueries,
	}
}

// @Summary Register shop
// @Description Register a shopkeeper account together with their shop
// @Tags shops
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterShopRequest true "Registration request"
// @Success 201 {object} resdto.ShopResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /shops [post]
func (h *ShopHandler) RegisterShop(c *gin.Context) {
	var req reqdto.RegisterShopRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	shopRM, err := h.shopCommands.RegisterShop(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrEmailAlreadyUsed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Email already in use",
			})
		case errors.Is(err, errs.ErrShopAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Shop already registered for this owner",
			})
		case errors.Is(err, errs.ErrInvalidShopCategory):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid shop category",
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

	c.JSON(http.StatusCreated, resdto.FromShopView(shopRM))
}

// @Summary List shops
// @Description List shops filtered by city, category and name search
// @Tags shops
// @Produce json
// @Param city query string false "City filter"
// @Param category query string false "Category filter, 'All' disables it"
// @Param search query string false "Shop name substring"
// @Success 200 {array} resdto.ShopListResponse
// @Router /shops [get]
func (h *ShopHandler) ListShops(c *gin.Context) {
	filter := queries.ShopFilter{
		City:     c.Query("city"),
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}

	shopsRM, err := h.shopQueries.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.ShopListResponse, len(shopsRM))
	for i, rm := range shopsRM {
		response[i] = resdto.FromShopListItem(rm)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get shop
// @Description Get a shop by ID
// @Tags shops
// @Produce json
// @Param id path string true "Shop ID"
// @Success 200 {object} resdto.ShopListResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /shops/{id} [get]
func (h *ShopHandler) GetShop(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid shop ID format",
		})
		return
	}

	shopRM, err := h.shopQueries.GetByID(c.Request.Context(), id)
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

	c.JSON(http.StatusOK, resdto.FromShopListItem(shopRM))
}

// @Summary Get my shop
// @Description Get the current shopkeeper's shop
// @Tags shops
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ShopResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /shops/me [get]
func (h *ShopHandler) GetMyShop(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	shopRM, err := h.shopQueries.GetMine(c.Request.Context(), userID)
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

	c.JSON(http.StatusOK, resdto.FromShopView(shopRM))
}

// @Summary Update shop profile
// @Description Partially update the current shopkeeper's shop profile
// @Tags shops
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateShopProfileRequest true "Profile patch"
// @Success 200 {object} resdto.ShopResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /shops/me [patch]
func (h *ShopHandler) UpdateShopProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.UpdateShopProfileRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	shopRM, err := h.shopCommands.UpdateProfile(c.Request.Context(), userID, req.ToPatch())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrShopNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Shop not found",
			})
		case errors.Is(err, errs.ErrInvalidShopCategory):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid shop category",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromShopView(shopRM))
}
