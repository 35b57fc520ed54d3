package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"localshop-api/internal/domain/user"
	"localshop-api/internal/handler/api"
	"localshop-api/internal/handler/middleware"
	"localshop-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	shopHandler *api.ShopHandler,
	orderHandler *api.OrderHandler,
	productHandler *api.ProductHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, shopHandler, orderHandler, productHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	shopHandler *api.ShopHandler,
	orderHandler *api.OrderHandler,
	productHandler *api.ProductHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		shops := apiGroup.Group("/shops")
		{
			addRoutes(shops, []route{
				{Method: http.MethodPost, Path: "", Handler: shopHandler.RegisterShop},
				{Method: http.MethodGet, Path: "", Handler: shopHandler.ListShops},
			})

			// /shops/me/* must register before /shops/:id so gin does not
			// treat "me" as an ID.
			mine := shops.Group("/me")
			mine.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleShopkeeper))
			addRoutes(mine, []route{
				{Method: http.MethodGet, Path: "", Handler: shopHandler.GetMyShop},
				{Method: http.MethodPatch, Path: "", Handler: shopHandler.UpdateShopProfile},
				{Method: http.MethodGet, Path: "/orders", Handler: orderHandler.GetActiveOrders},
				{Method: http.MethodGet, Path: "/orders/history", Handler: orderHandler.GetOrderHistory},
				{Method: http.MethodGet, Path: "/dashboard", Handler: orderHandler.GetDashboard},
			})

			addRoutes(shops, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: shopHandler.GetShop},
				{Method: http.MethodGet, Path: "/:id/products", Handler: productHandler.ListShopProducts},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: orderHandler.PlaceOrder, Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleCustomer)}},
				{Method: http.MethodGet, Path: "", Handler: orderHandler.GetMyOrders},
				{Method: http.MethodGet, Path: "/:id", Handler: orderHandler.GetOrder},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: orderHandler.UpdateOrderStatus},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: orderHandler.CancelOrder},
			})
		}

		products := apiGroup.Group("/products")
		products.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleShopkeeper))
		{
			addRoutes(products, []route{
				{Method: http.MethodGet, Path: "", Handler: productHandler.ListMyProducts},
				{Method: http.MethodPost, Path: "", Handler: productHandler.CreateProduct},
				{Method: http.MethodDelete, Path: "/:id", Handler: productHandler.DeleteProduct},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
