package components

import (
	"localshop-api/internal/handler"
	"localshop-api/internal/handler/api"
	"localshop-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewShopHandler,
		api.NewOrderHandler,
		api.NewProductHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
