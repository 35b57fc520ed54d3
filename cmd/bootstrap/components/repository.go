package components

import (
	"localshop-api/internal/infra/db"
	"localshop-api/internal/infra/readstore"
	"localshop-api/internal/infra/writerepo"
	"localshop-api/internal/usecase/commands"
	"localshop-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		// Write-side repositories
		fx.Annotate(
			writerepo.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
		),
		fx.Annotate(
			writerepo.NewShopRepository,
			fx.As(new(commands.ShopRepository)),
		),
		fx.Annotate(
			writerepo.NewProductRepository,
			fx.As(new(commands.ProductRepository)),
		),
		fx.Annotate(
			writerepo.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderViewRepo)),
		),
		fx.Annotate(
			readstore.NewShopReadStore,
			fx.As(new(queries.ShopViewRepo)),
		),
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(queries.ProductViewRepo)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
