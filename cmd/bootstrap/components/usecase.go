package components

import (
	"localshop-api/internal/pkg/clock"
	"localshop-api/internal/usecase/commands"
	"localshop-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewOrderCommands,
		commands.NewShopCommands,
		commands.NewProductCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOrderQueries,
		queries.NewDashboardQueries,
		queries.NewShopQueries,
		queries.NewProductQueries,
	),
)
