package components

import (
	"eventhub/internal/pkg/clock"
	"eventhub/internal/usecase"
	"eventhub/internal/usecase/commands"
	"eventhub/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewEventQueries,
		queries.NewUserQueries,
		queries.NewRegistrationQueries,
		queries.NewNotificationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewEventCommands,
		commands.NewRegistrationCommands,
		commands.NewCheckInCommands,
		commands.NewNotificationCommands,
		commands.NewUserCommands,
	),
)
