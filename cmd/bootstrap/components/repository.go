package components

import (
	"eventhub/internal/infra/db"
	"eventhub/internal/infra/readstore"
	"eventhub/internal/infra/writerepo"
	"eventhub/internal/usecase/commands"
	"eventhub/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		// Write-side repositories
		fx.Annotate(
			writerepo.NewEventRepository,
			fx.As(new(commands.EventRepository)),
		),
		fx.Annotate(
			writerepo.NewRegistrationRepository,
			fx.As(new(commands.RegistrationRepository)),
		),
		fx.Annotate(
			writerepo.NewCheckInRepository,
			fx.As(new(commands.CheckInRepository)),
		),
		fx.Annotate(
			writerepo.NewNotificationRepository,
			fx.As(new(commands.NotificationRepository)),
		),
		fx.Annotate(
			writerepo.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewEventReadStore,
			fx.As(new(queries.EventReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewRegistrationReadStore,
			fx.As(new(queries.RegistrationReadStore)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
