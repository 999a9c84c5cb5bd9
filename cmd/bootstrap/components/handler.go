package components

import (
	"eventhub/internal/handler"
	"eventhub/internal/handler/api"
	"eventhub/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewEventHandler,
		api.NewRegistrationHandler,
		api.NewCheckInHandler,
		api.NewNotificationHandler,
		api.NewUserHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
