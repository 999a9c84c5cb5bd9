package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"eventhub/internal/domain/user"
	"eventhub/internal/handler/api"
	"eventhub/internal/handler/middleware"
	"eventhub/internal/pkg/config"
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
	authHandler *api.AuthHandler,
	eventHandler *api.EventHandler,
	registrationHandler *api.RegistrationHandler,
	checkInHandler *api.CheckInHandler,
	notificationHandler *api.NotificationHandler,
	userHandler *api.UserHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, eventHandler, registrationHandler, checkInHandler, notificationHandler, userHandler, authMiddleware)
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
	authHandler *api.AuthHandler,
	eventHandler *api.EventHandler,
	registrationHandler *api.RegistrationHandler,
	checkInHandler *api.CheckInHandler,
	notificationHandler *api.NotificationHandler,
	userHandler *api.UserHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireStaff := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleStaff)}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
				{Method: http.MethodGet, Path: "/users", Handler: userHandler.ListUsers, Mw: requireStaff},
				{Method: http.MethodGet, Path: "/users/:id", Handler: userHandler.GetUser},
				{Method: http.MethodPut, Path: "/users/:id", Handler: userHandler.UpdateProfile},
			})
		}

		events := apiGroup.Group("/events")
		{
			addRoutes(events, []route{
				{Method: http.MethodGet, Path: "", Handler: eventHandler.ListEvents},
				{Method: http.MethodGet, Path: "/:id", Handler: eventHandler.GetEvent},
			})

			eventsAuth := events.Group("")
			eventsAuth.Use(authMiddleware.RequireAuth())
			addRoutes(eventsAuth, []route{
				{Method: http.MethodPost, Path: "", Handler: eventHandler.CreateEvent, Mw: requireStaff},
				{Method: http.MethodGet, Path: "/:id/attendees", Handler: eventHandler.GetEventAttendees, Mw: requireStaff},
				{Method: http.MethodPost, Path: "/:id/register", Handler: registrationHandler.Register},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(authMiddleware.RequireAuth())
		addRoutes(users, []route{
			{Method: http.MethodGet, Path: "/:id/registrations", Handler: registrationHandler.GetUserRegistrations},
		})

		registrations := apiGroup.Group("/registrations")
		registrations.Use(authMiddleware.RequireAuth())
		addRoutes(registrations, []route{
			{Method: http.MethodGet, Path: "/:id/qr.png", Handler: registrationHandler.GetQRImage},
		})

		attendees := apiGroup.Group("/attendees")
		attendees.Use(authMiddleware.RequireAuth())
		addRoutes(attendees, []route{
			{Method: http.MethodPost, Path: "/check-in", Handler: checkInHandler.CheckIn, Mw: requireStaff},
		})

		notifications := apiGroup.Group("/notifications")
		notifications.Use(authMiddleware.RequireAuth())
		addRoutes(notifications, []route{
			{Method: http.MethodPost, Path: "", Handler: notificationHandler.CreateNotification, Mw: requireStaff},
			{Method: http.MethodGet, Path: "", Handler: notificationHandler.ListNotifications, Mw: requireStaff},
			{Method: http.MethodGet, Path: "/inbox", Handler: notificationHandler.GetInbox},
		})
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
