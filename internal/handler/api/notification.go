package api

import (
	"errors"
	"net/http"

	reqdto "eventhub/internal/handler/dto/request"
	"eventhub/internal/handler/httperr"
	"eventhub/internal/usecase/commands"
	"eventhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errMissingEmailParam = errors.New("email query parameter required")

type NotificationHandler struct {
	notificationCommands commands.NotificationCommands
	notificationQueries  queries.NotificationQueries
}

func NewNotificationHandler(
	notificationCommands commands.NotificationCommands,
	notificationQueries queries.NotificationQueries,
) *NotificationHandler {
	return &NotificationHandler{
		notificationCommands: notificationCommands,
		notificationQueries:  notificationQueries,
	}
}

// @Summary Create notification
// @Tags notifications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateNotificationRequest true "Notification"
// @Success 201 {object} queries.NotificationView
// @Failure 400 {object} map[string]string
// @Router /notifications [post]
func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	var req reqdto.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.notificationCommands.CreateNotification(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNotificationValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary List notifications
// @Tags notifications
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.NotificationView
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	views, err := h.notificationQueries.ListNotifications(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	if views == nil {
		views = []*queries.NotificationView{}
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Notification inbox
// @Description Notifications addressed to one recipient email
// @Tags notifications
// @Security BearerAuth
// @Produce json
// @Param email query string true "Recipient email"
// @Success 200 {array} queries.NotificationView
// @Failure 400 {object} map[string]string
// @Router /notifications/inbox [get]
func (h *NotificationHandler) GetInbox(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingEmailParam, "Email is required", nil)
		return
	}

	views, err := h.notificationQueries.GetInbox(c.Request.Context(), email)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	if views == nil {
		views = []*queries.NotificationView{}
	}
	c.JSON(http.StatusOK, views)
}
