package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "eventhub/internal/handler/dto/request"
	"eventhub/internal/handler/httperr"
	"eventhub/internal/usecase/commands"
	"eventhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	eventQueries  queries.EventQueries
	eventCommands commands.EventCommands
}

func NewEventHandler(eventQueries queries.EventQueries, eventCommands commands.EventCommands) *EventHandler {
	return &EventHandler{
		eventQueries:  eventQueries,
		eventCommands: eventCommands,
	}
}

// @Summary List events
// @Tags events
// @Produce json
// @Success 200 {array} queries.EventView
// @Router /events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.eventQueries.ListEvents(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	if events == nil {
		events = []*queries.EventView{}
	}
	c.JSON(http.StatusOK, events)
}

// @Summary Get event
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} queries.EventView
// @Failure 404 {object} map[string]string
// @Router /events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid event ID", nil)
		return
	}

	view, err := h.eventQueries.GetEvent(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrEventNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Event not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create event
// @Tags events
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateEventRequest true "Event"
// @Success 201 {object} queries.EventView
// @Failure 400 {object} map[string]string
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req reqdto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.eventCommands.CreateEvent(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEventValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Event attendee roster
// @Tags events
// @Security BearerAuth
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {array} queries.AttendeeView
// @Failure 404 {object} map[string]string
// @Router /events/{id}/attendees [get]
func (h *EventHandler) GetEventAttendees(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid event ID", nil)
		return
	}

	attendees, err := h.eventQueries.GetEventAttendees(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrEventNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Event not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	if attendees == nil {
		attendees = []*queries.AttendeeView{}
	}
	c.JSON(http.StatusOK, attendees)
}

func parseIDParam(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
