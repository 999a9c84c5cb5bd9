package api

import (
	"errors"
	"net/http"

	resdto "eventhub/internal/handler/dto/response"
	"eventhub/internal/handler/httperr"
	"eventhub/internal/handler/middleware"
	"eventhub/internal/usecase/commands"
	"eventhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
)

type RegistrationHandler struct {
	registrationCommands commands.RegistrationCommands
	registrationQueries  queries.RegistrationQueries
}

func NewRegistrationHandler(
	registrationCommands commands.RegistrationCommands,
	registrationQueries queries.RegistrationQueries,
) *RegistrationHandler {
	return &RegistrationHandler{
		registrationCommands: registrationCommands,
		registrationQueries:  registrationQueries,
	}
}

// @Summary Register for an event
// @Tags registrations
// @Security BearerAuth
// @Produce json
// @Param id path int true "Event ID"
// @Success 201 {object} resdto.RegisterResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /events/{id}/register [post]
func (h *RegistrationHandler) Register(c *gin.Context) {
	eventID, err := parseIDParam(c, "id")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid event ID", nil)
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNotAuthenticated, "User not authenticated", nil)
		return
	}

	result, err := h.registrationCommands.Register(c.Request.Context(), eventID, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEventNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Event not found", nil)
		case errors.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		case errors.Is(err, commands.ErrAlreadyRegistered):
			httperr.AbortWithError(c, http.StatusConflict, err, "Already registered for this event", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRegisterResult(result))
}

// @Summary List a user's registrations
// @Tags registrations
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} queries.UserRegistrationsView
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{id}/registrations [get]
func (h *RegistrationHandler) GetUserRegistrations(c *gin.Context) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user ID", nil)
		return
	}

	if !requesterCanAccessUser(c, userID) {
		httperr.AbortWithError(c, http.StatusForbidden, errNotRecordOwner, "Insufficient permissions", nil)
		return
	}

	view, err := h.registrationQueries.GetUserRegistrations(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	if view.Events == nil {
		view.Events = []*queries.RegistrationListItem{}
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Registration code as QR image
// @Description Renders the attendee's code string as a PNG
// @Tags registrations
// @Security BearerAuth
// @Produce png
// @Param id path int true "Attendee ID"
// @Success 200 {file} png
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /registrations/{id}/qr.png [get]
func (h *RegistrationHandler) GetQRImage(c *gin.Context) {
	attendeeID, err := parseIDParam(c, "id")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid attendee ID", nil)
		return
	}

	ac, err := h.registrationQueries.GetAttendeeCode(c.Request.Context(), attendeeID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRegistrationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Registration not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	// The code string is the credential; only its owner or staff may render it.
	if !requesterCanAccessUser(c, ac.UserID) {
		httperr.AbortWithError(c, http.StatusForbidden, errNotRecordOwner, "Insufficient permissions", nil)
		return
	}

	png, err := qrcode.Encode(ac.Code, qrcode.Medium, 256)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
