package api

import (
	"errors"
	"net/http"

	reqdto "eventhub/internal/handler/dto/request"
	resdto "eventhub/internal/handler/dto/response"
	"eventhub/internal/handler/httperr"
	"eventhub/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckInHandler struct {
	checkInCommands commands.CheckInCommands
}

func NewCheckInHandler(checkInCommands commands.CheckInCommands) *CheckInHandler {
	return &CheckInHandler{
		checkInCommands: checkInCommands,
	}
}

// @Summary Check in an attendee
// @Description Redeem a single-use code against an event
// @Tags check-in
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CheckInRequest true "Scanned code"
// @Success 200 {object} resdto.CheckInResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /attendees/check-in [post]
func (h *CheckInHandler) CheckIn(c *gin.Context) {
	var req reqdto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Code and event ID are required", nil)
		return
	}

	result, err := h.checkInCommands.CheckIn(c.Request.Context(), req.QRCode, req.EventID)
	if err != nil {
		// Each outcome keeps a stable message so station operators can tell a
		// replayed badge from a wrong-event one at a glance.
		switch {
		case errors.Is(err, commands.ErrInvalidCheckIn):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Code and event ID are required", nil)
		case errors.Is(err, commands.ErrCodeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Code not recognized", nil)
		case errors.Is(err, commands.ErrCodeAlreadyRedeemed):
			httperr.AbortWithError(c, http.StatusConflict, err, "Code already redeemed", nil)
		case errors.Is(err, commands.ErrEventMismatch):
			httperr.AbortWithError(c, http.StatusConflict, err, "Code does not belong to this event", nil)
		case errors.Is(err, commands.ErrAttendeeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Registration missing for code", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckInResult(result))
}
