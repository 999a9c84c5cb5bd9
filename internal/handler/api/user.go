package api

import (
	"errors"
	"net/http"

	"eventhub/internal/domain/user"
	"eventhub/internal/handler/httperr"
	reqdto "eventhub/internal/handler/dto/request"
	"eventhub/internal/handler/middleware"
	"eventhub/internal/usecase/commands"
	"eventhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var (
	errNotAuthenticated = errors.New("user not authenticated")
	errNotRecordOwner   = errors.New("requester does not own the record")
)

// Members may act on their own record; staff and admins on anyone's.
func requesterCanAccessUser(c *gin.Context, targetUserID int64) bool {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return false
	}
	return userID == targetUserID || middleware.HasRoleAtLeast(c, user.RoleStaff)
}

type UserHandler struct {
	userQueries  queries.UserQueries
	userCommands commands.UserCommands
}

func NewUserHandler(userQueries queries.UserQueries, userCommands commands.UserCommands) *UserHandler {
	return &UserHandler{
		userQueries:  userQueries,
		userCommands: userCommands,
	}
}

// @Summary List users
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.UserView
// @Router /auth/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userQueries.ListUsers(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	if users == nil {
		users = []*queries.UserView{}
	}
	c.JSON(http.StatusOK, users)
}

// @Summary Get user
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} queries.UserView
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user ID", nil)
		return
	}

	if !requesterCanAccessUser(c, id) {
		httperr.AbortWithError(c, http.StatusForbidden, errNotRecordOwner, "Insufficient permissions", nil)
		return
	}

	view, err := h.userQueries.GetUser(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Update profile
// @Description Partial update of contact and profile fields
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body reqdto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} queries.UserView
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/users/{id} [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user ID", nil)
		return
	}

	if !requesterCanAccessUser(c, id) {
		httperr.AbortWithError(c, http.StatusForbidden, errNotRecordOwner, "Insufficient permissions", nil)
		return
	}

	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.userCommands.UpdateProfile(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUserNotFound), errors.Is(err, queries.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, view)
}
