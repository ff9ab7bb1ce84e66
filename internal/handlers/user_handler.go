package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"costmanager/internal/services"
)

// UserHandler handles user-related requests.
type UserHandler struct {
	userService services.UserServicer
	logs        services.LogServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService services.UserServicer, logs services.LogServicer) *UserHandler {
	return &UserHandler{userService: userService, logs: logs}
}

// ListUsers returns every user.
// @Summary     List users
// @Tags        users
// @Produce     json
// @Success     200 {array} models.User "Users"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /api/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	recordAccess(c, h.logs, nil)

	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUserDetails returns a user and the total of all their costs.
// @Summary     User details
// @Description Get a user's name together with the sum of all their costs
// @Tags        users
// @Produce     json
// @Param       id path int true "User ID"
// @Success     200 {object} services.UserDetails "User details"
// @Failure     400 {object} ErrorResponse "Invalid id"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /api/users/{id} [get]
func (h *UserHandler) GetUserDetails(c *gin.Context) {
	id, err := parseInt64(c.Param("id"), "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	recordAccess(c, h.logs, map[string]any{"id": id})

	details, err := h.userService.GetUserDetails(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}
