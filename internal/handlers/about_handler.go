package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"costmanager/internal/config"
	"costmanager/internal/services"
)

// AboutHandler serves the team members behind the API.
type AboutHandler struct {
	team []config.TeamMember
	logs services.LogServicer
}

// NewAboutHandler creates a new AboutHandler.
func NewAboutHandler(team []config.TeamMember, logs services.LogServicer) *AboutHandler {
	if team == nil {
		team = []config.TeamMember{}
	}
	return &AboutHandler{team: team, logs: logs}
}

// GetAbout returns the configured team members.
// @Summary     Team members
// @Description List the developers of the API (first and last name only)
// @Tags        about
// @Produce     json
// @Success     200 {array} config.TeamMember "Team members"
// @Router      /api/about [get]
func (h *AboutHandler) GetAbout(c *gin.Context) {
	recordAccess(c, h.logs, nil)
	c.JSON(http.StatusOK, h.team)
}
