package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"costmanager/internal/config"
)

// Health reports that the process is serving requests.
// @Summary     Health check
// @Tags        health
// @Produce     json
// @Success     200 {object} map[string]bool
// @Router      /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Landing renders the text-only landing page describing the API.
func Landing(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"Categories": cfg.Categories,
			"Team":       cfg.Team,
		})
	}
}
