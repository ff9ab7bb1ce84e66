package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"costmanager/internal/services"
)

// LogHandler exposes persisted request logs.
type LogHandler struct {
	logs services.LogServicer
}

// NewLogHandler creates a new LogHandler.
func NewLogHandler(logs services.LogServicer) *LogHandler {
	return &LogHandler{logs: logs}
}

// ListLogs returns every persisted log, newest first.
// @Summary     List logs
// @Tags        logs
// @Produce     json
// @Success     200 {array} models.Log "Logs"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /api/logs [get]
func (h *LogHandler) ListLogs(c *gin.Context) {
	recordAccess(c, h.logs, nil)

	logs, err := h.logs.List(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, logs)
}
