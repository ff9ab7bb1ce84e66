package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"costmanager/internal/models"
	"costmanager/internal/services"
)

// RequestLogSaver persists an http_request log for every request once the
// response has been written. Persistence is best effort.
func RequestLogSaver(logs services.LogServicer) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		meta := map[string]any{"duration": time.Since(start).Milliseconds()}
		if id, ok := c.Get(requestIDKey); ok {
			meta["request_id"] = id
		}

		logs.Record(c.Request.Context(), &models.Log{
			Level:      "info",
			Message:    models.LogMessageHTTPRequest,
			Method:     c.Request.Method,
			Path:       c.Request.URL.RequestURI(),
			StatusCode: c.Writer.Status(),
			Meta:       meta,
		})
	}
}
