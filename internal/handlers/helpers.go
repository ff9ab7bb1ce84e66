package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "costmanager/internal/errors"
	"costmanager/internal/logger"
	"costmanager/internal/models"
	"costmanager/internal/services"
)

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error   string `json:"error" example:"validation_error"`
	Message string `json:"message" example:"month must be between 1 and 12"`
}

// parseInt64 parses a decimal integer path or query value.
func parseInt64(value, name string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, apperrors.WithMessage(apperrors.ErrValidation, name+" must be a number")
	}
	return n, nil
}

var flexibleTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseFlexibleTime accepts RFC3339 timestamps and plain YYYY-MM-DD dates.
// Values without a zone are read as UTC.
func parseFlexibleTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range flexibleTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q", value)
}

// recordAccess persists an endpoint_access log for the current request.
func recordAccess(c *gin.Context, logs services.LogServicer, meta map[string]any) {
	logs.Record(c.Request.Context(), &models.Log{
		Level:   "info",
		Message: models.LogMessageEndpointAccess,
		Method:  c.Request.Method,
		Path:    c.Request.URL.Path,
		Meta:    meta,
	})
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, ErrorResponse{Error: appErr.Code, Message: appErr.Message})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, ErrorResponse{
		Error:   apperrors.ErrInternalServer.Code,
		Message: apperrors.ErrInternalServer.Message,
	})
}
