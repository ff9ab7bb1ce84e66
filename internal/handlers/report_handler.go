package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "costmanager/internal/errors"
	"costmanager/internal/services"
)

// ReportHandler serves monthly cost reports.
type ReportHandler struct {
	reportService services.ReportServicer
	logs          services.LogServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer, logs services.LogServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService, logs: logs}
}

// GetReport returns a user's costs for one month grouped by category.
// Reports of months that have already ended are computed once and served
// from storage afterwards.
// @Summary     Monthly report
// @Description Costs of a user for a month, grouped by category in a fixed order
// @Tags        reports
// @Produce     json
// @Param       id    query int true "User ID"
// @Param       year  query int true "Year"
// @Param       month query int true "Month (1..12)"
// @Success     200 {object} models.MonthlyReport "Monthly report"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /api/report [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	invalid := apperrors.WithMessage(apperrors.ErrValidation, "id, year, month are required (month 1..12)")

	id, err := parseInt64(c.Query("id"), "id")
	if err != nil {
		respondWithError(c, invalid)
		return
	}
	year, err := parseInt64(c.Query("year"), "year")
	if err != nil {
		respondWithError(c, invalid)
		return
	}
	month, err := parseInt64(c.Query("month"), "month")
	if err != nil || month < 1 || month > 12 {
		respondWithError(c, invalid)
		return
	}

	recordAccess(c, h.logs, map[string]any{"id": id, "year": year, "month": month})

	result, err := h.reportService.GetMonthlyReport(c.Request.Context(), id, int(year), int(month))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
