package services

import (
	"context"
	"time"

	apperrors "costmanager/internal/errors"
	"costmanager/internal/models"
	"costmanager/internal/report"
)

// reportService serves monthly reports through the report cache.
type reportService struct {
	cache *report.Cache
	now   func() time.Time
}

// NewReportService creates a new ReportServicer.
func NewReportService(cache *report.Cache) ReportServicer {
	return &reportService{cache: cache, now: time.Now}
}

// GetMonthlyReport returns the report for the user and month. The clock is
// read once so the closed-month decision and the cache entry agree.
func (s *reportService) GetMonthlyReport(ctx context.Context, userID int64, year, month int) (*models.MonthlyReport, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "month must be between 1 and 12")
	}

	result, err := s.cache.Get(ctx, userID, year, month, s.now())
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}
