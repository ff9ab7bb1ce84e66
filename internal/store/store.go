// Package store implements the report data access on top of GORM.
package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"costmanager/internal/models"
)

// ReportStore reads costs and reads/writes cached reports.
type ReportStore struct {
	db *gorm.DB
}

// NewReportStore creates a ReportStore.
func NewReportStore(db *gorm.DB) *ReportStore {
	return &ReportStore{db: db}
}

// FindCostsByUserAndDateRange returns the user's costs with createdAt in
// [from, to], oldest first. Ties keep insertion order through the UUIDv7 key.
func (s *ReportStore) FindCostsByUserAndDateRange(ctx context.Context, userID int64, from, to time.Time) ([]models.Cost, error) {
	var costs []models.Cost
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ? AND created_at <= ?", userID, from.UTC(), to.UTC()).
		Order("created_at ASC, id ASC").
		Find(&costs).Error
	if err != nil {
		return nil, err
	}
	return costs, nil
}

// FindCachedReport returns the cached report for the key, or nil if none exists.
func (s *ReportStore) FindCachedReport(ctx context.Context, userID int64, year, month int) (*models.CachedReport, error) {
	var cached models.CachedReport
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND year = ? AND month = ?", userID, year, month).
		Take(&cached).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cached, nil
}

// UpsertCachedReport inserts the report or, when a row for the same
// (user, year, month) exists, replaces its payload and computedAt.
func (s *ReportStore) UpsertCachedReport(ctx context.Context, report *models.CachedReport) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "year"}, {Name: "month"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "computed_at", "updated_at"}),
		}).
		Create(report).Error
}
