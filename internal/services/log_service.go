package services

import (
	"context"

	"gorm.io/gorm"

	apperrors "costmanager/internal/errors"
	"costmanager/internal/logger"
	"costmanager/internal/models"
)

// logService handles persisted request logs.
type logService struct {
	db *gorm.DB
}

// NewLogService creates a new LogServicer.
func NewLogService(db *gorm.DB) LogServicer {
	return &logService{db: db}
}

// Record stores a log entry. Errors are logged but never propagate
// to avoid disrupting the main operation.
func (s *logService) Record(ctx context.Context, entry *models.Log) {
	if entry.Level == "" {
		entry.Level = "info"
	}

	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		logger.Get().Errorw("failed to persist request log",
			"error", err,
			"message", entry.Message,
			"method", entry.Method,
			"path", entry.Path,
		)
	}
}

// List returns every log entry, newest first.
func (s *logService) List(ctx context.Context) ([]models.Log, error) {
	logs := []models.Log{}
	if err := s.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&logs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return logs, nil
}
