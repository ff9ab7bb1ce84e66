package services

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "costmanager/internal/errors"
	"costmanager/internal/models"
)

// costService handles cost creation.
type costService struct {
	db         *gorm.DB
	categories map[string]bool
	skew       time.Duration
	now        func() time.Time
}

// NewCostService creates a new CostServicer accepting the given categories.
// An explicit createdAt may lag the server clock by at most skew.
func NewCostService(db *gorm.DB, categories []string, skew time.Duration) CostServicer {
	allowed := make(map[string]bool, len(categories))
	for _, c := range categories {
		allowed[c] = true
	}
	return &costService{db: db, categories: allowed, skew: skew, now: time.Now}
}

// CreateCost validates and stores a new cost.
func (s *costService) CreateCost(ctx context.Context, input CreateCostInput) (*models.Cost, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "description is required")
	}
	if !s.categories[input.Category] {
		return nil, apperrors.ErrUnknownCategory
	}
	if input.Sum < 0 {
		return nil, apperrors.ErrNegativeSum
	}

	now := s.now()
	createdAt := now
	if input.CreatedAt != nil {
		if input.CreatedAt.Before(now.Add(-s.skew)) {
			return nil, apperrors.ErrCostInPast
		}
		createdAt = *input.CreatedAt
	}

	cost := &models.Cost{
		Description: description,
		Category:    input.Category,
		UserID:      input.UserID,
		Sum:         input.Sum,
		CreatedAt:   createdAt.UTC(),
	}
	if err := s.db.WithContext(ctx).Create(cost).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return cost, nil
}
