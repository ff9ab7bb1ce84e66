package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "costmanager/internal/errors"
	"costmanager/internal/models"
)

// userService handles user-related business logic.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// CreateUser registers a new user under the client-assigned ID.
func (s *userService) CreateUser(ctx context.Context, input CreateUserInput) (*models.User, error) {
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	if firstName == "" || lastName == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "first_name and last_name are required")
	}
	if input.Birthday.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "birthday must be a valid date")
	}

	db := s.db.WithContext(ctx)

	var count int64
	if err := db.Model(&models.User{}).Where("id = ?", input.ID).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateUser
	}

	user := &models.User{
		ID:        input.ID,
		FirstName: firstName,
		LastName:  lastName,
		Birthday:  input.Birthday.UTC(),
	}
	if err := db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateUser
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return user, nil
}

// ListUsers returns every user ordered by ID.
func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return users, nil
}

// GetUserDetails returns the user's name and the sum of all their costs.
func (s *userService) GetUserDetails(ctx context.Context, id int64) (*UserDetails, error) {
	db := s.db.WithContext(ctx)

	var user models.User
	if err := db.Where("id = ?", id).Take(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var total float64
	if err := db.Model(&models.Cost{}).
		Where("user_id = ?", id).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &UserDetails{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		ID:        user.ID,
		Total:     total,
	}, nil
}
