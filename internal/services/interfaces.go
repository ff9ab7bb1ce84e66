package services

import (
	"context"
	"time"

	"costmanager/internal/models"
)

// UserDetails is a user together with the total of all their costs.
type UserDetails struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	ID        int64   `json:"id"`
	Total     float64 `json:"total"`
}

// CreateUserInput holds the fields of a new user.
type CreateUserInput struct {
	ID        int64
	FirstName string
	LastName  string
	Birthday  time.Time
}

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUserDetails(ctx context.Context, id int64) (*UserDetails, error)
}

// CreateCostInput holds the fields of a new cost. A nil CreatedAt means now.
type CreateCostInput struct {
	Description string
	Category    string
	UserID      int64
	Sum         float64
	CreatedAt   *time.Time
}

// CostServicer defines the contract for cost-related business logic.
type CostServicer interface {
	CreateCost(ctx context.Context, input CreateCostInput) (*models.Cost, error)
}

// ReportServicer defines the contract for monthly reports.
type ReportServicer interface {
	GetMonthlyReport(ctx context.Context, userID int64, year, month int) (*models.MonthlyReport, error)
}

// LogServicer defines the contract for persisted request logs.
type LogServicer interface {
	Record(ctx context.Context, entry *models.Log)
	List(ctx context.Context) ([]models.Log, error)
}
