package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"costmanager/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a unique numeric ID.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return CreateTestUserWithID(t, db, 100000+nextID())
}

// CreateTestUserWithID creates a user with the given ID.
func CreateTestUserWithID(t *testing.T, db *gorm.DB, id int64) *models.User {
	t.Helper()

	user := &models.User{
		ID:        id,
		FirstName: fmt.Sprintf("First%d", id),
		LastName:  fmt.Sprintf("Last%d", id),
		Birthday:  time.Date(2001, 2, 3, 0, 0, 0, 0, time.UTC),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCost inserts a cost directly, bypassing the not-in-past rule so
// tests can seed historical months.
func CreateTestCost(t *testing.T, db *gorm.DB, userID int64, category string, sum float64, createdAt time.Time) *models.Cost {
	t.Helper()

	cost := &models.Cost{
		Description: fmt.Sprintf("Test Cost %d", nextID()),
		Category:    category,
		UserID:      userID,
		Sum:         sum,
		CreatedAt:   createdAt.UTC(),
	}
	if err := db.Create(cost).Error; err != nil {
		t.Fatalf("failed to create test cost: %v", err)
	}
	return cost
}

// CreateTestCachedReport stores an empty cached report for the key.
func CreateTestCachedReport(t *testing.T, db *gorm.DB, userID int64, year, month int) *models.CachedReport {
	t.Helper()

	cached := &models.CachedReport{
		UserID:     userID,
		Year:       year,
		Month:      month,
		Payload:    models.MonthlyReport{UserID: userID, Year: year, Month: month, Costs: []models.CategoryCosts{}},
		ComputedAt: time.Now().UTC(),
	}
	if err := db.Create(cached).Error; err != nil {
		t.Fatalf("failed to create test cached report: %v", err)
	}
	return cached
}
