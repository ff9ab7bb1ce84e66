// Package report builds per-user monthly cost reports and caches the
// reports of months that have fully elapsed.
package report

import (
	"context"
	"time"

	"costmanager/internal/models"
)

// CostFinder loads the costs a report is built from.
type CostFinder interface {
	// FindCostsByUserAndDateRange returns the user's costs with createdAt in
	// [from, to], oldest first.
	FindCostsByUserAndDateRange(ctx context.Context, userID int64, from, to time.Time) ([]models.Cost, error)
}

// Builder groups a month of costs into a MonthlyReport.
type Builder struct {
	costs    CostFinder
	order    []string
	location *time.Location
}

// NewBuilder creates a Builder emitting categories in the given order.
// A nil location means UTC.
func NewBuilder(costs CostFinder, order []string, location *time.Location) *Builder {
	if location == nil {
		location = time.UTC
	}
	return &Builder{
		costs:    costs,
		order:    append([]string(nil), order...),
		location: location,
	}
}

// Location returns the reference location months are computed in.
func (b *Builder) Location() *time.Location {
	return b.location
}

// Build loads the user's costs for the month and groups them by category.
// It has no side effects.
func (b *Builder) Build(ctx context.Context, userID int64, year, month int) (*models.MonthlyReport, error) {
	from, to := MonthWindow(year, month, b.location)

	costs, err := b.costs.FindCostsByUserAndDateRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	return &models.MonthlyReport{
		UserID: userID,
		Year:   year,
		Month:  month,
		Costs:  b.group(costs),
	}, nil
}

func (b *Builder) group(costs []models.Cost) []models.CategoryCosts {
	grouped := make(map[string][]models.ReportItem, len(b.order))
	for i := range costs {
		c := &costs[i]
		grouped[c.Category] = append(grouped[c.Category], models.ReportItem{
			Sum:         c.Sum,
			Description: c.Description,
			Day:         c.CreatedAt.In(b.location).Day(),
		})
	}

	out := make([]models.CategoryCosts, 0, len(b.order))
	for _, category := range b.order {
		items := grouped[category]
		if items == nil {
			items = []models.ReportItem{}
		}
		out = append(out, models.CategoryCosts{Category: category, Items: items})
	}
	return out
}
