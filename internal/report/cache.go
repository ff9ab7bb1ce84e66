package report

import (
	"context"
	"time"

	"go.uber.org/zap"

	"costmanager/internal/models"
)

// CacheStore persists computed reports of closed months.
type CacheStore interface {
	// FindCachedReport returns nil, nil when no report is cached for the key.
	FindCachedReport(ctx context.Context, userID int64, year, month int) (*models.CachedReport, error)
	// UpsertCachedReport creates or replaces the report keyed on
	// (UserID, Year, Month).
	UpsertCachedReport(ctx context.Context, report *models.CachedReport) error
}

// Cache serves monthly reports, computing closed months once and replaying
// the stored payload afterwards. The current month is always rebuilt.
type Cache struct {
	builder *Builder
	store   CacheStore
	log     *zap.SugaredLogger
}

// NewCache creates a Cache. A nil logger disables cache-fill failure logging.
func NewCache(builder *Builder, store CacheStore, log *zap.SugaredLogger) *Cache {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Cache{builder: builder, store: store, log: log}
}

// Get returns the report for the user and month as of now.
func (c *Cache) Get(ctx context.Context, userID int64, year, month int, now time.Time) (*models.MonthlyReport, error) {
	if !IsClosedMonth(year, month, now, c.builder.Location()) {
		return c.builder.Build(ctx, userID, year, month)
	}

	cached, err := c.store.FindCachedReport(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		payload := cached.Payload
		return &payload, nil
	}

	report, err := c.builder.Build(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}

	entry := &models.CachedReport{
		UserID:     userID,
		Year:       year,
		Month:      month,
		Payload:    *report,
		ComputedAt: now,
	}
	if err := c.store.UpsertCachedReport(ctx, entry); err != nil {
		c.log.Warnw("failed to cache report",
			"error", err,
			"userid", userID,
			"year", year,
			"month", month,
		)
	}

	return report, nil
}
