package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// ReportItem is one cost as it appears inside a monthly report.
type ReportItem struct {
	Sum         float64 `json:"sum"`
	Description string  `json:"description"`
	Day         int     `json:"day"`
}

// CategoryCosts is the list of report items for a single category. It is
// encoded as a single-key object: {"food": [...]}.
type CategoryCosts struct {
	Category string
	Items    []ReportItem
}

// MarshalJSON encodes the category as {"<category>": [items]}.
func (c CategoryCosts) MarshalJSON() ([]byte, error) {
	items := c.Items
	if items == nil {
		items = []ReportItem{}
	}
	return json.Marshal(map[string][]ReportItem{c.Category: items})
}

// UnmarshalJSON decodes a single-key category object.
func (c *CategoryCosts) UnmarshalJSON(data []byte) error {
	var m map[string][]ReportItem
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	if len(m) != 1 {
		return fmt.Errorf("category entry must have exactly one key, got %d", len(m))
	}
	for category, items := range m {
		if items == nil {
			items = []ReportItem{}
		}
		c.Category = category
		c.Items = items
	}
	return nil
}

// MonthlyReport is the grouped per-category report for one user and month.
// It is both the wire format and the persisted cache payload.
type MonthlyReport struct {
	UserID int64           `json:"userid"`
	Year   int             `json:"year"`
	Month  int             `json:"month"`
	Costs  []CategoryCosts `json:"costs"`
}

// CachedReport stores the computed report of a closed month. There is at
// most one row per (user, year, month).
type CachedReport struct {
	Base
	UserID     int64         `gorm:"not null;uniqueIndex:idx_reports_user_period,priority:1"`
	Year       int           `gorm:"not null;uniqueIndex:idx_reports_user_period,priority:2"`
	Month      int           `gorm:"not null;uniqueIndex:idx_reports_user_period,priority:3"`
	Payload    MonthlyReport `gorm:"type:text;serializer:json;not null"`
	ComputedAt time.Time     `gorm:"not null"`
	CreatedAt  time.Time
}

// TableName implements the GORM tabler interface.
func (CachedReport) TableName() string { return "reports" }
