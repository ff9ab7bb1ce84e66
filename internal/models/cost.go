package models

import "time"

// Cost is a single expense entry. CreatedAt is the date the cost is booked
// on; it defaults to the insertion time.
type Cost struct {
	Base
	Description string    `gorm:"not null" json:"description"`
	Category    string    `gorm:"not null" json:"category"`
	UserID      int64     `gorm:"not null;index:idx_costs_user_created,priority:1" json:"userid"`
	Sum         float64   `gorm:"column:amount;not null" json:"sum"`
	CreatedAt   time.Time `gorm:"not null;index:idx_costs_user_created,priority:2" json:"createdAt"`
}
