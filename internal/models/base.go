package models

import (
	"time"

	"costmanager/internal/uuid"

	"gorm.io/gorm"
)

// Base contains the surrogate key and update timestamp shared by app-keyed tables.
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	UpdatedAt time.Time `json:"-"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}
