package models

import "time"

// User is a person costs are recorded for. The ID is assigned by the client
// and never changes.
type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	FirstName string    `gorm:"not null" json:"first_name"`
	LastName  string    `gorm:"not null" json:"last_name"`
	Birthday  time.Time `gorm:"not null" json:"birthday"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
