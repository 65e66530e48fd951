package models

import "time"

// Base is the base model for all entities. IDs are numeric and
// store-assigned.
type Base struct {
	ID        uint      `json:"id"       gorm:"primaryKey"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"modified"`
}
