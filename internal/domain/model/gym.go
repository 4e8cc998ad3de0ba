package model

import (
	"time"

	"github.com/google/uuid"
)

// Gym is a tenant.
type Gym struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Slug      string    `gorm:"size:100;unique;not null" json:"slug"`
	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Gym) TableName() string {
	return "gyms"
}
