package model

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the hosted-auth user profile row. The role column is the single
// source of truth for admin access.
type Profile struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid" json:"id"`
	GymID     uuid.UUID `gorm:"column:gym_id;type:uuid;not null;index" json:"gym_id"`
	Email     string    `gorm:"size:255" json:"email"`
	FullName  string    `gorm:"size:255" json:"full_name"`
	Role      string    `gorm:"size:20;not null;default:'member'" json:"role"`
	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Profile) TableName() string {
	return "profiles"
}
