package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountingIntegration is a gym's connection to an external accounting
// provider. One row per (gym, provider).
type AccountingIntegration struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	GymID       uuid.UUID `gorm:"column:gym_id;type:uuid;not null;uniqueIndex:uniq_integration_gym_provider" json:"gym_id"`
	Provider    string    `gorm:"size:20;not null;uniqueIndex:uniq_integration_gym_provider" json:"provider"`
	Active      bool      `gorm:"not null;default:false" json:"active"`
	RealmID     string    `gorm:"size:100" json:"realm_id"`
	TenantID    string    `gorm:"size:100" json:"tenant_id"`
	AccessToken string    `gorm:"size:4096" json:"-"`
	CreatedAt   time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (AccountingIntegration) TableName() string {
	return "accounting_integrations"
}
