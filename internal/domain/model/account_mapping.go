package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountMapping maps an internal revenue category to an external ledger
// account. At most one mapping per (gym, provider, category).
type AccountMapping struct {
	ID                  int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	GymID               uuid.UUID `gorm:"column:gym_id;type:uuid;not null;uniqueIndex:uniq_mapping_gym_provider_category" json:"gym_id"`
	Provider            string    `gorm:"size:20;not null;uniqueIndex:uniq_mapping_gym_provider_category" json:"provider"`
	RevenueCategory     string    `gorm:"size:50;not null;uniqueIndex:uniq_mapping_gym_provider_category" json:"revenue_category"`
	ExternalAccountID   string    `gorm:"size:100;not null" json:"external_account_id"`
	ExternalAccountName string    `gorm:"size:255" json:"external_account_name"`
	CreatedAt           time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt           time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (AccountMapping) TableName() string {
	return "accounting_account_mappings"
}
