package model

import (
	"time"

	"github.com/google/uuid"
)

// SyncLog is the audit record of one reconciliation run. Created with status
// running, finalized exactly once, immutable afterwards.
type SyncLog struct {
	ID           uuid.UUID       `gorm:"primaryKey;type:uuid" json:"id"`
	GymID        uuid.UUID       `gorm:"column:gym_id;type:uuid;not null;index" json:"gym_id"`
	Provider     string          `gorm:"size:20;not null" json:"provider"`
	TriggerType  string          `gorm:"size:20;not null" json:"trigger_type"`
	Status       string          `gorm:"size:20;not null" json:"status"`
	Attempted    int             `gorm:"not null;default:0" json:"attempted"`
	Succeeded    int             `gorm:"not null;default:0" json:"succeeded"`
	Failed       int             `gorm:"not null;default:0" json:"failed"`
	ErrorSummary *string         `json:"error_summary,omitempty"`
	ErrorDetail  SyncErrorDetail `gorm:"type:jsonb" json:"error_detail,omitempty"`
	StartedAt    time.Time       `gorm:"not null" json:"started_at"`
	EndedAt      *time.Time      `json:"ended_at,omitempty"`
	CreatedAt    time.Time       `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for GORM
func (SyncLog) TableName() string {
	return "accounting_sync_logs"
}
