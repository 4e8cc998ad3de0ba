package model

import (
	"time"

	"github.com/google/uuid"
)

// Payment represents a captured payment row. The capture flow owns these
// rows; the sync flow only reads them and flips the synced flag.
type Payment struct {
	ID                      int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	GymID                   uuid.UUID  `gorm:"column:gym_id;type:uuid;not null;index" json:"gym_id"`
	MemberID                *uuid.UUID `gorm:"column:member_id;type:uuid;index" json:"member_id,omitempty"`
	MemberName              string     `gorm:"size:255" json:"member_name"`
	MemberEmail             string     `gorm:"size:255" json:"member_email"`
	ProviderPaymentIntentID *string    `gorm:"column:provider_payment_intent_id;unique;size:100" json:"provider_payment_intent_id,omitempty"`
	Type                    string     `gorm:"size:50;not null;index" json:"type"`
	AmountCents             int        `gorm:"not null" json:"amount_cents"`
	Currency                string     `gorm:"size:3;default:'USD'" json:"currency"`
	Status                  string     `gorm:"size:50;not null" json:"status"`
	Synced                  bool       `gorm:"not null;default:false;index" json:"synced"`
	SyncedAt                *time.Time `json:"synced_at,omitempty"`
	Metadata                JSONB      `gorm:"type:jsonb" json:"metadata,omitempty"`
	PaidAt                  *time.Time `json:"paid_at,omitempty"`
	CreatedAt               time.Time  `gorm:"default:now()" json:"created_at"`
	UpdatedAt               time.Time  `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Payment) TableName() string {
	return "payments"
}
