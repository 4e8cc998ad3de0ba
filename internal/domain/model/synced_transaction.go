package model

import (
	"time"

	"github.com/google/uuid"
)

// SyncedTransaction links an exported payment to the external document the
// provider created for it. Append-only; the unique index on
// (payment_id, provider) is the idempotency guard for the whole flow.
type SyncedTransaction struct {
	ID                        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	GymID                     uuid.UUID `gorm:"column:gym_id;type:uuid;not null;index" json:"gym_id"`
	PaymentID                 int64     `gorm:"not null;uniqueIndex:uniq_synced_payment_provider" json:"payment_id"`
	Provider                  string    `gorm:"size:20;not null;uniqueIndex:uniq_synced_payment_provider" json:"provider"`
	SyncLogID                 uuid.UUID `gorm:"column:sync_log_id;type:uuid;not null;index" json:"sync_log_id"`
	ExternalTransactionID     string    `gorm:"size:100;not null" json:"external_transaction_id"`
	ExternalTransactionNumber string    `gorm:"size:100" json:"external_transaction_number"`
	RevenueCategory           string    `gorm:"size:50;not null" json:"revenue_category"`
	AmountCents               int       `gorm:"not null" json:"amount_cents"`
	CreatedAt                 time.Time `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for GORM
func (SyncedTransaction) TableName() string {
	return "accounting_synced_transactions"
}
