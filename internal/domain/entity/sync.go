package entity

import (
	"time"

	"github.com/google/uuid"
)

type SyncStatus string

const (
	SyncStatusRunning   SyncStatus = "running"
	SyncStatusCompleted SyncStatus = "completed"
	SyncStatusPartial   SyncStatus = "partial"
	SyncStatusFailed    SyncStatus = "failed"
)

type SyncTrigger string

const (
	SyncTriggerManual    SyncTrigger = "manual"
	SyncTriggerScheduled SyncTrigger = "scheduled"
)

// SyncError is one per-payment failure in a sync run.
type SyncError struct {
	PaymentID int64  `json:"payment_id"`
	Error     string `json:"error"`
}

// SyncSummary is the response of a sync invocation.
// Invariant: Attempted == Succeeded + Failed.
type SyncSummary struct {
	SyncLogID uuid.UUID   `json:"sync_log_id"`
	Status    SyncStatus  `json:"status"`
	Attempted int         `json:"attempted"`
	Succeeded int         `json:"succeeded"`
	Failed    int         `json:"failed"`
	Errors    []SyncError `json:"errors,omitempty"`
}

// SyncLog is the audit record of one reconciliation run.
type SyncLog struct {
	ID           uuid.UUID   `json:"id"`
	GymID        string      `json:"gym_id"`
	Provider     string      `json:"provider"`
	TriggerType  SyncTrigger `json:"trigger_type"`
	Status       SyncStatus  `json:"status"`
	Attempted    int         `json:"attempted"`
	Succeeded    int         `json:"succeeded"`
	Failed       int         `json:"failed"`
	ErrorSummary string      `json:"error_summary,omitempty"`
	Errors       []SyncError `json:"errors,omitempty"`
	StartedAt    time.Time   `json:"started_at"`
	EndedAt      *time.Time  `json:"ended_at,omitempty"`
}

// SyncedTransaction links an exported payment to its external document.
type SyncedTransaction struct {
	ID                        int64     `json:"id"`
	GymID                     string    `json:"gym_id"`
	PaymentID                 int64     `json:"payment_id"`
	Provider                  string    `json:"provider"`
	SyncLogID                 uuid.UUID `json:"sync_log_id"`
	ExternalTransactionID     string    `json:"external_transaction_id"`
	ExternalTransactionNumber string    `json:"external_transaction_number"`
	RevenueCategory           RevenueCategory `json:"revenue_category"`
	AmountCents               int       `json:"amount_cents"`
	CreatedAt                 time.Time `json:"created_at"`
}
