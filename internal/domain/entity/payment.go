package entity

import "time"

type Payment struct {
	ID          int64  `json:"id"`
	GymID       string `json:"gym_id"`
	MemberID    string `json:"member_id,omitempty"`
	MemberName  string `json:"member_name"`
	MemberEmail string `json:"member_email"`
	// ProviderPaymentIntentID is the payment processor's intent/charge id,
	// set for webhook-captured payments. It is the idempotency key for
	// webhook redelivery.
	ProviderPaymentIntentID string        `json:"provider_payment_intent_id,omitempty"`
	Type                    PaymentType   `json:"type"`
	AmountCents             int           `json:"amount_cents"`
	Currency                string        `json:"currency"`
	Status                  PaymentStatus `json:"status"`
	Synced                  bool          `json:"synced"`
	SyncedAt                *time.Time    `json:"synced_at,omitempty"`
	PaidAt                  *time.Time    `json:"paid_at,omitempty"`
	CreatedAt               time.Time     `json:"created_at"`
	UpdatedAt               time.Time     `json:"updated_at"`
}

type PaymentType string

const (
	PaymentTypeDayPass        PaymentType = "day_pass"
	PaymentTypeServiceBooking PaymentType = "service_booking"
	PaymentTypeSubscription   PaymentType = "subscription"
	PaymentTypeRefund         PaymentType = "refund"
)

type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)
