package provider

import (
	"context"
	"time"
)

// AccountingProvider is the interface for external accounting systems
// (QuickBooks, Xero). One ExportPayment call posts one document.
type AccountingProvider interface {
	// Name returns the provider name.
	Name() string

	// Supported reports whether exports through this provider are
	// implemented. An unsupported provider still participates in a sync run;
	// every export simply fails.
	Supported() bool

	// ExportPayment posts a sales receipt (normal payment) or credit memo
	// (refund) for one categorized payment.
	ExportPayment(ctx context.Context, req *ExportRequest) (*ExportResult, error)
}

// ExportRequest is a provider-agnostic export of one categorized payment.
type ExportRequest struct {
	PaymentID   int64      `json:"payment_id"`
	MemberName  string     `json:"member_name"`
	MemberEmail string     `json:"member_email,omitempty"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	AmountCents int        `json:"amount_cents"`
	Currency    string     `json:"currency"`
	AccountID   string     `json:"account_id"`
	AccountName string     `json:"account_name,omitempty"`
	Refund      bool       `json:"refund"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
}

// ExportResult carries the identifiers of the document the provider created.
type ExportResult struct {
	ExternalID     string `json:"external_id"`
	ExternalNumber string `json:"external_number,omitempty"`
}

// ProviderType represents the type of accounting provider
type ProviderType string

const (
	ProviderTypeQuickBooks ProviderType = "quickbooks"
	ProviderTypeXero       ProviderType = "xero"
)

// Valid reports whether the provider type is one of the supported set.
func (p ProviderType) Valid() bool {
	return p == ProviderTypeQuickBooks || p == ProviderTypeXero
}

// Capability describes a provider and whether exports through it are
// implemented.
type Capability struct {
	Provider  ProviderType `json:"provider"`
	Supported bool         `json:"supported"`
}

// Capabilities lists the declared providers with their support flags.
func Capabilities() []Capability {
	return []Capability{
		{Provider: ProviderTypeQuickBooks, Supported: true},
		{Provider: ProviderTypeXero, Supported: false},
	}
}

// Error types for provider operations
type ProviderError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *ProviderError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}
