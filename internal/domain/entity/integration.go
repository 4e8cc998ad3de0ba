package entity

import "time"

// Integration is a gym's connection to an external accounting provider.
// AccessToken is consumed by the provider factory and never serialized.
type Integration struct {
	ID          int64     `json:"id"`
	GymID       string    `json:"gym_id"`
	Provider    string    `json:"provider"`
	Active      bool      `json:"active"`
	RealmID     string    `json:"realm_id"`
	TenantID    string    `json:"tenant_id"`
	AccessToken string    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AccountMapping maps a revenue category to an external ledger account.
type AccountMapping struct {
	ID                  int64           `json:"id"`
	GymID               string          `json:"gym_id"`
	Provider            string          `json:"provider"`
	RevenueCategory     RevenueCategory `json:"revenue_category"`
	ExternalAccountID   string          `json:"external_account_id"`
	ExternalAccountName string          `json:"external_account_name"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}
