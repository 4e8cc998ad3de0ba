package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidProvider indicates the requested provider is not one of the
	// supported accounting systems.
	ErrInvalidProvider = errors.New("invalid accounting provider")

	// ErrProviderNotConfigured indicates the gym has no integration row for
	// the requested provider.
	ErrProviderNotConfigured = errors.New("accounting provider is not configured")

	// ErrProviderNotActive indicates the integration exists but is disabled.
	ErrProviderNotActive = errors.New("accounting provider is not active")

	// ErrSyncLogNotFound indicates the requested sync log does not exist.
	ErrSyncLogNotFound = errors.New("sync log not found")

	// ErrAlreadySynced indicates a synced-transaction insert hit the
	// (payment_id, provider) uniqueness constraint.
	ErrAlreadySynced = errors.New("payment already synced for this provider")

	// ErrUnknownPaymentType indicates a payment whose type matches no revenue
	// category.
	ErrUnknownPaymentType = errors.New("unknown payment type")

	// ErrAdminRequired indicates the caller's profile role is not admin.
	ErrAdminRequired = errors.New("admin role required")
)

// MissingMappingsError reports the required revenue categories that lack an
// account mapping for a provider.
type MissingMappingsError struct {
	Provider   string
	Categories []string
}

func (e *MissingMappingsError) Error() string {
	return fmt.Sprintf("missing account mappings for %s: %s",
		e.Provider, strings.Join(e.Categories, ", "))
}
