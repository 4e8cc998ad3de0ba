package provider

import (
	"github.com/gymstack/accounting-service/internal/config"
	"github.com/gymstack/accounting-service/internal/domain/entity"
	domainErrors "github.com/gymstack/accounting-service/internal/domain/errors"
	"github.com/gymstack/accounting-service/internal/domain/provider"
	quickbooksProvider "github.com/gymstack/accounting-service/internal/infrastructure/provider/quickbooks"
	xeroProvider "github.com/gymstack/accounting-service/internal/infrastructure/provider/xero"
	"go.uber.org/zap"
)

// Factory creates accounting providers from a gym's integration row.
type Factory struct {
	config *config.Config
	logger *zap.Logger
}

// NewFactory creates a new provider factory
func NewFactory(config *config.Config, logger *zap.Logger) *Factory {
	return &Factory{
		config: config,
		logger: logger,
	}
}

// GetProvider returns the accounting provider for the integration.
func (f *Factory) GetProvider(integration *entity.Integration) (provider.AccountingProvider, error) {
	switch provider.ProviderType(integration.Provider) {
	case provider.ProviderTypeQuickBooks:
		return f.createQuickBooks(integration)
	case provider.ProviderTypeXero:
		return xeroProvider.NewClient(integration.TenantID, f.logger), nil
	default:
		return nil, domainErrors.ErrInvalidProvider
	}
}

func (f *Factory) createQuickBooks(integration *entity.Integration) (provider.AccountingProvider, error) {
	if integration.RealmID == "" || integration.AccessToken == "" {
		return nil, domainErrors.ErrProviderNotConfigured
	}

	return quickbooksProvider.NewClient(
		f.config.Service.QuickBooks.BaseURL,
		f.config.Service.QuickBooks.MinorVersion,
		integration.RealmID,
		integration.AccessToken,
		f.logger,
	), nil
}
