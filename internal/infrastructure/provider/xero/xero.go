package xero

import (
	"context"

	"github.com/gymstack/accounting-service/internal/domain/provider"
	"go.uber.org/zap"
)

// Client is the Xero provider (stub implementation). It is declared so that
// a xero sync runs and records a per-payment failure for every export, but
// no document is ever posted.
type Client struct {
	tenantID string
	logger   *zap.Logger
}

// NewClient creates a new Xero provider (stub)
func NewClient(tenantID string, logger *zap.Logger) *Client {
	return &Client{
		tenantID: tenantID,
		logger:   logger,
	}
}

// Name returns the provider name
func (c *Client) Name() string {
	return string(provider.ProviderTypeXero)
}

// Supported reports that Xero exports are not implemented.
func (c *Client) Supported() bool {
	return false
}

// ExportPayment always fails (stub)
func (c *Client) ExportPayment(ctx context.Context, req *provider.ExportRequest) (*provider.ExportResult, error) {
	c.logger.Warn("Xero: ExportPayment not implemented",
		zap.Int64("payment_id", req.PaymentID))

	return nil, &provider.ProviderError{
		Code:    "NOT_IMPLEMENTED",
		Message: "Xero export is not yet implemented",
	}
}
