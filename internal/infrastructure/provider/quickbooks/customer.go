package quickbooks

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

type customerRef struct {
	ID          string
	DisplayName string
}

// ensureCustomer looks up a customer by display name, creating one when
// absent, and returns its reference.
func (c *Client) ensureCustomer(ctx context.Context, displayName, email string) (*customerRef, error) {
	if displayName == "" {
		displayName = "Walk-in member"
	}

	// Single quotes must be escaped inside a QuickBooks query literal.
	escaped := strings.ReplaceAll(displayName, "'", "\\'")
	q := fmt.Sprintf("select Id, DisplayName from Customer where DisplayName = '%s'", escaped)

	var queryResp struct {
		QueryResponse struct {
			Customer []struct {
				ID          string `json:"Id"`
				DisplayName string `json:"DisplayName"`
			} `json:"Customer"`
		} `json:"QueryResponse"`
	}
	if err := c.query(ctx, q, &queryResp); err != nil {
		return nil, err
	}

	if len(queryResp.QueryResponse.Customer) > 0 {
		found := queryResp.QueryResponse.Customer[0]
		return &customerRef{ID: found.ID, DisplayName: found.DisplayName}, nil
	}

	body := map[string]interface{}{
		"DisplayName": displayName,
	}
	if email != "" {
		body["PrimaryEmailAddr"] = map[string]string{"Address": email}
	}

	var createResp struct {
		Customer struct {
			ID          string `json:"Id"`
			DisplayName string `json:"DisplayName"`
		} `json:"Customer"`
	}
	if err := c.post(ctx, "customer", body, &createResp); err != nil {
		return nil, err
	}

	c.logger.Info("QuickBooks: customer created",
		zap.String("customer_id", createResp.Customer.ID),
		zap.String("display_name", displayName))

	return &customerRef{
		ID:          createResp.Customer.ID,
		DisplayName: createResp.Customer.DisplayName,
	}, nil
}
