package quickbooks

import (
	"context"
	"time"

	"github.com/gymstack/accounting-service/internal/domain/provider"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ExportPayment posts a sales receipt for a normal payment or a credit memo
// for a refund and returns the created document's identifiers.
func (c *Client) ExportPayment(ctx context.Context, req *provider.ExportRequest) (*provider.ExportResult, error) {
	customer, err := c.ensureCustomer(ctx, req.MemberName, req.MemberEmail)
	if err != nil {
		return nil, err
	}

	if req.Refund {
		return c.createCreditMemo(ctx, req, customer)
	}
	return c.createSalesReceipt(ctx, req, customer)
}

// amount converts minor units to the decimal amount QuickBooks expects.
// Credit memos carry the absolute value.
func amount(cents int) float64 {
	if cents < 0 {
		cents = -cents
	}
	return decimal.NewFromInt(int64(cents)).
		Div(decimal.NewFromInt(100)).
		InexactFloat64()
}

func (c *Client) line(req *provider.ExportRequest) map[string]interface{} {
	return map[string]interface{}{
		"Amount":      amount(req.AmountCents),
		"DetailType":  "SalesItemLineDetail",
		"Description": req.Description,
		"SalesItemLineDetail": map[string]interface{}{
			"ItemRef": map[string]string{
				"value": req.AccountID,
				"name":  req.AccountName,
			},
		},
	}
}

func txnDate(req *provider.ExportRequest) string {
	t := time.Now()
	if req.PaidAt != nil {
		t = *req.PaidAt
	}
	return t.Format("2006-01-02")
}

func (c *Client) createSalesReceipt(ctx context.Context, req *provider.ExportRequest, customer *customerRef) (*provider.ExportResult, error) {
	body := map[string]interface{}{
		"CustomerRef": map[string]string{"value": customer.ID},
		"TxnDate":     txnDate(req),
		"Line":        []map[string]interface{}{c.line(req)},
	}

	var resp struct {
		SalesReceipt struct {
			ID        string `json:"Id"`
			DocNumber string `json:"DocNumber"`
		} `json:"SalesReceipt"`
	}
	if err := c.post(ctx, "salesreceipt", body, &resp); err != nil {
		return nil, err
	}

	c.logger.Info("QuickBooks: sales receipt created",
		zap.Int64("payment_id", req.PaymentID),
		zap.String("receipt_id", resp.SalesReceipt.ID),
		zap.String("doc_number", resp.SalesReceipt.DocNumber))

	return &provider.ExportResult{
		ExternalID:     resp.SalesReceipt.ID,
		ExternalNumber: resp.SalesReceipt.DocNumber,
	}, nil
}

func (c *Client) createCreditMemo(ctx context.Context, req *provider.ExportRequest, customer *customerRef) (*provider.ExportResult, error) {
	body := map[string]interface{}{
		"CustomerRef": map[string]string{"value": customer.ID},
		"TxnDate":     txnDate(req),
		"Line":        []map[string]interface{}{c.line(req)},
	}

	var resp struct {
		CreditMemo struct {
			ID        string `json:"Id"`
			DocNumber string `json:"DocNumber"`
		} `json:"CreditMemo"`
	}
	if err := c.post(ctx, "creditmemo", body, &resp); err != nil {
		return nil, err
	}

	c.logger.Info("QuickBooks: credit memo created",
		zap.Int64("payment_id", req.PaymentID),
		zap.String("memo_id", resp.CreditMemo.ID),
		zap.String("doc_number", resp.CreditMemo.DocNumber))

	return &provider.ExportResult{
		ExternalID:     resp.CreditMemo.ID,
		ExternalNumber: resp.CreditMemo.DocNumber,
	}, nil
}
