package entity

import "errors"

// RevenueCategory is the internal classification used to pick an external
// ledger account.
type RevenueCategory string

const (
	CategoryDayPass        RevenueCategory = "day_pass"
	CategoryServiceBooking RevenueCategory = "service_booking"
	CategorySubscription   RevenueCategory = "subscription"
	CategoryRefund         RevenueCategory = "refund"
)

// RequiredCategories is the fixed set that must be mapped before any sync
// may run.
var RequiredCategories = []RevenueCategory{
	CategoryDayPass,
	CategoryServiceBooking,
	CategorySubscription,
	CategoryRefund,
}

// KnownCategory reports whether c is one of the required categories.
func KnownCategory(c RevenueCategory) bool {
	for _, rc := range RequiredCategories {
		if rc == c {
			return true
		}
	}
	return false
}

// CategorizedPayment is a payment with its resolved revenue category and the
// human description that will appear on the exported document. It is
// validated once, at the categorizer boundary.
type CategorizedPayment struct {
	Payment     *Payment        `json:"payment"`
	Category    RevenueCategory `json:"category"`
	Description string          `json:"description"`
}

// Validate checks the fields the downstream export stages rely on.
func (c *CategorizedPayment) Validate() error {
	if c.Payment == nil || c.Payment.ID == 0 {
		return errors.New("categorized payment requires a payment id")
	}
	if c.Category == "" {
		return errors.New("categorized payment requires a category")
	}
	if c.Description == "" {
		return errors.New("categorized payment requires a description")
	}
	if c.Payment.AmountCents == 0 {
		return errors.New("categorized payment requires a non-zero amount")
	}
	return nil
}
