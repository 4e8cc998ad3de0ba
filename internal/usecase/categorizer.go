package usecase

import (
	"fmt"

	"github.com/gymstack/accounting-service/internal/domain/entity"
	domainErrors "github.com/gymstack/accounting-service/internal/domain/errors"
)

// Categorize maps a payment to its revenue category and the human
// description that appears on the exported document. Pure and deterministic;
// a payment whose type matches no category is an error and will surface as a
// per-payment failure in the sync run.
func Categorize(p *entity.Payment) (*entity.CategorizedPayment, error) {
	var (
		category    entity.RevenueCategory
		description string
	)

	switch p.Type {
	case entity.PaymentTypeDayPass:
		category = entity.CategoryDayPass
		description = "Day pass"
	case entity.PaymentTypeServiceBooking:
		category = entity.CategoryServiceBooking
		description = "Specialty class booking"
	case entity.PaymentTypeSubscription:
		category = entity.CategorySubscription
		description = "Membership subscription"
	case entity.PaymentTypeRefund:
		category = entity.CategoryRefund
		description = "Refund"
	default:
		return nil, fmt.Errorf("%w: %s", domainErrors.ErrUnknownPaymentType, p.Type)
	}

	if p.MemberName != "" {
		description = fmt.Sprintf("%s - %s", description, p.MemberName)
	}

	categorized := &entity.CategorizedPayment{
		Payment:     p,
		Category:    category,
		Description: description,
	}
	if err := categorized.Validate(); err != nil {
		return nil, err
	}
	return categorized, nil
}
