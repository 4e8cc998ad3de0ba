package http

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gymstack/accounting-service/internal/domain/entity"
	"github.com/gymstack/accounting-service/internal/domain/repository"
	"github.com/labstack/echo/v4"
	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
	"go.uber.org/zap"
)

// WebhookHandler ingests payment processor events and captures them as
// payment rows for later reconciliation. Redelivered events are deduplicated
// on the processor's intent/charge id.
type WebhookHandler struct {
	payments      repository.PaymentRepository
	webhookSecret string
	logger        *zap.Logger
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(payments repository.PaymentRepository, webhookSecret string, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		payments:      payments,
		webhookSecret: webhookSecret,
		logger:        logger,
	}
}

// HandleStripeWebhook handles POST /webhook
func (h *WebhookHandler) HandleStripeWebhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "failed to read request body",
		})
	}

	event, err := webhook.ConstructEventWithOptions(
		payload,
		c.Request().Header.Get("Stripe-Signature"),
		h.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		h.logger.Warn("Webhook signature verification failed", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "invalid webhook signature",
		})
	}

	switch event.Type {
	case "payment_intent.succeeded":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			h.logger.Error("Failed to parse payment intent", zap.Error(err))
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "malformed event payload",
			})
		}
		if err := h.capturePayment(c, &intent); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"error": "internal server error",
			})
		}

	case "charge.refunded":
		var charge stripe.Charge
		if err := json.Unmarshal(event.Data.Raw, &charge); err != nil {
			h.logger.Error("Failed to parse charge", zap.Error(err))
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "malformed event payload",
			})
		}
		if err := h.captureRefund(c, &charge); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"error": "internal server error",
			})
		}

	default:
		h.logger.Debug("Ignoring webhook event",
			zap.String("type", string(event.Type)))
	}

	return c.JSON(http.StatusOK, echo.Map{"received": true})
}

func (h *WebhookHandler) capturePayment(c echo.Context, intent *stripe.PaymentIntent) error {
	ctx := c.Request().Context()

	existing, err := h.payments.GetByProviderIntentID(ctx, intent.ID)
	if err != nil {
		h.logger.Error("Failed to check payment idempotency",
			zap.String("intent_id", intent.ID),
			zap.Error(err))
		return err
	}
	if existing != nil {
		h.logger.Debug("Duplicate payment intent event",
			zap.String("intent_id", intent.ID))
		return nil
	}

	gymID, paymentType, ok := h.parseMetadata(intent.ID, intent.Metadata)
	if !ok {
		// Not a payment this service tracks; acknowledge without a row.
		return nil
	}

	now := time.Now()
	payment := &entity.Payment{
		GymID:                   gymID.String(),
		MemberID:                intent.Metadata["member_id"],
		MemberName:              intent.Metadata["member_name"],
		MemberEmail:             intent.Metadata["member_email"],
		ProviderPaymentIntentID: intent.ID,
		Type:                    paymentType,
		AmountCents:             int(intent.Amount),
		Currency:                string(intent.Currency),
		Status:                  entity.PaymentStatusCompleted,
		PaidAt:                  &now,
	}
	if err := h.payments.Create(ctx, payment); err != nil {
		h.logger.Error("Failed to capture payment",
			zap.String("intent_id", intent.ID),
			zap.Error(err))
		return err
	}

	h.logger.Info("Captured payment from webhook",
		zap.Int64("payment_id", payment.ID),
		zap.String("intent_id", intent.ID),
		zap.String("type", string(paymentType)))
	return nil
}

// captureRefund records a refund as its own payment row with type refund so
// the sync flow exports it as a credit memo.
func (h *WebhookHandler) captureRefund(c echo.Context, charge *stripe.Charge) error {
	ctx := c.Request().Context()

	existing, err := h.payments.GetByProviderIntentID(ctx, charge.ID)
	if err != nil {
		h.logger.Error("Failed to check refund idempotency",
			zap.String("charge_id", charge.ID),
			zap.Error(err))
		return err
	}
	if existing != nil {
		h.logger.Debug("Duplicate charge refunded event",
			zap.String("charge_id", charge.ID))
		return nil
	}

	gymID, _, ok := h.parseMetadata(charge.ID, charge.Metadata)
	if !ok {
		return nil
	}

	now := time.Now()
	payment := &entity.Payment{
		GymID:                   gymID.String(),
		MemberID:                charge.Metadata["member_id"],
		MemberName:              charge.Metadata["member_name"],
		MemberEmail:             charge.Metadata["member_email"],
		ProviderPaymentIntentID: charge.ID,
		Type:                    entity.PaymentTypeRefund,
		AmountCents:             int(charge.AmountRefunded),
		Currency:                string(charge.Currency),
		Status:                  entity.PaymentStatusRefunded,
		PaidAt:                  &now,
	}
	if err := h.payments.Create(ctx, payment); err != nil {
		h.logger.Error("Failed to capture refund",
			zap.String("charge_id", charge.ID),
			zap.Error(err))
		return err
	}

	h.logger.Info("Captured refund from webhook",
		zap.Int64("payment_id", payment.ID),
		zap.String("charge_id", charge.ID))
	return nil
}

// parseMetadata extracts the gym id and payment type the checkout flow stamps
// onto every intent. Events without them belong to another product surface.
func (h *WebhookHandler) parseMetadata(eventObjectID string, metadata map[string]string) (uuid.UUID, entity.PaymentType, bool) {
	rawGymID := metadata["gym_id"]
	if rawGymID == "" {
		h.logger.Debug("Webhook event without gym_id metadata",
			zap.String("object_id", eventObjectID))
		return uuid.Nil, "", false
	}
	gymID, err := uuid.Parse(rawGymID)
	if err != nil {
		h.logger.Warn("Webhook event with malformed gym_id metadata",
			zap.String("object_id", eventObjectID),
			zap.String("gym_id", rawGymID))
		return uuid.Nil, "", false
	}

	paymentType := entity.PaymentType(metadata["payment_type"])
	switch paymentType {
	case entity.PaymentTypeDayPass, entity.PaymentTypeServiceBooking,
		entity.PaymentTypeSubscription, entity.PaymentTypeRefund:
	case "":
		paymentType = entity.PaymentTypeDayPass
	default:
		h.logger.Warn("Webhook event with unknown payment_type metadata",
			zap.String("object_id", eventObjectID),
			zap.String("payment_type", string(paymentType)))
		return uuid.Nil, "", false
	}

	return gymID, paymentType, true
}
