package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gymstack/accounting-service/internal/domain/entity"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79/webhook"
	"go.uber.org/zap"
)

const testWebhookSecret = "whsec_test_secret"

func signedWebhookRequest(t *testing.T, payload string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	now := time.Now()
	signature := webhook.ComputeSignature(now, []byte(payload), testWebhookSecret)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Stripe-Signature",
		fmt.Sprintf("t=%d,v1=%x", now.Unix(), signature))
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec)
}

func paymentIntentEvent(intentID string, gymID uuid.UUID, paymentType string, amount int) string {
	return fmt.Sprintf(`{
		"id": "evt_1",
		"type": "payment_intent.succeeded",
		"data": {
			"object": {
				"id": %q,
				"amount": %d,
				"currency": "usd",
				"metadata": {
					"gym_id": %q,
					"payment_type": %q,
					"member_name": "Jamie Lee",
					"member_email": "jamie@gym.test"
				}
			}
		}
	}`, intentID, amount, gymID.String(), paymentType)
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	payments := new(mockPaymentRepo)
	h := NewWebhookHandler(payments, testWebhookSecret, zap.NewNop())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/webhook",
		strings.NewReader(`{"type":"payment_intent.succeeded"}`))
	req.Header.Set("Stripe-Signature", "t=1,v1=deadbeef")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.HandleStripeWebhook(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestWebhookCapturesPaymentIntent(t *testing.T) {
	payments := new(mockPaymentRepo)
	h := NewWebhookHandler(payments, testWebhookSecret, zap.NewNop())
	gymID := uuid.New()

	payments.On("GetByProviderIntentID", mock.Anything, "pi_123").Return(nil, nil)
	payments.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.Payment) bool {
		return p.GymID == gymID.String() &&
			p.ProviderPaymentIntentID == "pi_123" &&
			p.Type == entity.PaymentTypeSubscription &&
			p.AmountCents == 9900 &&
			p.Status == entity.PaymentStatusCompleted &&
			!p.Synced
	})).Return(nil)

	rec, c := signedWebhookRequest(t,
		paymentIntentEvent("pi_123", gymID, "subscription", 9900))

	require.NoError(t, h.HandleStripeWebhook(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	payments.AssertExpectations(t)
}

func TestWebhookRedeliveryIsIdempotent(t *testing.T) {
	payments := new(mockPaymentRepo)
	h := NewWebhookHandler(payments, testWebhookSecret, zap.NewNop())
	gymID := uuid.New()

	payments.On("GetByProviderIntentID", mock.Anything, "pi_123").
		Return(&entity.Payment{ID: 42, ProviderPaymentIntentID: "pi_123"}, nil)

	rec, c := signedWebhookRequest(t,
		paymentIntentEvent("pi_123", gymID, "day_pass", 1500))

	require.NoError(t, h.HandleStripeWebhook(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestWebhookIgnoresEventsWithoutGymMetadata(t *testing.T) {
	payments := new(mockPaymentRepo)
	h := NewWebhookHandler(payments, testWebhookSecret, zap.NewNop())

	payments.On("GetByProviderIntentID", mock.Anything, "pi_999").Return(nil, nil)

	payload := `{
		"id": "evt_2",
		"type": "payment_intent.succeeded",
		"data": {"object": {"id": "pi_999", "amount": 500, "currency": "usd", "metadata": {}}}
	}`
	rec, c := signedWebhookRequest(t, payload)

	require.NoError(t, h.HandleStripeWebhook(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestWebhookCapturesRefund(t *testing.T) {
	payments := new(mockPaymentRepo)
	h := NewWebhookHandler(payments, testWebhookSecret, zap.NewNop())
	gymID := uuid.New()

	payments.On("GetByProviderIntentID", mock.Anything, "ch_55").Return(nil, nil)
	payments.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.Payment) bool {
		return p.Type == entity.PaymentTypeRefund &&
			p.Status == entity.PaymentStatusRefunded &&
			p.AmountCents == 1500 &&
			p.ProviderPaymentIntentID == "ch_55"
	})).Return(nil)

	payload := fmt.Sprintf(`{
		"id": "evt_3",
		"type": "charge.refunded",
		"data": {
			"object": {
				"id": "ch_55",
				"amount_refunded": 1500,
				"currency": "usd",
				"metadata": {"gym_id": %q}
			}
		}
	}`, gymID.String())
	rec, c := signedWebhookRequest(t, payload)

	require.NoError(t, h.HandleStripeWebhook(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	payments.AssertExpectations(t)
}

func TestWebhookIgnoresUnhandledEventTypes(t *testing.T) {
	payments := new(mockPaymentRepo)
	h := NewWebhookHandler(payments, testWebhookSecret, zap.NewNop())

	payload := `{"id": "evt_4", "type": "customer.created", "data": {"object": {}}}`
	rec, c := signedWebhookRequest(t, payload)

	require.NoError(t, h.HandleStripeWebhook(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	payments.AssertNotCalled(t, "GetByProviderIntentID", mock.Anything, mock.Anything)
}
