package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v81"
)

func newTestGateway(t *testing.T, h http.HandlerFunc) *StripeGateway {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	b := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	return NewStripeGatewayWithBackend("sk_test_123", b)
}

func TestStripeGateway_Charge(t *testing.T) {
	var form url.Values
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseForm())
		form = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_1","object":"payment_intent","status":"succeeded"}`))
	})

	ch, err := g.Charge(context.Background(), ChargeRequest{
		PaymentMethodID: "pm_card_visa",
		Amount:          LetterPrice,
		Currency:        LetterCurrency,
		Metadata:        map[string]string{"assessment_id": "as-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "pi_1", ch.ID)
	assert.True(t, ch.Succeeded())

	assert.Equal(t, "4999", form.Get("amount"))
	assert.Equal(t, "usd", form.Get("currency"))
	assert.Equal(t, "pm_card_visa", form.Get("payment_method"))
	assert.Equal(t, "true", form.Get("confirm"))
	assert.Equal(t, "as-1", form.Get("metadata[assessment_id]"))
}

func TestStripeGateway_NonSucceededStatus(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_2","object":"payment_intent","status":"requires_action"}`))
	})

	ch, err := g.Charge(context.Background(), ChargeRequest{PaymentMethodID: "pm", Amount: 1, Currency: "usd"})
	require.NoError(t, err)
	assert.False(t, ch.Succeeded())
}

func TestStripeGateway_APIError(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":{"type":"card_error","code":"card_declined","message":"declined"}}`))
	})

	_, err := g.Charge(context.Background(), ChargeRequest{PaymentMethodID: "pm", Amount: 1, Currency: "usd"})
	assert.Error(t, err)
}

func TestCharge_SucceededNil(t *testing.T) {
	var c *Charge
	assert.False(t, c.Succeeded())
}
