package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWebhookSecret = "whsec_test"

func sign(payload []byte, secret string) string {
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(fmt.Sprintf("%d.%s", ts, payload)))
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func TestParseWebhookCheckoutCompleted(t *testing.T) {
	g := NewStripeGateway("sk_test", testWebhookSecret, "http://ok", "http://cancel")
	payload := []byte(`{
		"id": "evt_1",
		"object": "event",
		"type": "checkout.session.completed",
		"data": {"object": {
			"id": "cs_123",
			"object": "checkout.session",
			"amount_total": 8000,
			"currency": "usd",
			"payment_intent": "pi_9",
			"metadata": {"plan_id": "p1", "final_amount": "80.00"}
		}}
	}`)

	ev, err := g.ParseWebhook(payload, sign(payload, testWebhookSecret))
	require.NoError(t, err)
	assert.Equal(t, "evt_1", ev.ID)
	assert.Equal(t, EventCheckoutCompleted, ev.Type)
	assert.Equal(t, "cs_123", ev.SessionID)
	assert.Equal(t, "pi_9", ev.PaymentIntentID)
	assert.Equal(t, int64(8000), ev.AmountTotal)
	assert.Equal(t, "80.00", ev.Metadata["final_amount"])
}

func TestParseWebhookRejectsBadSignature(t *testing.T) {
	g := NewStripeGateway("sk_test", testWebhookSecret, "", "")
	payload := []byte(`{"id":"evt_1","object":"event","type":"checkout.session.completed","data":{"object":{}}}`)

	_, err := g.ParseWebhook(payload, sign(payload, "whsec_other"))
	assert.ErrorIs(t, err, ErrInvalidSignature)

	_, err = g.ParseWebhook(payload, "")
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestParseWebhookOtherEventsCarryNoSession(t *testing.T) {
	g := NewStripeGateway("sk_test", testWebhookSecret, "", "")
	payload := []byte(`{"id":"evt_2","object":"event","type":"charge.refunded","data":{"object":{"id":"ch_1"}}}`)

	ev, err := g.ParseWebhook(payload, sign(payload, testWebhookSecret))
	require.NoError(t, err)
	assert.Equal(t, "charge.refunded", ev.Type)
	assert.Empty(t, ev.SessionID)
}

func TestCents(t *testing.T) {
	assert.Equal(t, int64(8000), ToCents(80))
	assert.Equal(t, int64(1999), ToCents(19.99))
	assert.InDelta(t, 19.99, FromCents(1999), 1e-9)
}
