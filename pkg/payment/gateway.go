// Package payment talks to Stripe on behalf of the checkout flow.
package payment

import (
	"context"
	"errors"
	"time"
)

const (
	EventCheckoutCompleted = "checkout.session.completed"
	EventCheckoutExpired   = "checkout.session.expired"
)

var ErrInvalidSignature = errors.New("invalid webhook signature")

type CheckoutRequest struct {
	ProductName string
	Description string
	// AmountCents is the final amount, already discounted.
	AmountCents   int64
	Currency      string
	CustomerEmail string
	ExpiresAt     time.Time
	Metadata      map[string]string
}

type CheckoutSession struct {
	ID        string
	URL       string
	ExpiresAt time.Time
}

// SessionEvent is the subset of a webhook event the booking flow reads.
type SessionEvent struct {
	ID              string
	Type            string
	SessionID       string
	PaymentIntentID string
	AmountTotal     int64
	Currency        string
	Metadata        map[string]string
	Raw             []byte
}

// PaymentDetails are settled-charge facts. BalanceTransactionID is empty
// while Stripe has not attached the balance transaction yet.
type PaymentDetails struct {
	PaymentIntentID      string
	ChargeID             string
	BalanceTransactionID string
	ReceiptURL           string
	FeeCents             int64
	NetCents             int64
	PaidAt               time.Time
}

type Gateway interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
	ParseWebhook(payload []byte, signature string) (*SessionEvent, error)
	FetchPaymentDetails(ctx context.Context, paymentIntentID string) (*PaymentDetails, error)
}

// ToCents converts a decimal amount to the smallest currency unit.
func ToCents(amount float64) int64 {
	if amount < 0 {
		return -int64(-amount*100 + 0.5)
	}
	return int64(amount*100 + 0.5)
}

func FromCents(cents int64) float64 {
	return float64(cents) / 100
}
