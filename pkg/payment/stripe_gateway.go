package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	stripe "github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
	"github.com/stripe/stripe-go/v78/webhook"
)

type StripeGateway struct {
	sc            *client.API
	webhookSecret string
	successURL    string
	cancelURL     string
}

func NewStripeGateway(secretKey, webhookSecret, successURL, cancelURL string) *StripeGateway {
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &StripeGateway{
		sc:            sc,
		webhookSecret: webhookSecret,
		successURL:    successURL,
		cancelURL:     cancelURL,
	}
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		SuccessURL: stripe.String(g.successURL),
		CancelURL:  stripe.String(g.cancelURL),
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(req.Currency),
				UnitAmount: stripe.Int64(req.AmountCents),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:        stripe.String(req.ProductName),
					Description: optionalString(req.Description),
				},
			},
			Quantity: stripe.Int64(1),
		}},
		Metadata: req.Metadata,
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: req.Metadata,
		},
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	if !req.ExpiresAt.IsZero() {
		params.ExpiresAt = stripe.Int64(req.ExpiresAt.Unix())
	}
	params.Context = ctx

	sess, err := g.sc.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	return &CheckoutSession{
		ID:        sess.ID,
		URL:       sess.URL,
		ExpiresAt: time.Unix(sess.ExpiresAt, 0),
	}, nil
}

func (g *StripeGateway) ParseWebhook(payload []byte, signature string) (*SessionEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, errors.Join(ErrInvalidSignature, err)
	}

	out := &SessionEvent{
		ID:   event.ID,
		Type: string(event.Type),
		Raw:  payload,
	}
	switch out.Type {
	case EventCheckoutCompleted, EventCheckoutExpired:
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return nil, fmt.Errorf("decode checkout session: %w", err)
		}
		out.SessionID = sess.ID
		out.AmountTotal = sess.AmountTotal
		out.Currency = string(sess.Currency)
		out.Metadata = sess.Metadata
		if sess.PaymentIntent != nil {
			out.PaymentIntentID = sess.PaymentIntent.ID
		}
	}
	return out, nil
}

// FetchPaymentDetails walks payment intent -> latest charge -> balance transaction.
func (g *StripeGateway) FetchPaymentDetails(ctx context.Context, paymentIntentID string) (*PaymentDetails, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	params.AddExpand("latest_charge.balance_transaction")

	pi, err := g.sc.PaymentIntents.Get(paymentIntentID, params)
	if err != nil {
		return nil, fmt.Errorf("get payment intent %s: %w", paymentIntentID, err)
	}

	details := &PaymentDetails{
		PaymentIntentID: pi.ID,
		PaidAt:          time.Unix(pi.Created, 0),
	}
	charge := pi.LatestCharge
	if charge == nil {
		return details, nil
	}
	details.ChargeID = charge.ID
	details.ReceiptURL = charge.ReceiptURL
	if charge.Created > 0 {
		details.PaidAt = time.Unix(charge.Created, 0)
	}
	if bt := charge.BalanceTransaction; bt != nil {
		details.BalanceTransactionID = bt.ID
		details.FeeCents = bt.Fee
		details.NetCents = bt.Net
	}
	return details, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return stripe.String(s)
}
