package order

import (
	"context"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// PaymentIntents creates a card payment intent for an order and returns
// the gateway's intent ID.
type PaymentIntents interface {
	CreateIntent(ctx context.Context, amount float64, currency, orderID string) (string, error)
}

// StripeIntents is the Stripe-backed implementation. The global stripe.Key
// is set in main from configuration.
type StripeIntents struct{}

func (StripeIntents) CreateIntent(_ context.Context, amount float64, currency, orderID string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(amount * 100))),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("order_id", orderID)

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return intent.ID, nil
}
