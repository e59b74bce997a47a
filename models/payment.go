package models

import "time"

const (
	PaymentStatusUnpaid   = "Unpaid"
	PaymentStatusPaid     = "Paid"
	PaymentStatusRefunded = "Refunded"
)

// Payment is the payment row attached to an order. Card payments carry the
// Stripe PaymentIntent ID; cash payments stay Unpaid until pickup.
type Payment struct {
	ID             string    `bson:"id" json:"id"`
	OrderID        string    `bson:"order_id" json:"orderId"`
	Method         string    `bson:"method" json:"method"` // "card" or "cash"
	Status         string    `bson:"status" json:"status"`
	Amount         float64   `bson:"amount" json:"amount"`
	Currency       string    `bson:"currency" json:"currency"`
	StripeIntentID string    `bson:"stripe_intent_id,omitempty" json:"stripeIntentId,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updatedAt"`
}
