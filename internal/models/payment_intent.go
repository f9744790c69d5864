package models

import "time"

// PaymentIntent records a gateway-side payment order created before the
// client is redirected to the gateway checkout.
type PaymentIntent struct {
	ID        string    `bson:"_id" json:"id"`
	OrderID   *string   `bson:"order_id" json:"order_id"`
	Amount    float64   `bson:"amount" json:"amount"`
	Currency  string    `bson:"currency" json:"currency"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
