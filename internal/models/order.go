package models

import "time"

const (
	PaymentStatusPending             = "pending"
	PaymentStatusPendingVerification = "pending_verification"
	PaymentStatusPaid                = "paid"
	PaymentStatusRejected            = "rejected"
	PaymentStatusRefunded            = "refunded"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

var paymentStatuses = map[string]struct{}{
	PaymentStatusPending:             {},
	PaymentStatusPendingVerification: {},
	PaymentStatusPaid:                {},
	PaymentStatusRejected:            {},
	PaymentStatusRefunded:            {},
}

var orderStatuses = map[string]struct{}{
	OrderStatusPending:    {},
	OrderStatusConfirmed:  {},
	OrderStatusProcessing: {},
	OrderStatusShipped:    {},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

func IsValidPaymentStatus(s string) bool {
	_, ok := paymentStatuses[s]
	return ok
}

func IsValidOrderStatus(s string) bool {
	_, ok := orderStatuses[s]
	return ok
}

// OrderItem is a snapshot of a product at order time. It is never re-derived
// from the catalog.
type OrderItem struct {
	ProductID     string                 `bson:"product_id" json:"product_id"`
	Name          string                 `bson:"name" json:"name"`
	Price         float64                `bson:"price" json:"price"`
	Quantity      int                    `bson:"quantity" json:"quantity"`
	Image         string                 `bson:"image,omitempty" json:"image,omitempty"`
	Customization map[string]interface{} `bson:"customization" json:"customization"`
}

// ShippingAddress is denormalized onto the order, not a reference.
type ShippingAddress struct {
	FirstName string `bson:"first_name" json:"first_name"`
	LastName  string `bson:"last_name" json:"last_name"`
	Email     string `bson:"email" json:"email"`
	Phone     string `bson:"phone" json:"phone"`
	Address   string `bson:"address" json:"address"`
	Apartment string `bson:"apartment,omitempty" json:"apartment,omitempty"`
	City      string `bson:"city" json:"city"`
	State     string `bson:"state" json:"state"`
	Pincode   string `bson:"pincode" json:"pincode"`
}

// Order defines the persisted order document. Orders are created once with an
// immutable item/address snapshot and afterwards only mutated through status
// transitions. There is no delete path; an order is a permanent record.
type Order struct {
	ID                     string          `bson:"_id" json:"id"`
	OrderNumber            string          `bson:"order_number" json:"order_number"`
	UserID                 *string         `bson:"user_id" json:"user_id"`
	Items                  []OrderItem     `bson:"items" json:"items"`
	ShippingAddress        ShippingAddress `bson:"shipping_address" json:"shipping_address"`
	PaymentMethod          string          `bson:"payment_method" json:"payment_method"`
	PaymentStatus          string          `bson:"payment_status" json:"payment_status"`
	OrderStatus            string          `bson:"order_status" json:"order_status"`
	Subtotal               float64         `bson:"subtotal" json:"subtotal"`
	ShippingCost           float64         `bson:"shipping_cost" json:"shipping_cost"`
	DiscountAmount         float64         `bson:"discount_amount" json:"discount_amount"`
	Total                  float64         `bson:"total" json:"total"`
	CouponCode             *string         `bson:"coupon_code" json:"coupon_code"`
	UTRNumber              string          `bson:"utr_number,omitempty" json:"utr_number,omitempty"`
	PaymentID              string          `bson:"payment_id,omitempty" json:"payment_id,omitempty"`
	TrackingNumber         string          `bson:"tracking_number,omitempty" json:"tracking_number,omitempty"`
	AdminNotes             string          `bson:"admin_notes,omitempty" json:"admin_notes,omitempty"`
	PaymentRejectionReason string          `bson:"payment_rejection_reason,omitempty" json:"payment_rejection_reason,omitempty"`
	PaymentVerifiedBy      string          `bson:"payment_verified_by,omitempty" json:"payment_verified_by,omitempty"`
	PaymentVerifiedAt      *time.Time      `bson:"payment_verified_at,omitempty" json:"payment_verified_at,omitempty"`
	CreatedAt              time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt              time.Time       `bson:"updated_at" json:"updated_at"`
}
