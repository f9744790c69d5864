package models

import "time"

const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

// Coupon codes are stored upper-cased; lookups upper-case the input first.
// UsageLimit nil means unlimited. UsedCount only ever increases.
type Coupon struct {
	ID             string     `bson:"_id" json:"id"`
	Code           string     `bson:"code" json:"code"`
	DiscountType   string     `bson:"discount_type" json:"discount_type"`
	DiscountValue  float64    `bson:"discount_value" json:"discount_value"`
	MinOrderAmount float64    `bson:"min_order_amount" json:"min_order_amount"`
	MaxDiscount    *float64   `bson:"max_discount" json:"max_discount"`
	UsageLimit     *int       `bson:"usage_limit" json:"usage_limit"`
	UsedCount      int        `bson:"used_count" json:"used_count"`
	IsActive       bool       `bson:"is_active" json:"is_active"`
	ValidFrom      time.Time  `bson:"valid_from" json:"valid_from"`
	ValidUntil     *time.Time `bson:"valid_until" json:"valid_until"`
	CreatedAt      time.Time  `bson:"created_at" json:"created_at"`
}

func IsValidDiscountType(t string) bool {
	return t == DiscountTypePercentage || t == DiscountTypeFixed
}
