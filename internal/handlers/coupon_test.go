package handlers

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namestrings/internal/models"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestValidateCouponForSubtotalMinimumBoundary(t *testing.T) {
	coupon := models.Coupon{Code: "SAVE10", MinOrderAmount: 1000}
	now := time.Now()

	err := validateCouponForSubtotal(coupon, 999, now)
	require.Error(t, err)

	var minErr couponMinimumError
	require.True(t, errors.As(err, &minErr))
	assert.Equal(t, 1000.0, minErr.Minimum)
	assert.Equal(t, "minimum order amount is 1000", err.Error())

	assert.NoError(t, validateCouponForSubtotal(coupon, 1000, now))
}

func TestValidateCouponForSubtotalExpiry(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	expired := models.Coupon{Code: "OLD", ValidUntil: &past}
	var expErr couponExpiredError
	require.True(t, errors.As(validateCouponForSubtotal(expired, 500, now), &expErr))

	open := models.Coupon{Code: "OPEN", ValidUntil: &future}
	assert.NoError(t, validateCouponForSubtotal(open, 500, now))

	forever := models.Coupon{Code: "FOREVER"}
	assert.NoError(t, validateCouponForSubtotal(forever, 500, now))
}

func TestValidateCouponForSubtotalUsageLimit(t *testing.T) {
	now := time.Now()

	exhausted := models.Coupon{Code: "DONE", UsageLimit: intPtr(5), UsedCount: 5}
	var exhErr couponExhaustedError
	require.True(t, errors.As(validateCouponForSubtotal(exhausted, 500, now), &exhErr))
	assert.Equal(t, "DONE", exhErr.Code)

	remaining := models.Coupon{Code: "LEFT", UsageLimit: intPtr(5), UsedCount: 4}
	assert.NoError(t, validateCouponForSubtotal(remaining, 500, now))

	unlimited := models.Coupon{Code: "UNLTD", UsedCount: 10000}
	assert.NoError(t, validateCouponForSubtotal(unlimited, 500, now))
}

func TestComputeCouponDiscountPercentage(t *testing.T) {
	coupon := models.Coupon{
		Code:          "SAVE20",
		DiscountType:  models.DiscountTypePercentage,
		DiscountValue: 20,
	}

	assert.Equal(t, 200.0, computeCouponDiscount(coupon, 1000))

	coupon.MaxDiscount = floatPtr(500)
	assert.Equal(t, 500.0, computeCouponDiscount(coupon, 5000), "20%% of 5000 is capped at max_discount")
	assert.Equal(t, 200.0, computeCouponDiscount(coupon, 1000), "cap does not apply below it")
}

func TestComputeCouponDiscountFixedClampedToSubtotal(t *testing.T) {
	coupon := models.Coupon{
		Code:          "FLAT200",
		DiscountType:  models.DiscountTypeFixed,
		DiscountValue: 200,
	}

	assert.Equal(t, 200.0, computeCouponDiscount(coupon, 1500))
	assert.Equal(t, 150.0, computeCouponDiscount(coupon, 150), "fixed discount never exceeds the subtotal")
}
