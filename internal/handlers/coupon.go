package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"namestrings/internal/models"
)

type couponNotFoundError struct {
	Code string
}

func (e couponNotFoundError) Error() string {
	return "invalid coupon code"
}

type couponExpiredError struct {
	Code string
}

func (e couponExpiredError) Error() string {
	return "coupon has expired"
}

type couponExhaustedError struct {
	Code string
}

func (e couponExhaustedError) Error() string {
	return "coupon usage limit reached"
}

type couponMinimumError struct {
	Code    string
	Minimum float64
}

func (e couponMinimumError) Error() string {
	return fmt.Sprintf("minimum order amount is %g", e.Minimum)
}

// validateCouponForSubtotal checks the coupon against the rules that decide
// eligibility: expiry window, usage limit and minimum order amount. The
// minimum error carries the required amount so the client can render it.
func validateCouponForSubtotal(coupon models.Coupon, subtotal float64, now time.Time) error {
	if coupon.ValidUntil != nil && coupon.ValidUntil.Before(now) {
		return couponExpiredError{Code: coupon.Code}
	}
	if coupon.UsageLimit != nil && coupon.UsedCount >= *coupon.UsageLimit {
		return couponExhaustedError{Code: coupon.Code}
	}
	if subtotal < coupon.MinOrderAmount {
		return couponMinimumError{Code: coupon.Code, Minimum: coupon.MinOrderAmount}
	}
	return nil
}

// computeCouponDiscount returns the discount for an eligible coupon.
// Percentage discounts are clamped to max_discount when set. Fixed discounts
// are clamped to the subtotal so the total can never go negative.
func computeCouponDiscount(coupon models.Coupon, subtotal float64) float64 {
	if coupon.DiscountType == models.DiscountTypePercentage {
		discount := subtotal * (coupon.DiscountValue / 100)
		if coupon.MaxDiscount != nil && discount > *coupon.MaxDiscount {
			discount = *coupon.MaxDiscount
		}
		return discount
	}

	discount := coupon.DiscountValue
	if discount > subtotal {
		discount = subtotal
	}
	return discount
}

// findCoupon looks up an active coupon by upper-cased code.
func findCoupon(ctx context.Context, db *mongo.Database, code string) (models.Coupon, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))

	var coupon models.Coupon
	err := db.Collection("coupons").FindOne(ctx, bson.M{
		"code":      normalized,
		"is_active": true,
	}).Decode(&coupon)
	if err == mongo.ErrNoDocuments {
		return models.Coupon{}, couponNotFoundError{Code: normalized}
	}
	if err != nil {
		return models.Coupon{}, err
	}
	return coupon, nil
}

// redeemCoupon counts one use with a single conditional update: the increment
// only matches while used_count is below usage_limit (or no limit is set).
// Two racing orders on a nearly exhausted coupon cannot both get through.
func redeemCoupon(ctx context.Context, db *mongo.Database, coupon models.Coupon) error {
	filter := bson.M{
		"_id": coupon.ID,
		"$or": []bson.M{
			{"usage_limit": nil},
			{"$expr": bson.M{"$lt": []interface{}{"$used_count", "$usage_limit"}}},
		},
	}

	res, err := db.Collection("coupons").UpdateOne(ctx, filter, bson.M{
		"$inc": bson.M{"used_count": 1},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return couponExhaustedError{Code: coupon.Code}
	}
	return nil
}

type validateCouponRequest struct {
	Code     string  `json:"code" binding:"required"`
	Subtotal float64 `json:"subtotal" binding:"required"`
}

// ValidateCoupon previews the discount for a code and subtotal. It never
// increments usage; only order creation does.
func ValidateCoupon(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /coupons/validate"
		defer handlePanic(c, route)

		var req validateCouponRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		coupon, err := findCoupon(ctx, db, req.Code)
		if err != nil {
			var notFound couponNotFoundError
			if errors.As(err, &notFound) {
				respondWithError(c, http.StatusNotFound, route, notFound.Error())
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		if err := validateCouponForSubtotal(coupon, req.Subtotal, time.Now()); err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		discount := computeCouponDiscount(coupon, req.Subtotal)
		log.Printf("[COUPON] [INFO] validated %s discount=%.2f", coupon.Code, discount)
		c.JSON(http.StatusOK, gin.H{
			"valid":    true,
			"discount": discount,
			"code":     coupon.Code,
		})
	}
}
