package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"namestrings/internal/models"
)

type CouponCreateRequest struct {
	Code           string     `json:"code" binding:"required"`
	DiscountType   string     `json:"discount_type"`
	DiscountValue  float64    `json:"discount_value" binding:"required"`
	MinOrderAmount float64    `json:"min_order_amount"`
	MaxDiscount    *float64   `json:"max_discount"`
	UsageLimit     *int       `json:"usage_limit"`
	ValidUntil     *time.Time `json:"valid_until"`
}

func GetAllCoupons(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/coupons"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		findOptions := options.Find().
			SetSort(bson.D{{Key: "created_at", Value: -1}}).
			SetLimit(100)

		cursor, err := db.Collection("coupons").Find(ctx, bson.M{}, findOptions)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		coupons := make([]models.Coupon, 0)
		if err := cursor.All(ctx, &coupons); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		c.JSON(http.StatusOK, coupons)
	}
}

func CreateCoupon(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/coupons"
		defer handlePanic(c, route)

		var req CouponCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		discountType := strings.TrimSpace(req.DiscountType)
		if discountType == "" {
			discountType = models.DiscountTypePercentage
		}
		if !models.IsValidDiscountType(discountType) {
			respondWithError(c, http.StatusBadRequest, route, "invalid discount_type value")
			return
		}
		if req.DiscountValue <= 0 {
			respondWithError(c, http.StatusBadRequest, route, "discount_value must be greater than zero")
			return
		}
		if discountType == models.DiscountTypePercentage && req.DiscountValue > 100 {
			respondWithError(c, http.StatusBadRequest, route, "percentage discount cannot exceed 100")
			return
		}
		if discountType == models.DiscountTypeFixed && req.MaxDiscount != nil {
			respondWithError(c, http.StatusBadRequest, route, "max_discount only applies to percentage coupons")
			return
		}

		now := time.Now()
		coupon := models.Coupon{
			ID:             uuid.NewString(),
			Code:           strings.ToUpper(strings.TrimSpace(req.Code)),
			DiscountType:   discountType,
			DiscountValue:  req.DiscountValue,
			MinOrderAmount: req.MinOrderAmount,
			MaxDiscount:    req.MaxDiscount,
			UsageLimit:     req.UsageLimit,
			UsedCount:      0,
			IsActive:       true,
			ValidFrom:      now,
			ValidUntil:     req.ValidUntil,
			CreatedAt:      now,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if _, err := db.Collection("coupons").InsertOne(ctx, coupon); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				respondWithError(c, http.StatusConflict, route, "coupon code already exists")
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Println("[COUPON] [INFO] coupon created:", coupon.Code)
		c.JSON(http.StatusCreated, coupon)
	}
}

func DeleteCoupon(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /admin/coupons/:id"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("coupons").DeleteOne(ctx, bson.M{"_id": c.Param("id")})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if res.DeletedCount == 0 {
			respondWithError(c, http.StatusNotFound, route, "coupon not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
