package handlers

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"namestrings/internal/config"
	"namestrings/internal/mailer"
	"namestrings/internal/models"
)

/* =========================
   MANUAL PAYMENT (UTR)
========================= */

type submitPaymentRequest struct {
	UTRNumber     string `json:"utr_number" binding:"required"`
	PaymentMethod string `json:"payment_method"`
}

// SubmitPayment records a bank-transfer reference on the order and moves it
// to pending_verification. Resubmission overwrites the reference and resets
// the status from any prior state, so a rejected payment can be retried.
func SubmitPayment(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders/:id/submit-payment"
		defer handlePanic(c, route)

		var req submitPaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		update := bson.M{
			"payment_status": models.PaymentStatusPendingVerification,
			"utr_number":     strings.TrimSpace(req.UTRNumber),
			"updated_at":     time.Now(),
		}
		if method := strings.TrimSpace(req.PaymentMethod); method != "" {
			update["payment_method"] = method
		}

		res, err := db.Collection("orders").UpdateOne(ctx,
			bson.M{"_id": c.Param("id")},
			bson.M{"$set": update},
		)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if res.MatchedCount == 0 {
			respondWithError(c, http.StatusNotFound, route, "order not found")
			return
		}

		log.Println("[PAYMENT] [INFO] UTR submitted for order:", c.Param("id"))
		c.JSON(http.StatusOK, gin.H{
			"message":        "payment submitted for verification",
			"payment_status": models.PaymentStatusPendingVerification,
		})
	}
}

/* =========================
   GATEWAY
========================= */

type createGatewayOrderRequest struct {
	Amount   float64 `json:"amount" binding:"required"`
	Currency string  `json:"currency"`
	OrderID  *string `json:"order_id"`
}

// CreateGatewayOrder creates a gateway-side payment intent for an amount.
// The intent id is what the gateway later echoes back for verification.
func CreateGatewayOrder(db *mongo.Database, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /payment/gateway/create-order"
		defer handlePanic(c, route)

		var req createGatewayOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}
		if req.Amount <= 0 {
			respondWithError(c, http.StatusBadRequest, route, "amount must be greater than zero")
			return
		}

		currency := strings.ToUpper(strings.TrimSpace(req.Currency))
		if currency == "" {
			currency = "INR"
		}

		intent := models.PaymentIntent{
			ID:        generateGatewayOrderID(),
			OrderID:   req.OrderID,
			Amount:    req.Amount,
			Currency:  currency,
			Status:    "created",
			CreatedAt: time.Now(),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if _, err := db.Collection("payment_intents").InsertOne(ctx, intent); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Println("[PAYMENT] [INFO] gateway order created:", intent.ID)
		c.JSON(http.StatusOK, gin.H{
			"id":       intent.ID,
			"amount":   intent.Amount,
			"currency": intent.Currency,
			"key_id":   cfg.GatewayKeyID,
		})
	}
}

type verifyGatewayPaymentRequest struct {
	OrderID          string `json:"order_id" binding:"required"`
	GatewayOrderID   string `json:"gateway_order_id" binding:"required"`
	GatewayPaymentID string `json:"gateway_payment_id" binding:"required"`
	Signature        string `json:"signature" binding:"required"`
}

// VerifyGatewayPayment checks the callback signature and, on a match, marks
// the order paid and confirmed. A mismatch changes nothing.
func VerifyGatewayPayment(db *mongo.Database, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /payment/gateway/verify"
		defer handlePanic(c, route)

		var req verifyGatewayPaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		if !verifyGatewaySignature(req.GatewayOrderID, req.GatewayPaymentID, cfg.GatewaySecret, req.Signature) {
			respondWithError(c, http.StatusBadRequest, route, "invalid payment signature")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var order models.Order
		err := db.Collection("orders").FindOne(ctx, bson.M{"_id": req.OrderID}).Decode(&order)
		if err == mongo.ErrNoDocuments {
			respondWithError(c, http.StatusNotFound, route, "order not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		now := time.Now()
		_, err = db.Collection("orders").UpdateOne(ctx,
			bson.M{"_id": order.ID},
			bson.M{"$set": bson.M{
				"payment_status": models.PaymentStatusPaid,
				"order_status":   models.OrderStatusConfirmed,
				"payment_id":     req.GatewayPaymentID,
				"updated_at":     now,
			}},
		)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		order.PaymentStatus = models.PaymentStatusPaid
		order.OrderStatus = models.OrderStatusConfirmed
		order.PaymentID = req.GatewayPaymentID
		mailer.SendPaymentConfirmed(loadSiteSettings(ctx, db), order)

		log.Println("[PAYMENT] [INFO] gateway payment verified for order:", order.ID)
		c.JSON(http.StatusOK, gin.H{
			"message":        "payment verified",
			"payment_status": models.PaymentStatusPaid,
			"order_status":   models.OrderStatusConfirmed,
		})
	}
}

/* =========================
   SIGNATURE HELPERS
========================= */

// gatewaySignature is HMAC-SHA256 over "{gateway_order_id}|{gateway_payment_id}"
// using the shared gateway secret, hex-encoded.
func gatewaySignature(gatewayOrderID, gatewayPaymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(gatewayOrderID + "|" + gatewayPaymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func verifyGatewaySignature(gatewayOrderID, gatewayPaymentID, secret, provided string) bool {
	expected := gatewaySignature(gatewayOrderID, gatewayPaymentID, secret)
	return hmac.Equal([]byte(expected), []byte(strings.TrimSpace(provided)))
}

func generateGatewayOrderID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "order_" + hex.EncodeToString([]byte(time.Now().Format("150405.000")))
	}
	return "order_" + hex.EncodeToString(buf)
}
