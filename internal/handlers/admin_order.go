package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"namestrings/internal/mailer"
	"namestrings/internal/models"
)

/* =======================
   REQUEST DTOs
======================= */

// OrderUpdateRequest is the allow-list of mutable order fields. Anything not
// named here cannot be touched through the admin endpoint.
type OrderUpdateRequest struct {
	OrderStatus    *string `json:"order_status"`
	PaymentStatus  *string `json:"payment_status"`
	TrackingNumber *string `json:"tracking_number"`
	AdminNotes     *string `json:"admin_notes"`
}

type rejectPaymentRequest struct {
	Reason string `json:"reason" binding:"required"`
}

/* =======================
   HELPERS
======================= */

// buildOrderUpdate validates the allow-listed fields and returns the $set
// document plus whether the update moves the order to shipped. Any declared
// status may be set from any other; there is no terminal lock-out.
func buildOrderUpdate(req OrderUpdateRequest, now time.Time) (bson.M, bool, error) {
	update := bson.M{}
	shipped := false

	if req.OrderStatus != nil {
		status := strings.TrimSpace(*req.OrderStatus)
		if !models.IsValidOrderStatus(status) {
			return nil, false, errors.New("invalid order_status value")
		}
		update["order_status"] = status
		shipped = status == models.OrderStatusShipped
	}

	if req.PaymentStatus != nil {
		status := strings.TrimSpace(*req.PaymentStatus)
		if !models.IsValidPaymentStatus(status) {
			return nil, false, errors.New("invalid payment_status value")
		}
		update["payment_status"] = status
	}

	if req.TrackingNumber != nil {
		update["tracking_number"] = strings.TrimSpace(*req.TrackingNumber)
	}

	if req.AdminNotes != nil {
		update["admin_notes"] = strings.TrimSpace(*req.AdminNotes)
	}

	if len(update) == 0 {
		return nil, false, errors.New("no update fields provided")
	}

	update["updated_at"] = now
	return update, shipped, nil
}

/* =======================
   LIST
======================= */

func GetAdminOrders(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/orders"
		defer handlePanic(c, route)

		limit, skip, err := parsePaginationParams(c.Query("limit"), c.Query("skip"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		filter := bson.M{}
		if status := strings.TrimSpace(c.Query("status")); status != "" {
			filter["order_status"] = status
		}
		if status := strings.TrimSpace(c.Query("payment_status")); status != "" {
			filter["payment_status"] = status
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		total, err := db.Collection("orders").CountDocuments(ctx, filter)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		findOptions := options.Find().
			SetSort(bson.D{{Key: "created_at", Value: -1}}).
			SetSkip(skip).
			SetLimit(limit)

		cursor, err := db.Collection("orders").Find(ctx, filter, findOptions)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		orders := make([]models.Order, 0)
		if err := cursor.All(ctx, &orders); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		c.JSON(http.StatusOK, gin.H{"orders": orders, "total": total})
	}
}

/* =======================
   UPDATE
======================= */

func UpdateOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /admin/orders/:id"
		defer handlePanic(c, route)

		var req OrderUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		update, shipped, err := buildOrderUpdate(req, time.Now())
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var order models.Order
		findErr := db.Collection("orders").FindOne(ctx, bson.M{"_id": c.Param("id")}).Decode(&order)
		if findErr == mongo.ErrNoDocuments {
			respondWithError(c, http.StatusNotFound, route, "order not found")
			return
		}
		if findErr != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		if _, err := db.Collection("orders").UpdateOne(ctx, bson.M{"_id": order.ID}, bson.M{"$set": update}); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		if shipped {
			if tracking, ok := update["tracking_number"].(string); ok {
				order.TrackingNumber = tracking
			}
			mailer.SendOrderShipped(loadSiteSettings(ctx, db), order)
		}

		log.Println("[ORDER] [INFO] order updated:", order.ID)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

/* =======================
   PAYMENT VERIFICATION
======================= */

// ApprovePayment marks the payment paid and the order confirmed in a single
// joint transition, recording who verified and when. There is deliberately no
// guard against approving an already-paid order.
func ApprovePayment(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/orders/:id/approve-payment"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var order models.Order
		err := db.Collection("orders").FindOne(ctx, bson.M{"_id": c.Param("id")}).Decode(&order)
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
				"payment_status":      models.PaymentStatusPaid,
				"order_status":        models.OrderStatusConfirmed,
				"payment_verified_by": c.GetString("userId"),
				"payment_verified_at": now,
				"updated_at":          now,
			}},
		)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		order.PaymentStatus = models.PaymentStatusPaid
		order.OrderStatus = models.OrderStatusConfirmed
		mailer.SendPaymentConfirmed(loadSiteSettings(ctx, db), order)

		log.Println("[PAYMENT] [INFO] payment approved for order:", order.ID)
		c.JSON(http.StatusOK, gin.H{
			"success":        true,
			"payment_status": models.PaymentStatusPaid,
			"order_status":   models.OrderStatusConfirmed,
		})
	}
}

// RejectPayment marks the payment rejected with a reason. The order status is
// left untouched so the customer can resubmit a reference.
func RejectPayment(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/orders/:id/reject-payment"
		defer handlePanic(c, route)

		var req rejectPaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("orders").UpdateOne(ctx,
			bson.M{"_id": c.Param("id")},
			bson.M{"$set": bson.M{
				"payment_status":           models.PaymentStatusRejected,
				"payment_rejection_reason": strings.TrimSpace(req.Reason),
				"updated_at":               time.Now(),
			}},
		)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if res.MatchedCount == 0 {
			respondWithError(c, http.StatusNotFound, route, "order not found")
			return
		}

		log.Println("[PAYMENT] [INFO] payment rejected for order:", c.Param("id"))
		c.JSON(http.StatusOK, gin.H{
			"success":        true,
			"payment_status": models.PaymentStatusRejected,
		})
	}
}
