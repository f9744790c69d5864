package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"namestrings/internal/models"
)

// SettingsUpdateRequest is the allow-list of mutable settings fields,
// replacing the arbitrary-document merge the console used to send.
type SettingsUpdateRequest struct {
	SiteName              *string    `json:"site_name"`
	Tagline               *string    `json:"tagline"`
	TopBarText            *string    `json:"top_bar_text"`
	Currency              *string    `json:"currency"`
	CurrencySymbol        *string    `json:"currency_symbol"`
	SaleActive            *bool      `json:"sale_active"`
	SaleTitle             *string    `json:"sale_title"`
	SaleDiscount          *string    `json:"sale_discount"`
	SaleEndDate           *time.Time `json:"sale_end_date"`
	FreeShippingThreshold *float64   `json:"free_shipping_threshold"`
	ShippingCost          *float64   `json:"shipping_cost"`
	ContactEmail          *string    `json:"contact_email"`
	ContactPhone          *string    `json:"contact_phone"`
	RazorpayEnabled       *bool      `json:"razorpay_enabled"`
	StripeEnabled         *bool      `json:"stripe_enabled"`
	UPIEnabled            *bool      `json:"upi_enabled"`
	CODEnabled            *bool      `json:"cod_enabled"`
	EmailEnabled          *bool      `json:"email_enabled"`
	SMTPHost              *string    `json:"smtp_host"`
	SMTPPort              *int       `json:"smtp_port"`
	SMTPUsername          *string    `json:"smtp_username"`
	SMTPPassword          *string    `json:"smtp_password"`
	FromEmail             *string    `json:"from_email"`
}

func buildSettingsUpdate(req SettingsUpdateRequest, now time.Time) bson.M {
	update := bson.M{}

	setString := func(key string, value *string) {
		if value != nil {
			update[key] = strings.TrimSpace(*value)
		}
	}
	setBool := func(key string, value *bool) {
		if value != nil {
			update[key] = *value
		}
	}
	setFloat := func(key string, value *float64) {
		if value != nil {
			update[key] = *value
		}
	}

	setString("site_name", req.SiteName)
	setString("tagline", req.Tagline)
	setString("top_bar_text", req.TopBarText)
	setString("currency", req.Currency)
	setString("currency_symbol", req.CurrencySymbol)
	setBool("sale_active", req.SaleActive)
	setString("sale_title", req.SaleTitle)
	setString("sale_discount", req.SaleDiscount)
	if req.SaleEndDate != nil {
		update["sale_end_date"] = *req.SaleEndDate
	}
	setFloat("free_shipping_threshold", req.FreeShippingThreshold)
	setFloat("shipping_cost", req.ShippingCost)
	setString("contact_email", req.ContactEmail)
	setString("contact_phone", req.ContactPhone)
	setBool("razorpay_enabled", req.RazorpayEnabled)
	setBool("stripe_enabled", req.StripeEnabled)
	setBool("upi_enabled", req.UPIEnabled)
	setBool("cod_enabled", req.CODEnabled)
	setBool("email_enabled", req.EmailEnabled)
	setString("smtp_host", req.SMTPHost)
	if req.SMTPPort != nil {
		update["smtp_port"] = *req.SMTPPort
	}
	setString("smtp_username", req.SMTPUsername)
	setString("smtp_password", req.SMTPPassword)
	setString("from_email", req.FromEmail)

	if len(update) > 0 {
		update["updated_at"] = now
	}
	return update
}

func GetAdminSettings(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /admin/settings"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		c.JSON(http.StatusOK, loadSiteSettings(ctx, db))
	}
}

func UpdateSettings(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /admin/settings"
		defer handlePanic(c, route)

		var req SettingsUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		update := buildSettingsUpdate(req, time.Now())
		if len(update) == 0 {
			respondWithError(c, http.StatusBadRequest, route, "no update fields provided")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		_, err := db.Collection("settings").UpdateOne(ctx,
			bson.M{"_id": models.SiteSettingsID},
			bson.M{"$set": update},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Println("[SETTINGS] [INFO] settings updated")
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
