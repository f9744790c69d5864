package models

import "time"

// SiteSettingsID is the fixed _id of the single settings document.
const SiteSettingsID = "site_settings"

// SiteSettings is the configuration singleton. Handlers load it per request
// and pass the value into the pricing helpers; nothing reads it from a global.
type SiteSettings struct {
	ID                    string     `bson:"_id" json:"id"`
	SiteName              string     `bson:"site_name" json:"site_name"`
	Tagline               string     `bson:"tagline" json:"tagline"`
	TopBarText            string     `bson:"top_bar_text" json:"top_bar_text"`
	Currency              string     `bson:"currency" json:"currency"`
	CurrencySymbol        string     `bson:"currency_symbol" json:"currency_symbol"`
	SaleActive            bool       `bson:"sale_active" json:"sale_active"`
	SaleTitle             string     `bson:"sale_title" json:"sale_title"`
	SaleDiscount          string     `bson:"sale_discount" json:"sale_discount"`
	SaleEndDate           *time.Time `bson:"sale_end_date" json:"sale_end_date"`
	FreeShippingThreshold float64    `bson:"free_shipping_threshold" json:"free_shipping_threshold"`
	ShippingCost          float64    `bson:"shipping_cost" json:"shipping_cost"`
	ContactEmail          string     `bson:"contact_email" json:"contact_email"`
	ContactPhone          string     `bson:"contact_phone" json:"contact_phone"`
	RazorpayEnabled       bool       `bson:"razorpay_enabled" json:"razorpay_enabled"`
	StripeEnabled         bool       `bson:"stripe_enabled" json:"stripe_enabled"`
	UPIEnabled            bool       `bson:"upi_enabled" json:"upi_enabled"`
	CODEnabled            bool       `bson:"cod_enabled" json:"cod_enabled"`
	EmailEnabled          bool       `bson:"email_enabled" json:"email_enabled"`
	SMTPHost              string     `bson:"smtp_host,omitempty" json:"smtp_host,omitempty"`
	SMTPPort              int        `bson:"smtp_port,omitempty" json:"smtp_port,omitempty"`
	SMTPUsername          string     `bson:"smtp_username,omitempty" json:"smtp_username,omitempty"`
	SMTPPassword          string     `bson:"smtp_password,omitempty" json:"-"`
	FromEmail             string     `bson:"from_email,omitempty" json:"from_email,omitempty"`
	UpdatedAt             time.Time  `bson:"updated_at" json:"updated_at"`
}

// DefaultSiteSettings returns the values used when the settings document has
// never been written.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		ID:                    SiteSettingsID,
		SiteName:              "Name Strings",
		Tagline:               "Make it memorable",
		TopBarText:            "India's most loved brand with over 1L+ orders delivered",
		Currency:              "INR",
		CurrencySymbol:        "₹",
		SaleActive:            true,
		SaleTitle:             "VALENTINE SALE",
		SaleDiscount:          "40% OFF",
		FreeShippingThreshold: 1000,
		ShippingCost:          99,
		ContactEmail:          "support@namestrings.in",
		ContactPhone:          "+91 98765 43210",
		RazorpayEnabled:       true,
		StripeEnabled:         true,
		UPIEnabled:            true,
		CODEnabled:            true,
		UpdatedAt:             time.Now(),
	}
}
