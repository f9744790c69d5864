// Package mailer sends customer notifications over SMTP. Every send is
// fire-and-forget: failures are logged and never surfaced to the request
// that triggered them.
package mailer

import (
	"fmt"
	"log"
	"strings"

	gomail "gopkg.in/gomail.v2"

	"namestrings/internal/models"
)

// SendOrderShipped notifies the customer that their order left the warehouse.
func SendOrderShipped(settings models.SiteSettings, order models.Order) {
	body := fmt.Sprintf(
		"Hi %s,\n\nGreat news! Your order %s has been shipped.",
		order.ShippingAddress.FirstName, order.OrderNumber,
	)
	if order.TrackingNumber != "" {
		body += fmt.Sprintf("\n\nTracking number: %s", order.TrackingNumber)
	}
	body += fmt.Sprintf("\n\nThank you for shopping with %s!", settings.SiteName)

	sendAsync(settings, order.ShippingAddress.Email,
		fmt.Sprintf("Your order %s is on its way", order.OrderNumber), body)
}

// SendPaymentConfirmed notifies the customer that payment was received and
// the order is confirmed.
func SendPaymentConfirmed(settings models.SiteSettings, order models.Order) {
	body := fmt.Sprintf(
		"Hi %s,\n\nWe received your payment of %s%.2f for order %s. Your order is confirmed and will be processed shortly.\n\nThank you for shopping with %s!",
		order.ShippingAddress.FirstName, settings.CurrencySymbol, order.Total,
		order.OrderNumber, settings.SiteName,
	)

	sendAsync(settings, order.ShippingAddress.Email,
		fmt.Sprintf("Payment received for order %s", order.OrderNumber), body)
}

func sendAsync(settings models.SiteSettings, to, subject, body string) {
	if !settings.EmailEnabled || strings.TrimSpace(settings.SMTPHost) == "" {
		return
	}
	if strings.TrimSpace(to) == "" {
		return
	}

	from := settings.FromEmail
	if from == "" {
		from = settings.ContactEmail
	}

	go func() {
		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", subject)
		m.SetBody("text/plain", body)

		port := settings.SMTPPort
		if port == 0 {
			port = 587
		}

		d := gomail.NewDialer(settings.SMTPHost, port, settings.SMTPUsername, settings.SMTPPassword)
		if err := d.DialAndSend(m); err != nil {
			log.Println("[MAIL] [ERROR] send failed:", err)
			return
		}
		log.Println("[MAIL] [INFO] sent:", subject)
	}()
}
