package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"namestrings/internal/models"
)

// orderLine is one requested cart line before the catalog is consulted. The
// fallback fields are client-supplied and only used when the product lookup
// misses, so a stale cart never hard-fails the whole checkout.
type orderLine struct {
	ProductID     string
	Quantity      int
	Customization map[string]interface{}
	FallbackName  string
	FallbackPrice float64
	FallbackImage string
}

// resolveOrderItems snapshots each line against the catalog and returns the
// items plus the subtotal. A missing product falls back to the client-supplied
// name/price/image; with no fallback the line is kept as a zero-value
// placeholder rather than rejecting the order.
func resolveOrderItems(lines []orderLine, catalog map[string]models.Product) ([]models.OrderItem, float64) {
	items := make([]models.OrderItem, 0, len(lines))
	subtotal := 0.0

	for _, line := range lines {
		item := models.OrderItem{
			ProductID:     line.ProductID,
			Quantity:      line.Quantity,
			Customization: line.Customization,
		}

		if product, ok := catalog[line.ProductID]; ok {
			item.Name = product.Name
			item.Price = product.Price
			item.Image = product.Image
		} else {
			item.Name = strings.TrimSpace(line.FallbackName)
			item.Price = line.FallbackPrice
			item.Image = line.FallbackImage
		}

		subtotal += item.Price * float64(line.Quantity)
		items = append(items, item)
	}

	return items, subtotal
}

// shippingCostFor applies the flat-rate rule: free at or above the threshold,
// otherwise the configured cost. No tiers.
func shippingCostFor(subtotal float64, settings models.SiteSettings) float64 {
	if subtotal >= settings.FreeShippingThreshold {
		return 0
	}
	return settings.ShippingCost
}

func orderTotal(subtotal, shippingCost, discountAmount float64) float64 {
	return subtotal + shippingCost - discountAmount
}

// generateOrderNumber builds the customer-facing number: NS + date stamp +
// random hex suffix. Not the primary key; a unique index still backs it.
func generateOrderNumber(now time.Time) string {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		return "NS" + now.Format("20060102") + strings.ToUpper(hex.EncodeToString([]byte{byte(now.Nanosecond()), byte(now.Second()), byte(now.Minute())}))
	}
	return "NS" + now.Format("20060102") + strings.ToUpper(hex.EncodeToString(buf))
}
