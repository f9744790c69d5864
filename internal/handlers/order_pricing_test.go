package handlers

import (
	"regexp"
	"testing"
	"time"

	"namestrings/internal/models"
)

func settingsWith(threshold, shipping float64) models.SiteSettings {
	s := models.DefaultSiteSettings()
	s.FreeShippingThreshold = threshold
	s.ShippingCost = shipping
	return s
}

func TestResolveOrderItemsSnapshotsCatalogPrice(t *testing.T) {
	catalog := map[string]models.Product{
		"p1": {ID: "p1", Name: "Heart Name Necklace", Price: 1499, Image: "/img/heart.jpg"},
	}
	lines := []orderLine{
		{ProductID: "p1", Quantity: 2, FallbackName: "stale name", FallbackPrice: 1},
	}

	items, subtotal := resolveOrderItems(lines, catalog)

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Name != "Heart Name Necklace" {
		t.Errorf("expected catalog name, got %q", items[0].Name)
	}
	if items[0].Price != 1499 {
		t.Errorf("expected catalog price 1499, got %v", items[0].Price)
	}
	if subtotal != 2998 {
		t.Errorf("expected subtotal 2998, got %v", subtotal)
	}
}

func TestResolveOrderItemsFallsBackOnMissingProduct(t *testing.T) {
	lines := []orderLine{
		{ProductID: "gone", Quantity: 1, FallbackName: "  Retired Ring ", FallbackPrice: 899, FallbackImage: "/img/ring.jpg"},
	}

	items, subtotal := resolveOrderItems(lines, map[string]models.Product{})

	if items[0].Name != "Retired Ring" {
		t.Errorf("expected trimmed fallback name, got %q", items[0].Name)
	}
	if items[0].Price != 899 || subtotal != 899 {
		t.Errorf("expected fallback price 899, got price=%v subtotal=%v", items[0].Price, subtotal)
	}
}

func TestResolveOrderItemsKeepsPlaceholderWithoutFallback(t *testing.T) {
	lines := []orderLine{
		{ProductID: "gone", Quantity: 3},
	}

	items, subtotal := resolveOrderItems(lines, map[string]models.Product{})

	if len(items) != 1 {
		t.Fatalf("expected the line to survive, got %d items", len(items))
	}
	if items[0].Price != 0 || subtotal != 0 {
		t.Errorf("expected zero-value placeholder, got price=%v subtotal=%v", items[0].Price, subtotal)
	}
}

func TestShippingCostFor(t *testing.T) {
	settings := settingsWith(1000, 99)

	tests := []struct {
		name     string
		subtotal float64
		want     float64
	}{
		{"below threshold", 999, 99},
		{"at threshold", 1000, 0},
		{"above threshold", 1300, 0},
		{"empty cart", 0, 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shippingCostFor(tt.subtotal, settings); got != tt.want {
				t.Errorf("shippingCostFor(%v) = %v, want %v", tt.subtotal, got, tt.want)
			}
		})
	}
}

func TestOrderTotalWithCouponAndFreeShipping(t *testing.T) {
	settings := settingsWith(1000, 99)

	subtotal := 1300.0
	shipping := shippingCostFor(subtotal, settings)
	if shipping != 0 {
		t.Fatalf("expected free shipping at 1300, got %v", shipping)
	}

	coupon := models.Coupon{Code: "SAVE10", DiscountType: models.DiscountTypePercentage, DiscountValue: 10}
	discount := computeCouponDiscount(coupon, subtotal)

	if got := orderTotal(subtotal, shipping, discount); got != 1170 {
		t.Errorf("expected total 1170, got %v", got)
	}
}

func TestOrderTotalChargesShippingBelowThreshold(t *testing.T) {
	settings := settingsWith(2000, 99)

	subtotal := 1300.0
	shipping := shippingCostFor(subtotal, settings)

	if got := orderTotal(subtotal, shipping, 0); got != 1399 {
		t.Errorf("expected total 1399, got %v", got)
	}
}

func TestGenerateOrderNumberFormat(t *testing.T) {
	now := time.Date(2025, 2, 14, 10, 30, 0, 0, time.UTC)
	pattern := regexp.MustCompile(`^NS20250214[0-9A-F]{6}$`)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		number := generateOrderNumber(now)
		if !pattern.MatchString(number) {
			t.Fatalf("order number %q does not match expected format", number)
		}
		seen[number] = true
	}

	if len(seen) < 2 {
		t.Error("expected distinct order numbers across calls")
	}
}
