package cartControllers

import (
	"math"
	"testing"

	"github.com/moriswala-burhanuddin/novaworks-api/models"
	"github.com/moriswala-burhanuddin/novaworks-api/pricing"
)

func TestBuildCartViewEmpty(t *testing.T) {
	view := BuildCartView(nil, nil)
	if view.Count != 0 {
		t.Errorf("empty cart count = %d, want 0", view.Count)
	}
	if view.Items == nil {
		t.Error("items must serialize as [], not null")
	}
	if view.Currency != pricing.CurrencyUSD {
		t.Errorf("guest currency = %s, want USD", view.Currency)
	}
	if view.FormattedTotal != "$0" {
		t.Errorf("formatted total = %q, want $0", view.FormattedTotal)
	}
}

func TestBuildCartViewTotals(t *testing.T) {
	items := []models.CartItem{
		{
			Quantity: 3,
			Product:  models.Product{PriceINR: 1000, PriceUSD: 12, DiscountPercentage: 50},
		},
		{
			Quantity: 1,
			Product:  models.Product{PriceINR: 500, PriceUSD: 6, DiscountPercentage: 0},
		},
	}

	view := BuildCartView(items, nil)

	if view.Count != 4 {
		t.Errorf("count = %d, want 4", view.Count)
	}
	// 3×(1000×0.5) + 1×500 = 2000
	if math.Abs(view.TotalINR-2000) > 1e-9 {
		t.Errorf("total INR = %v, want 2000", view.TotalINR)
	}
	// 3×(12×0.5) + 1×6 = 24
	if math.Abs(view.TotalUSD-24) > 1e-9 {
		t.Errorf("total USD = %v, want 24", view.TotalUSD)
	}
	if view.FormattedTotal != "$24" {
		t.Errorf("formatted total = %q, want $24", view.FormattedTotal)
	}
}

func TestBuildCartViewIndianUserSeesINR(t *testing.T) {
	items := []models.CartItem{
		{Quantity: 1, Product: models.Product{PriceINR: 123456, PriceUSD: 1500}},
	}
	user := &models.User{Country: "India"}

	view := BuildCartView(items, user)

	if view.Currency != pricing.CurrencyINR {
		t.Fatalf("currency = %s, want INR", view.Currency)
	}
	if view.FormattedTotal != "₹1,23,456" {
		t.Errorf("formatted total = %q, want ₹1,23,456", view.FormattedTotal)
	}
}

// Live prices win over the add-time snapshot: a discount applied after the
// item entered the cart shows up in the next total.
func TestBuildCartViewIgnoresSnapshotPrice(t *testing.T) {
	items := []models.CartItem{
		{
			Quantity:      2,
			PriceAtAddINR: 1000,
			PriceAtAddUSD: 12,
			Product:       models.Product{PriceINR: 800, PriceUSD: 10, DiscountPercentage: 25},
		},
	}

	view := BuildCartView(items, nil)

	if math.Abs(view.TotalUSD-15) > 1e-9 {
		t.Errorf("total USD = %v, want 15 (live price, not snapshot)", view.TotalUSD)
	}
	if math.Abs(view.TotalINR-1200) > 1e-9 {
		t.Errorf("total INR = %v, want 1200 (live price, not snapshot)", view.TotalINR)
	}
}
