package cartControllers

import (
	"github.com/moriswala-burhanuddin/novaworks-api/models"
	"github.com/moriswala-burhanuddin/novaworks-api/pricing"
)

// CartView is what every cart endpoint returns: the full recomputed cart.
// Mutations never answer with a partial patch, so clients cannot drift from
// server truth (discounts and price changes are re-derived on every call).
type CartView struct {
	Items          []models.CartItem `json:"items"`
	Count          int               `json:"count"`
	TotalINR       float64           `json:"total_inr"`
	TotalUSD       float64           `json:"total_usd"`
	Currency       string            `json:"currency"`
	FormattedTotal string            `json:"formatted_total"`
}

// BuildCartView derives count and dual-currency totals from the live
// product prices. user may be nil (guest), which selects USD display.
func BuildCartView(items []models.CartItem, user *models.User) CartView {
	view := CartView{
		Items:    items,
		Currency: pricing.CurrencyFor(user),
	}
	if view.Items == nil {
		view.Items = []models.CartItem{}
	}

	for _, item := range items {
		view.Count += item.Quantity
		qty := float64(item.Quantity)
		view.TotalINR += pricing.EffectivePrice(item.Product.PriceINR, item.Product.DiscountPercentage) * qty
		view.TotalUSD += pricing.EffectivePrice(item.Product.PriceUSD, item.Product.DiscountPercentage) * qty
	}

	view.FormattedTotal = pricing.FormatPrice(view.TotalINR, view.TotalUSD, view.Currency)
	return view
}
