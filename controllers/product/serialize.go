package productcontroller

import (
	"github.com/moriswala-burhanuddin/novaworks-api/models"
	"github.com/moriswala-burhanuddin/novaworks-api/pricing"
)

// ProductView is a catalog serialization: the product plus its effective
// (discounted) prices and a price string formatted for the viewer's
// currency. Same formula at every surface that shows a price.
type ProductView struct {
	models.Product
	EffectivePriceINR float64 `json:"effective_price_inr"`
	EffectivePriceUSD float64 `json:"effective_price_usd"`
	Currency          string  `json:"currency"`
	FormattedPrice    string  `json:"formatted_price"`
}

func NewProductView(p models.Product, user *models.User) ProductView {
	effINR := pricing.EffectivePrice(p.PriceINR, p.DiscountPercentage)
	effUSD := pricing.EffectivePrice(p.PriceUSD, p.DiscountPercentage)
	currency := pricing.CurrencyFor(user)
	return ProductView{
		Product:           p,
		EffectivePriceINR: effINR,
		EffectivePriceUSD: effUSD,
		Currency:          currency,
		FormattedPrice:    pricing.FormatPrice(effINR, effUSD, currency),
	}
}

func NewProductViews(products []models.Product, user *models.User) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, NewProductView(p, user))
	}
	return views
}
