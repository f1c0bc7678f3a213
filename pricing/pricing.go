package pricing

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/moriswala-burhanuddin/novaworks-api/models"
)

const (
	CurrencyINR = "INR"
	CurrencyUSD = "USD"
)

// EffectivePrice applies the storefront discount rule. Every call site that
// shows or charges a price goes through this function so the formula cannot
// drift between cart, checkout and catalog views.
func EffectivePrice(base float64, discountPercentage int) float64 {
	return base * (1 - float64(discountPercentage)/100)
}

// CurrencyFor derives the display currency from the user's country field.
// Guests (nil user) always get USD.
func CurrencyFor(user *models.User) string {
	if user == nil {
		return CurrencyUSD
	}
	if strings.EqualFold(strings.TrimSpace(user.Country), "india") {
		return CurrencyINR
	}
	return CurrencyUSD
}

func Symbol(currency string) string {
	if currency == CurrencyINR {
		return "₹"
	}
	return "$"
}

// FormatPrice picks the INR or USD amount for the given currency and renders
// it with the currency symbol and locale-grouped digits (lakh/crore grouping
// for INR, thousands for USD). A missing price formats as 0, never panics.
func FormatPrice(priceINR, priceUSD float64, currency string) string {
	amount := priceUSD
	if currency == CurrencyINR {
		amount = priceINR
	}

	cents := int64(math.Round(amount * 100))
	whole := cents / 100
	frac := cents % 100

	out := Symbol(currency) + groupDigits(strconv.FormatInt(whole, 10), currency)
	if frac != 0 {
		out += fmt.Sprintf(".%02d", frac)
	}
	return out
}

func groupDigits(digits, currency string) string {
	if len(digits) <= 3 {
		return digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var parts []string

	if currency == CurrencyINR {
		// Indian system: rightmost group of 3, then groups of 2
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
	} else {
		for len(head) > 3 {
			parts = append([]string{head[len(head)-3:]}, parts...)
			head = head[:len(head)-3]
		}
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	parts = append(parts, tail)
	return strings.Join(parts, ",")
}
