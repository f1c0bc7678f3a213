package pricing

import (
	"math"
	"testing"

	"github.com/moriswala-burhanuddin/novaworks-api/models"
)

func TestEffectivePrice(t *testing.T) {
	cases := []struct {
		base     float64
		discount int
		want     float64
	}{
		{1000, 0, 1000},
		{1000, 25, 750},
		{1000, 100, 0},
		{499, 10, 449.1},
		{0, 50, 0},
	}
	for _, c := range cases {
		got := EffectivePrice(c.base, c.discount)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("EffectivePrice(%v, %d) = %v, want %v", c.base, c.discount, got, c.want)
		}
	}
}

func TestCurrencyFor(t *testing.T) {
	if got := CurrencyFor(nil); got != CurrencyUSD {
		t.Errorf("guest currency = %s, want USD", got)
	}
	if got := CurrencyFor(&models.User{Country: "India"}); got != CurrencyINR {
		t.Errorf("India currency = %s, want INR", got)
	}
	if got := CurrencyFor(&models.User{Country: " india "}); got != CurrencyINR {
		t.Errorf("padded india currency = %s, want INR", got)
	}
	if got := CurrencyFor(&models.User{Country: "USA"}); got != CurrencyUSD {
		t.Errorf("USA currency = %s, want USD", got)
	}
	if got := CurrencyFor(&models.User{}); got != CurrencyUSD {
		t.Errorf("empty country currency = %s, want USD", got)
	}
}

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		inr, usd float64
		currency string
		want     string
	}{
		{123456, 1499, CurrencyINR, "₹1,23,456"},
		{123456, 1499, CurrencyUSD, "$1,499"},
		{1234567, 0, CurrencyINR, "₹12,34,567"},
		{0, 1234567.89, CurrencyUSD, "$1,234,567.89"},
		{499.5, 0, CurrencyINR, "₹499.50"},
		{0, 0, CurrencyUSD, "$0"}, // missing price is 0-safe
		{0, 0, CurrencyINR, "₹0"},
		{999, 12, CurrencyUSD, "$12"},
	}
	for _, c := range cases {
		if got := FormatPrice(c.inr, c.usd, c.currency); got != c.want {
			t.Errorf("FormatPrice(%v, %v, %s) = %q, want %q", c.inr, c.usd, c.currency, got, c.want)
		}
	}
}
