package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/go-petr/money-guard/internal/domain"
	"github.com/go-petr/money-guard/pkg/currencypkg"
)

// NormalizeCurrency turns raw rates into the fixed [USD, EUR] quote pair.
//
// Only the first two rates are consulted. A rate carrying a quoted currency code fills
// that currency's slot, a rate without a code fills the slot at its position. Slots
// without a rate keep empty Buy and Sell.
func NormalizeCurrency(rates []domain.Rate) []domain.Quote {
	quotes := make([]domain.Quote, len(currencypkg.Quoted))
	for i, c := range currencypkg.Quoted {
		quotes[i].Currency = c
	}

	if len(rates) > len(quotes) {
		rates = rates[:len(quotes)]
	}

	for i, r := range rates {
		slot := i

		if r.Currency != "" {
			slot = indexOf(r.Currency)
			if slot < 0 {
				continue
			}
		}

		quotes[slot].Buy = roundRate(r.RateBuy)
		quotes[slot].Sell = roundRate(r.RateSell)
	}

	return quotes
}

// ZeroQuotes returns the zero-valued quote pair used when no provider answers.
func ZeroQuotes() []domain.Quote {
	zero := decimal.Zero.StringFixed(2)

	quotes := make([]domain.Quote, len(currencypkg.Quoted))
	for i, c := range currencypkg.Quoted {
		quotes[i] = domain.Quote{Currency: c, Buy: zero, Sell: zero}
	}

	return quotes
}

// Complete reports whether every quote of the pair is available.
func Complete(quotes []domain.Quote) bool {
	if len(quotes) != len(currencypkg.Quoted) {
		return false
	}

	for _, q := range quotes {
		if !q.Available() {
			return false
		}
	}

	return true
}

func indexOf(currency string) int {
	for i, c := range currencypkg.Quoted {
		if c == currency {
			return i
		}
	}

	return -1
}

func roundRate(rate float64) string {
	return decimal.NewFromFloat(rate).StringFixed(2)
}
