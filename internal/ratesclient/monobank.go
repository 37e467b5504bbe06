package ratesclient

import (
	"context"
	"net/http"

	"github.com/go-petr/money-guard/internal/aggregate"
	"github.com/go-petr/money-guard/internal/domain"
	"github.com/go-petr/money-guard/pkg/currencypkg"
)

type monoRate struct {
	CurrencyCodeA int     `json:"currencyCodeA"`
	CurrencyCodeB int     `json:"currencyCodeB"`
	Date          int64   `json:"date"`
	RateBuy       float64 `json:"rateBuy"`
	RateSell      float64 `json:"rateSell"`
	RateCross     float64 `json:"rateCross"`
}

// Monobank reads the public Monobank currency endpoint.
type Monobank struct {
	url string
	hc  *http.Client
}

// NewMonobank returns a Monobank provider for url.
func NewMonobank(url string, hc *http.Client) *Monobank {
	return &Monobank{url: url, hc: hc}
}

// Name identifies the provider in logs.
func (m *Monobank) Name() string {
	return "monobank"
}

// Rates returns the USD and EUR rates against UAH tagged with their codes.
func (m *Monobank) Rates(ctx context.Context) ([]domain.Rate, error) {
	var raw []monoRate
	if err := getJSON(ctx, m.hc, m.url, &raw); err != nil {
		return nil, err
	}

	rates := make([]domain.Rate, 0, len(currencypkg.Quoted))

	for _, want := range currencypkg.Quoted {
		for _, r := range raw {
			a, _ := currencypkg.FromISONumeric(r.CurrencyCodeA)
			b, _ := currencypkg.FromISONumeric(r.CurrencyCodeB)

			if a == want && b == currencypkg.UAH && r.RateBuy > 0 && r.RateSell > 0 {
				rates = append(rates, domain.Rate{Currency: a, RateBuy: r.RateBuy, RateSell: r.RateSell})
				break
			}
		}
	}

	return rates, nil
}

// Quotes returns the normalized USD and EUR quotes.
func (m *Monobank) Quotes(ctx context.Context) ([]domain.Quote, error) {
	rates, err := m.Rates(ctx)
	if err != nil {
		return nil, err
	}

	return aggregate.NormalizeCurrency(rates), nil
}
