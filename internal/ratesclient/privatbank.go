package ratesclient

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/money-guard/internal/aggregate"
	"github.com/go-petr/money-guard/internal/domain"
	"github.com/go-petr/money-guard/pkg/currencypkg"
)

type privatRate struct {
	Ccy     string `json:"ccy"`
	BaseCcy string `json:"base_ccy"`
	Buy     string `json:"buy"`
	Sale    string `json:"sale"`
}

// Privatbank reads the public PrivatBank exchange endpoint.
type Privatbank struct {
	url string
	hc  *http.Client
}

// NewPrivatbank returns a Privatbank provider for url.
func NewPrivatbank(url string, hc *http.Client) *Privatbank {
	return &Privatbank{url: url, hc: hc}
}

// Name identifies the provider in logs.
func (p *Privatbank) Name() string {
	return "privatbank"
}

// Rates returns the quoted currencies' rates against UAH tagged with their codes.
// Entries with unparsable rates are skipped.
func (p *Privatbank) Rates(ctx context.Context) ([]domain.Rate, error) {
	l := zerolog.Ctx(ctx)

	var raw []privatRate
	if err := getJSON(ctx, p.hc, p.url, &raw); err != nil {
		return nil, err
	}

	rates := make([]domain.Rate, 0, len(currencypkg.Quoted))

	for _, want := range currencypkg.Quoted {
		for _, r := range raw {
			if r.Ccy != want || r.BaseCcy != currencypkg.UAH {
				continue
			}

			buy, err := decimal.NewFromString(r.Buy)
			if err != nil {
				l.Warn().Err(err).Str("ccy", r.Ccy).Msg("bad buy rate")
				break
			}

			sale, err := decimal.NewFromString(r.Sale)
			if err != nil {
				l.Warn().Err(err).Str("ccy", r.Ccy).Msg("bad sale rate")
				break
			}

			rates = append(rates, domain.Rate{
				Currency: r.Ccy,
				RateBuy:  buy.InexactFloat64(),
				RateSell: sale.InexactFloat64(),
			})

			break
		}
	}

	return rates, nil
}

// Quotes returns the normalized USD and EUR quotes.
func (p *Privatbank) Quotes(ctx context.Context) ([]domain.Quote, error) {
	rates, err := p.Rates(ctx)
	if err != nil {
		return nil, err
	}

	return aggregate.NormalizeCurrency(rates), nil
}
