// Package currencyservice serves USD and EUR quotes from a chain of rate providers.
package currencyservice

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/go-petr/money-guard/internal/aggregate"
	"github.com/go-petr/money-guard/internal/domain"
)

// ErrIncomplete is reported when a provider answers without both quotes.
var ErrIncomplete = errors.New("incomplete quotes")

// Provider supplies normalized quotes.
//
//go:generate mockgen -source service.go -destination service_mock.go -package currencyservice
type Provider interface {
	Name() string
	Quotes(ctx context.Context) ([]domain.Quote, error)
}

// Service resolves quotes through its providers in order and caches complete results.
type Service struct {
	providers []Provider
	ttl       time.Duration
	timeout   time.Duration
	now       func() time.Time

	group singleflight.Group

	mu       sync.Mutex
	cached   []domain.Quote
	cachedAt time.Time
}

// New returns currency service. A zero ttl disables caching, a zero timeout leaves
// provider calls bound only by the request context.
func New(ttl, timeout time.Duration, providers ...Provider) *Service {
	return &Service{
		providers: providers,
		ttl:       ttl,
		timeout:   timeout,
		now:       time.Now,
	}
}

// Quotes returns the [USD, EUR] pair. It never fails: when no provider yields a
// complete pair the zero-valued default is returned and not cached.
func (s *Service) Quotes(ctx context.Context) []domain.Quote {
	if quotes, ok := s.fromCache(); ok {
		return quotes
	}

	v, _, _ := s.group.Do("quotes", func() (any, error) {
		if quotes, ok := s.fromCache(); ok {
			return quotes, nil
		}

		quotes, ok := s.resolve(context.WithoutCancel(ctx))
		if !ok {
			return aggregate.ZeroQuotes(), nil
		}

		s.store(quotes)

		return quotes, nil
	})

	return clone(v.([]domain.Quote))
}

func (s *Service) resolve(ctx context.Context) ([]domain.Quote, bool) {
	l := zerolog.Ctx(ctx)

	for _, p := range s.providers {
		quotes, err := s.call(ctx, p)
		if err == nil && !aggregate.Complete(quotes) {
			err = ErrIncomplete
		}

		if err != nil {
			l.Warn().Err(err).Str("provider", p.Name()).Msg("currency provider failed")
			continue
		}

		return quotes, true
	}

	l.Error().Msg("no currency provider answered, serving zero quotes")

	return nil, false
}

func (s *Service) call(ctx context.Context, p Provider) ([]domain.Quote, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)

		defer cancel()
	}

	return p.Quotes(ctx)
}

func (s *Service) fromCache() ([]domain.Quote, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached == nil || s.ttl <= 0 || s.now().Sub(s.cachedAt) >= s.ttl {
		return nil, false
	}

	return clone(s.cached), true
}

func (s *Service) store(quotes []domain.Quote) {
	if s.ttl <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cached = clone(quotes)
	s.cachedAt = s.now()
}

func clone(quotes []domain.Quote) []domain.Quote {
	out := make([]domain.Quote, len(quotes))
	copy(out, quotes)

	return out
}
