// Package transactionservice manages business logic layer of transactions.
package transactionservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/money-guard/internal/aggregate"
	"github.com/go-petr/money-guard/internal/domain"
	"github.com/go-petr/money-guard/pkg/errorspkg"
)

var (
	// ErrInvalidDate indicates a transaction date not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("Transaction date must be YYYY-MM-DD")
	// ErrInvalidAmount indicates an amount that is not positive once rounded to cents,
	// or too large to store.
	ErrInvalidAmount = errors.New("Amount must be positive and below 1000000000000")
	// ErrInvalidMonth indicates a month outside 0..12.
	ErrInvalidMonth = errors.New("Month must be between 0 and 12")
)

// Repo provides data access layer interface needed by transaction service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transactionservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error)
	List(ctx context.Context, owner string) ([]domain.Transaction, error)
	Update(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error)
	Delete(ctx context.Context, owner string, id uuid.UUID) error
}

// Service facilitates transaction service layer logic.
type Service struct {
	repo Repo
}

// New returns transaction service struct to manage transaction bussines logic.
func New(tr Repo) *Service {
	return &Service{
		repo: tr,
	}
}

// CreateParams is the user input of a new transaction.
type CreateParams struct {
	TransactionDate string
	Type            string
	Category        string
	Comment         string
	Amount          decimal.Decimal
}

func checkCategory(txType, category string) error {
	if !domain.IsCategory(category) {
		return domain.ErrUnknownCategory
	}

	if (txType == domain.Income) != (category == domain.IncomeCategory) {
		return domain.ErrUnknownCategory
	}

	return nil
}

// maxAmount is the first amount that does not fit numeric(14,2).
var maxAmount = decimal.New(1, 12)

// checked validates arg and returns it as repository params rounded to cents.
func checked(owner string, id uuid.UUID, arg CreateParams) (domain.CreateTransactionParams, error) {
	if _, err := time.Parse(domain.DateLayout, arg.TransactionDate); err != nil {
		return domain.CreateTransactionParams{}, ErrInvalidDate
	}

	amount := arg.Amount.Round(2)
	if !amount.IsPositive() || amount.GreaterThanOrEqual(maxAmount) {
		return domain.CreateTransactionParams{}, ErrInvalidAmount
	}

	if err := checkCategory(arg.Type, arg.Category); err != nil {
		return domain.CreateTransactionParams{}, err
	}

	return domain.CreateTransactionParams{
		ID:              id,
		Owner:           owner,
		TransactionDate: arg.TransactionDate,
		Type:            arg.Type,
		Category:        arg.Category,
		Comment:         arg.Comment,
		Amount:          amount,
	}, nil
}

// Create validates and stores a transaction of the owner.
func (s *Service) Create(ctx context.Context, owner string, arg CreateParams) (domain.Transaction, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Send()
		return domain.Transaction{}, errorspkg.ErrInternal
	}

	params, err := checked(owner, id, arg)
	if err != nil {
		return domain.Transaction{}, err
	}

	return s.repo.Create(ctx, params)
}

// Update validates arg like Create and replaces the owner's transaction id with it.
func (s *Service) Update(ctx context.Context, owner string, id uuid.UUID, arg CreateParams) (domain.Transaction, error) {
	params, err := checked(owner, id, arg)
	if err != nil {
		return domain.Transaction{}, err
	}

	return s.repo.Update(ctx, params)
}

// List returns all transactions of the owner.
func (s *Service) List(ctx context.Context, owner string) ([]domain.Transaction, error) {
	return s.repo.List(ctx, owner)
}

// Delete removes a transaction of the owner.
func (s *Service) Delete(ctx context.Context, owner string, id uuid.UUID) error {
	return s.repo.Delete(ctx, owner, id)
}

// Years returns the distinct years of the owner's transactions sorted ascending.
func (s *Service) Years(ctx context.Context, owner string) ([]string, error) {
	txs, err := s.repo.List(ctx, owner)
	if err != nil {
		return nil, err
	}

	return aggregate.ExtractYears(txs), nil
}

// Summary returns the owner's totals for the year, and the month unless it is 0.
func (s *Service) Summary(ctx context.Context, owner, year string, month int) (aggregate.Summary, error) {
	if month < 0 || month > 12 {
		return aggregate.Summary{}, ErrInvalidMonth
	}

	txs, err := s.repo.List(ctx, owner)
	if err != nil {
		return aggregate.Summary{}, err
	}

	return aggregate.Summarize(txs, year, month), nil
}
