package test

import (
	"time"

	"github.com/google/uuid"

	"github.com/go-petr/money-guard/internal/domain"
	"github.com/go-petr/money-guard/pkg/randompkg"
)

// RandomTransaction returns random expense owned by the given owner.
func RandomTransaction(owner string) domain.Transaction {
	expenses := domain.Categories[:len(domain.Categories)-1]

	return domain.Transaction{
		ID:              uuid.New(),
		Owner:           owner,
		TransactionDate: randompkg.Date(),
		Type:            domain.Expense,
		Category:        expenses[randompkg.IntBetween(0, len(expenses)-1)],
		Comment:         randompkg.String(10),
		Amount:          randompkg.Amount(),
		CreatedAt:       time.Now().Truncate(time.Second).UTC(),
	}
}
