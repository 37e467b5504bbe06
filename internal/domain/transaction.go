package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrTransactionNotFound indicates the transaction does not exist for the owner.
	ErrTransactionNotFound = errors.New("Transaction not found")
	// ErrUnknownCategory indicates the category is not one of Categories.
	ErrUnknownCategory = errors.New("Unknown category")
)

// Transaction types.
const (
	Income  = "INCOME"
	Expense = "EXPENSE"
)

// DateLayout is the layout of Transaction.TransactionDate.
const DateLayout = "2006-01-02"

// Transaction is a single income or expense record.
type Transaction struct {
	ID              uuid.UUID       `json:"id"`
	Owner           string          `json:"owner"`
	TransactionDate string          `json:"transactionDate"`
	Type            string          `json:"type"`
	Category        string          `json:"category"`
	Comment         string          `json:"comment"`
	Amount          decimal.Decimal `json:"amount"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// CreateTransactionParams holds data needed for Transaction creation.
type CreateTransactionParams struct {
	ID              uuid.UUID
	Owner           string
	TransactionDate string
	Type            string
	Category        string
	Comment         string
	Amount          decimal.Decimal
}

// IncomeCategory is the only category allowed for INCOME transactions.
const IncomeCategory = "Income"

// Categories lists the expense categories followed by IncomeCategory.
var Categories = []string{
	"Main expenses",
	"Products",
	"Car",
	"Self care",
	"Child care",
	"Household products",
	"Education",
	"Leisure",
	"Other expenses",
	"Entertainment",
	IncomeCategory,
}

// IsCategory reports whether c is a known category.
func IsCategory(c string) bool {
	for _, cat := range Categories {
		if cat == c {
			return true
		}
	}

	return false
}
