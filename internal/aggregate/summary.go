package aggregate

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/go-petr/money-guard/internal/domain"
)

// Month is a selectable statistics month.
type Month struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// Months lists the twelve months in calendar order.
var Months = func() []Month {
	months := make([]Month, 0, 12)
	for m := time.January; m <= time.December; m++ {
		months = append(months, Month{Value: int(m), Label: m.String()})
	}

	return months
}()

// colors are chart colors assigned to categories by their position in domain.Categories.
var colors = []string{
	"rgba(254, 208, 87, 1)",
	"rgba(255, 216, 208, 1)",
	"rgba(253, 148, 152, 1)",
	"rgba(197, 186, 255, 1)",
	"rgba(110, 120, 232, 1)",
	"rgba(74, 86, 226, 1)",
	"rgba(129, 225, 255, 1)",
	"rgba(36, 204, 167, 1)",
	"rgba(0, 173, 132, 1)",
	"rgba(197, 186, 255, 1)",
	"rgba(200, 191, 255, 1)",
}

// CategoryTotal is the expense total of one category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Color    string          `json:"color"`
}

// Summary holds income and expense totals of a period.
type Summary struct {
	Year       string          `json:"year"`
	Month      int             `json:"month,omitempty"`
	Income     decimal.Decimal `json:"income"`
	Expense    decimal.Decimal `json:"expense"`
	Categories []CategoryTotal `json:"categories"`
}

// Summarize totals the transactions of year, and of month when month is in 1..12.
// Month 0 selects the whole year. Transactions with unparsable dates are skipped.
func Summarize(transactions []domain.Transaction, year string, month int) Summary {
	s := Summary{
		Year:       year,
		Month:      month,
		Income:     decimal.Zero,
		Expense:    decimal.Zero,
		Categories: make([]CategoryTotal, 0),
	}

	byCategory := make(map[string]decimal.Decimal)

	for _, t := range transactions {
		date, err := time.Parse(domain.DateLayout, t.TransactionDate)
		if err != nil || yearOf(t.TransactionDate) != year {
			continue
		}

		if month != 0 && int(date.Month()) != month {
			continue
		}

		switch t.Type {
		case domain.Income:
			s.Income = s.Income.Add(t.Amount)
		case domain.Expense:
			s.Expense = s.Expense.Add(t.Amount)
			byCategory[t.Category] = byCategory[t.Category].Add(t.Amount)
		}
	}

	for i, c := range domain.Categories {
		total, ok := byCategory[c]
		if !ok {
			continue
		}

		s.Categories = append(s.Categories, CategoryTotal{
			Category: c,
			Total:    total,
			Color:    colors[i%len(colors)],
		})
	}

	return s
}
