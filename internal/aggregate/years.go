// Package aggregate derives display-ready data from raw transactions and bank rates.
//
// Every function here is pure and safe for concurrent use.
package aggregate

import (
	"sort"

	"github.com/go-petr/money-guard/internal/domain"
)

const yearLen = 4

func yearOf(date string) string {
	if len(date) < yearLen {
		return date
	}

	return date[:yearLen]
}

// ExtractYears returns the distinct years of the transactions sorted ascending.
//
// The year is the first four characters of TransactionDate. Sorting is lexicographic,
// which equals numeric order for four digit years.
func ExtractYears(transactions []domain.Transaction) []string {
	years := make([]string, 0)
	seen := make(map[string]struct{})

	for _, t := range transactions {
		y := yearOf(t.TransactionDate)
		if _, ok := seen[y]; ok {
			continue
		}

		seen[y] = struct{}{}
		years = append(years, y)
	}

	sort.Strings(years)

	return years
}
