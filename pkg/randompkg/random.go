// Package randompkg provides functionality gor generating random applications common items.
package randompkg

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	alphabet = "abcdefghijklmnopqrstuvwxyz"
	upper    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits   = "0123456789"
)

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// IntBetween generates a random integer in [min, max].
func IntBetween(min, max int) int {
	return min + int(Intn(max-min+1))
}

func fromSet(set string, n int) string {
	var sb strings.Builder

	k := len(set)

	for i := 0; i < n; i++ {
		_ = sb.WriteByte(set[Intn(k)]) // The returned err is always nil.
	}

	return sb.String()
}

// String generates a random lowercase string of length n.
func String(n int) string {
	return fromSet(alphabet, n)
}

// Username generates a random username that passes registration rules.
func Username() string {
	return String(8)
}

// Email generates a random email that passes registration rules.
func Email() string {
	return fmt.Sprintf("%s@mail.com", String(8))
}

// Password generates a random 10 characters password with an upper case letter,
// a lower case letter and a digit.
func Password() string {
	return fromSet(upper, 2) + fromSet(alphabet, 5) + fromSet(digits, 3)
}

// Date generates a random YYYY-MM-DD date between 2019 and 2024.
func Date() string {
	return fmt.Sprintf("%04d-%02d-%02d", IntBetween(2019, 2024), IntBetween(1, 12), IntBetween(1, 28))
}

// Amount generates a random positive money amount with 2 decimals.
func Amount() decimal.Decimal {
	return decimal.New(int64(IntBetween(1, 1_000_000)), -2)
}
