// Package currencypkg provides common currency related functionality for apps.
package currencypkg

// Constants for all supported currencies.
const (
	USD = "USD"
	EUR = "EUR"
	UAH = "UAH"
)

// Quoted holds the currencies quoted against UAH, in display order.
var Quoted = []string{
	USD,
	EUR,
}

var isoNumeric = map[int]string{
	840: USD,
	978: EUR,
	980: UAH,
}

// FromISONumeric returns the alphabetic code for an ISO 4217 numeric code.
func FromISONumeric(code int) (string, bool) {
	c, ok := isoNumeric[code]
	return c, ok
}

// IsQuoted returns true if the currency is quoted by the currency widget.
func IsQuoted(currency string) bool {
	for _, c := range Quoted {
		if c == currency {
			return true
		}
	}

	return false
}
