package registration

import "unicode"

const (
	strengthMinLength = 2
	strengthMaxLength = 12
)

var strengthWords = []string{"weak", "weak", "okay", "good", "strong"}

// Strength is an informative password rating from 0 to 4.
type Strength struct {
	Score int    `json:"score"`
	Label string `json:"label"`
}

// MeasureStrength rates a password by its character classes and length.
// Only the first 12 characters count; shorter than 2 characters is "too short".
func MeasureStrength(password string) Strength {
	runes := []rune(password)
	if len(runes) < strengthMinLength {
		return Strength{Score: 0, Label: "too short"}
	}

	if len(runes) > strengthMaxLength {
		runes = runes[:strengthMaxLength]
	}

	var lower, upper, digit, other bool

	for _, r := range runes {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			other = true
		}
	}

	score := -1
	for _, has := range []bool{lower, upper, digit, other} {
		if has {
			score++
		}
	}

	if len(runes) >= 8 {
		score++
	}

	if len(runes) < 6 && score > 1 {
		score = 1
	}

	if score > 4 {
		score = 4
	}

	return Strength{Score: score, Label: strengthWords[score]}
}
