package money

import (
	"fmt"
	"regexp"
	"strings"
)

const DefaultCurrency = "USD"

var currencyRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// ValidCurrency reports whether code is a three-letter uppercase currency code.
func ValidCurrency(code string) bool {
	return currencyRegex.MatchString(code)
}

// NormalizeCurrency uppercases code and falls back to USD when invalid.
func NormalizeCurrency(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !ValidCurrency(code) {
		return DefaultCurrency
	}
	return code
}

// Format renders an amount with two decimals and its currency code,
// e.g. "123.40 USD".
func Format(amount float64, currency string) string {
	return fmt.Sprintf("%.2f %s", amount, NormalizeCurrency(currency))
}

// Percent renders part/whole as a whole-number percentage. A zero whole
// yields 0%.
func Percent(part, whole float64) string {
	if whole <= 0 {
		return "0%"
	}
	return fmt.Sprintf("%.0f%%", part/whole*100)
}
