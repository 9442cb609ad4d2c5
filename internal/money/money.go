// Package money formats amounts stored as int64 cents.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Format renders cents as a grouped two-decimal string, e.g. 500000 -> "5,000.00".
func Format(cents int64) string {
	return printer.Sprintf("%.2f", float64(cents)/100.0)
}

// FormatSigned renders cents with an explicit sign prefix for display deltas.
func FormatSigned(cents int64, income bool) string {
	if income {
		return "+ $" + Format(cents)
	}

	return "- $" + Format(cents)
}

// FormatUSD renders cents with a dollar prefix, e.g. 3500 -> "$35.00".
func FormatUSD(cents int64) string {
	if cents < 0 {
		return "-$" + Format(-cents)
	}

	return "$" + Format(cents)
}
