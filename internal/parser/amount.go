package parser

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmountCents parses a numeric literal into cents. The decimal
// separator may be a comma or a dot; both normalize to the same value.
// Format examples: "50" -> 5000, "39,90" -> 3990, "39.90" -> 3990.
func parseAmountCents(s string) (int64, bool) {
	clean := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if clean == "" {
		return 0, false
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, false
	}

	cents := d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if cents <= 0 {
		return 0, false
	}

	return cents, true
}
