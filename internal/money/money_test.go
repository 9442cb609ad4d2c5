package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/penny/internal/money"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "0.00", money.Format(0))
	assert.Equal(t, "35.00", money.Format(3500))
	assert.Equal(t, "39.90", money.Format(3990))
	assert.Equal(t, "5,000.00", money.Format(500000))
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$50.00", money.FormatUSD(5000))
	assert.Equal(t, "-$50.00", money.FormatUSD(-5000))
}

func TestFormatSigned(t *testing.T) {
	assert.Equal(t, "+ $5,000.00", money.FormatSigned(500000, true))
	assert.Equal(t, "- $22.00", money.FormatSigned(2200, false))
}
