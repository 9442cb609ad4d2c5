package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/penny/internal/parser"
)

func TestParseExpense(t *testing.T) {
	type testCase struct {
		name     string
		text     string
		wantOK   bool
		wantAmt  int64
		wantDesc string
	}

	tests := []testCase{
		{
			name:     "VerbLeading",
			text:     "spent 50 on lunch",
			wantOK:   true,
			wantAmt:  5000,
			wantDesc: "lunch",
		},
		{
			name:     "VerbLeadingWithSubject",
			text:     "I paid 39,90 for netflix",
			wantOK:   true,
			wantAmt:  3990,
			wantDesc: "netflix",
		},
		{
			name:     "VerbLeadingCurrencyWord",
			text:     "bought 15 dollars of coffee",
			wantOK:   true,
			wantAmt:  1500,
			wantDesc: "coffee",
		},
		{
			name:     "VerbLeadingDollarSign",
			text:     "paid $12.50 at the pharmacy",
			wantOK:   true,
			wantAmt:  1250,
			wantDesc: "the pharmacy",
		},
		{
			name:     "AmountLeading",
			text:     "22 on uber",
			wantOK:   true,
			wantAmt:  2200,
			wantDesc: "uber",
		},
		{
			name:     "AmountLeadingDollarSign",
			text:     "$80 for groceries",
			wantOK:   true,
			wantAmt:  8000,
			wantDesc: "groceries",
		},
		{
			name:     "DescriptionLeading",
			text:     "uber to work cost 22",
			wantOK:   true,
			wantAmt:  2200,
			wantDesc: "uber to work",
		},
		{
			name:     "DescriptionLeadingWas",
			text:     "dinner was 80",
			wantOK:   true,
			wantAmt:  8000,
			wantDesc: "dinner",
		},
		{
			name:     "VerbLeadingWithLeadingContext",
			text:     "yesterday I spent 50 on lunch",
			wantOK:   true,
			wantAmt:  5000,
			wantDesc: "lunch",
		},
		{
			name:     "AmountLeadingWithLeadingContext",
			text:     "today 22 on uber",
			wantOK:   true,
			wantAmt:  2200,
			wantDesc: "uber",
		},
		{
			name:     "DescriptionLeadingWithTrailingContext",
			text:     "dinner was 80 yesterday",
			wantOK:   true,
			wantAmt:  8000,
			wantDesc: "dinner",
		},
		{
			name:     "CaseInsensitive",
			text:     "SPENT 50 ON LUNCH",
			wantOK:   true,
			wantAmt:  5000,
			wantDesc: "LUNCH",
		},
		{
			name:     "EmptyDescriptionPlaceholder",
			text:     "spent 50 ",
			wantOK:   true,
			wantAmt:  5000,
			wantDesc: "Expense",
		},
		{
			name:   "NoNumericContent",
			text:   "xyz",
			wantOK: false,
		},
		{
			name:   "QuestionIsNotAnExpense",
			text:   "how much have I spent?",
			wantOK: false,
		},
		{
			name:   "Empty",
			text:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.ParseExpense(tt.text)

			if !tt.wantOK {
				assert.False(t, ok)
				return
			}

			require.True(t, ok)
			assert.Equal(t, tt.wantAmt, got.AmountCents)
			assert.Equal(t, tt.wantDesc, got.Description)
		})
	}
}

func TestParseExpense_SeparatorIndependence(t *testing.T) {
	comma, ok := parser.ParseExpense("spent 12,50 on coffee")
	require.True(t, ok)

	dot, ok := parser.ParseExpense("spent 12.50 on coffee")
	require.True(t, ok)

	assert.Equal(t, comma.AmountCents, dot.AmountCents)
	assert.Equal(t, int64(1250), dot.AmountCents)
}

// A trailing amount after "cost"/"was" must stay atomic: the verb-leading
// matcher may not carve "cost 22" into amount "2" and description "2", so
// the utterance reaches the description-leading matcher intact.
func TestParseExpense_TrailingAmountStaysAtomic(t *testing.T) {
	got, ok := parser.ParseExpense("uber to work cost 22")
	require.True(t, ok)
	assert.Equal(t, int64(2200), got.AmountCents)
	assert.Equal(t, "uber to work", got.Description)

	got, ok = parser.ParseExpense("the new monitor cost 250")
	require.True(t, ok)
	assert.Equal(t, int64(25000), got.AmountCents)
	assert.Equal(t, "the new monitor", got.Description)
}

func TestParseExpense_GroupSwap(t *testing.T) {
	// The description span comes first in the description-leading matcher;
	// it fails numeric coercion and the second span becomes the amount.
	got, ok := parser.ParseExpense("2 sandwiches cost 15")
	require.True(t, ok)
	assert.Equal(t, int64(1500), got.AmountCents)
	assert.Equal(t, "2 sandwiches", got.Description)
}
