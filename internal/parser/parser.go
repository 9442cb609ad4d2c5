// Package parser extracts an expense amount and description from a
// free-form utterance. It is a heuristic, not natural-language
// understanding: a fixed, ordered list of matchers is tried and the first
// structural match wins.
package parser

import (
	"regexp"
	"strings"
)

// fallbackDescription is substituted when a matched description is empty
// after trimming.
const fallbackDescription = "Expense"

// Result is a successfully extracted expense.
type Result struct {
	AmountCents int64
	Description string
}

const amountGroup = `(\d+(?:[.,]\d{2})?)`

// matchers, in priority order. Each captures exactly two spans; which span
// holds the amount is resolved afterwards (see resolve). No scoring, no
// backtracking across the order. The patterns are unanchored so the
// expense may sit anywhere in the utterance ("yesterday I spent 50 on
// lunch"). The \b after the amount keeps it atomic: the verb-leading
// pattern cannot split trailing digits like "cost 22" into amount and
// description, which would shadow the description-leading pattern.
var matchers = []*regexp.Regexp{
	// Verb-leading: "spent 50 on lunch", "I paid 39,90 for netflix".
	regexp.MustCompile(`(?i)(?:spent|paid|bought|cost)\s*(?:\$\s*)?` + amountGroup + `\b\s*(?:dollars?|bucks?)?\s*(?:(?:on|at|for|in|with|of|to)\s+)?(.+)`),
	// Amount-leading: "50 on lunch", "$22 for the ride".
	regexp.MustCompile(`(?i)(?:\$\s*)?` + amountGroup + `\s*(?:dollars?|bucks?)?\s+(?:on|at|for|in|with|of|to)\s+(.+)`),
	// Description-leading: "uber to work cost 22", "dinner was 80".
	regexp.MustCompile(`(?i)(.+)\s+(?:cost|was)\s+(?:\$\s*)?` + amountGroup),
}

// ParseExpense runs the matchers in order against text. For each structural
// match it resolves which captured span is the amount; the first matcher
// with a numeric resolution wins. Returns false when nothing matches.
func ParseExpense(text string) (Result, bool) {
	for _, re := range matchers {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		if res, ok := resolve(m[1], m[2]); ok {
			return res, true
		}
	}

	return Result{}, false
}

// resolve disambiguates the two captured spans: the first span is tried as
// the amount, and if it does not coerce numerically the second span is
// tried instead, with the other span becoming the description.
func resolve(first, second string) (Result, bool) {
	if cents, ok := parseAmountCents(first); ok {
		return Result{AmountCents: cents, Description: describe(second)}, true
	}

	if cents, ok := parseAmountCents(second); ok {
		return Result{AmountCents: cents, Description: describe(first)}, true
	}

	return Result{}, false
}

func describe(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallbackDescription
	}

	return s
}
