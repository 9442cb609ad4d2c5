// Package category defines the closed set of spending categories and the
// keyword rules that map a free-form description onto one of them.
package category

import "strings"

// Category is one of a fixed, closed set of transaction classifications.
type Category string

const (
	Transport Category = "transport"
	Food      Category = "food"
	Leisure   Category = "leisure"
	Health    Category = "health"
	Education Category = "education"
	Housing   Category = "housing"
	Shopping  Category = "shopping"
	Salary    Category = "salary"
	Freelance Category = "freelance"
	Other     Category = "other"
)

// All lists every member of the category set, expense categories first.
var All = []Category{
	Transport,
	Food,
	Leisure,
	Health,
	Education,
	Housing,
	Shopping,
	Salary,
	Freelance,
	Other,
}

var icons = map[Category]string{
	Transport: "🚗",
	Food:      "🍔",
	Leisure:   "🎮",
	Health:    "💊",
	Education: "📚",
	Housing:   "🏠",
	Shopping:  "🛒",
	Salary:    "💰",
	Freelance: "💼",
	Other:     "📦",
}

// Rule pairs a category with the keywords that select it.
type Rule struct {
	Category Category
	Keywords []string
}

// Rules is the ordered classification table. Evaluation order is the
// priority order: the first category with a keyword hit wins. Salary and
// freelance are income categories and are assigned by callers, never
// matched from a description.
var Rules = []Rule{
	{Transport, []string{"uber", "taxi", "cab", "bus", "metro", "subway", "train", "gas", "fuel", "parking"}},
	{Food, []string{"lunch", "dinner", "breakfast", "restaurant", "coffee", "cafe", "grocer", "market", "pizza", "delivery", "snack"}},
	{Leisure, []string{"netflix", "spotify", "cinema", "movie", "game", "concert", "streaming", "bar"}},
	{Health, []string{"pharmacy", "doctor", "dentist", "hospital", "gym", "medicine"}},
	{Education, []string{"course", "book", "school", "college", "tuition", "class"}},
	{Housing, []string{"rent", "mortgage", "electricity", "water bill", "internet", "utility", "utilities", "bill"}},
	{Shopping, []string{"clothes", "shoes", "store", "shop", "mall", "gift", "amazon"}},
}

// Categorize maps a description to a category by substring containment
// against the rule table, in priority order. Unmatched descriptions fall
// back to Other.
func Categorize(description string) Category {
	lower := strings.ToLower(description)

	for _, rule := range Rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Category
			}
		}
	}

	return Other
}

// Icon returns the display glyph for a category. Unknown categories get
// the Other glyph.
func Icon(c Category) string {
	if icon, ok := icons[c]; ok {
		return icon
	}

	return icons[Other]
}

// Valid reports whether c is a member of the category set.
func Valid(c Category) bool {
	_, ok := icons[c]
	return ok
}
