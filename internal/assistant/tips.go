package assistant

// tips is the fixed pool of canned savings advice. One entry is chosen
// uniformly at random per request.
var tips = []string{
	"💡 How about picking one day a week to spend nothing? Small savings make a big difference!",
	"💡 Consider packing lunch instead of ordering delivery. You could save up to $500 a month!",
	"💡 Review your monthly subscriptions. We often keep paying for services we no longer use.",
	"💡 Try the 50-30-20 rule: 50% for needs, 30% for wants and 20% for savings.",
}
