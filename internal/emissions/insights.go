package emissions

// Tip returns the motivational message of a green score band.
func Tip(greenScore int) string {
	switch {
	case greenScore > 80:
		return "Amazing! You're living sustainably. Keep it up"
	case greenScore > 60:
		return "Great job! Small tweaks can push you even higher"
	case greenScore > 40:
		return "Good start! Focus on reducing waste & energy"
	default:
		return "Don't worry, every small step matters. Try improving one habit"
	}
}

var suggestions = map[Category]string{
	Travel:      "Try using public transport, carpooling, or walking for shorter distances.",
	Electricity: "Save electricity by turning off unused devices and using energy-efficient appliances.",
	Meals:       "Reduce non-veg meals and prefer more plant-based meals.",
	Shopping:    "Buy only what's necessary and prefer eco-friendly products.",
	Waste:       "Segregate and recycle waste properly to reduce landfill impact.",
}

// NoDataSuggestion is shown when there is no top contributor to act on.
const NoDataSuggestion = "No emissions logged yet. Add a daily entry to get suggestions."

// Suggestion returns reduction advice for the top category, or the no-data
// message when top is nil.
func Suggestion(top *Category) string {
	if top == nil {
		return NoDataSuggestion
	}
	if s, ok := suggestions[*top]; ok {
		return s
	}
	return NoDataSuggestion
}
