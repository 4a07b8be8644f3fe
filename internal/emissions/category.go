// Package emissions turns raw activity records into CO2e estimates and folds
// them into monthly aggregates and month-over-month comparisons.
//
// Everything here is pure: no I/O, no shared state, safe for concurrent use.
package emissions

type Category string

const (
	Travel      Category = "travel"
	Electricity Category = "electricity"
	Meals       Category = "meals"
	Shopping    Category = "shopping"
	Waste       Category = "waste"
)

// Categories lists every category in precedence order. Ranking ties and
// best/worst ties resolve to the earlier entry.
var Categories = [...]Category{Travel, Electricity, Meals, Shopping, Waste}

// greenScoreWeights sum to 1.
var greenScoreWeights = map[Category]float64{
	Travel:      0.25,
	Electricity: 0.25,
	Meals:       0.20,
	Shopping:    0.15,
	Waste:       0.15,
}

func (c Category) Valid() bool {
	for _, cat := range Categories {
		if cat == c {
			return true
		}
	}
	return false
}

func (c Category) precedence() int {
	for i, cat := range Categories {
		if cat == c {
			return i
		}
	}
	return len(Categories)
}
