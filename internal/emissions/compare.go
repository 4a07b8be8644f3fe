package emissions

import (
	"math"

	"github.com/limbo/carbontrack/pkg/entity"
)

// RawTotals sums raw logged quantities: km, kWh, meal count, currency, kg.
type RawTotals struct {
	Travel      float64 `json:"travel"`
	Electricity float64 `json:"electricity"`
	Meals       float64 `json:"meals"`
	Shopping    float64 `json:"shopping"`
	Waste       float64 `json:"waste"`
}

func (t RawTotals) Of(c Category) float64 {
	switch c {
	case Travel:
		return t.Travel
	case Electricity:
		return t.Electricity
	case Meals:
		return t.Meals
	case Shopping:
		return t.Shopping
	case Waste:
		return t.Waste
	}
	return 0
}

func SumRaw(records []*entity.ActivityRecord) RawTotals {
	var t RawTotals
	for _, r := range records {
		if r == nil {
			continue
		}
		t.Travel += r.Travel.DistanceKm
		t.Electricity += r.Electricity.Units
		t.Meals += float64(r.Meals.VegCount + r.Meals.NonVegCount)
		t.Shopping += r.Shopping.AmountSpent
		t.Waste += r.Waste.MassKg
	}
	return t
}

type CategoryChange struct {
	Category Category `json:"category"`
	Current  float64  `json:"current"`
	Previous float64  `json:"previous"`
	Diff     float64  `json:"diff"`
	// PercentChange divides by the previous value floored at 1.
	PercentChange float64 `json:"percentChange"`
	// NoBaseline marks a category without previous activity, where
	// PercentChange is only a floored approximation.
	NoBaseline bool `json:"noBaseline"`
	Improved   bool `json:"improved"`
}

type ProgressComparison struct {
	Current       RawTotals        `json:"current"`
	Previous      RawTotals        `json:"previous"`
	Changes       []CategoryChange `json:"changes"`
	Best          Category         `json:"best"`
	Worst         Category         `json:"worst"`
	GreenScore    int              `json:"greenScore"`
	CO2Saved      float64          `json:"co2Saved"`
	ImprovedCount int              `json:"improvedCount"`
}

// CompareMonths compares raw quantities of two periods category by category.
// Empty periods compare as all-zero sums.
func CompareMonths(current, previous []*entity.ActivityRecord, factors *FactorTable) ProgressComparison {
	cur, prev := SumRaw(current), SumRaw(previous)
	pc := ProgressComparison{
		Current:  cur,
		Previous: prev,
		Changes:  make([]CategoryChange, 0, len(Categories)),
	}
	var score float64
	for _, c := range Categories {
		ch := CategoryChange{
			Category:   c,
			Current:    cur.Of(c),
			Previous:   prev.Of(c),
			NoBaseline: prev.Of(c) == 0,
		}
		ch.Diff = ch.Current - ch.Previous
		ch.PercentChange = ch.Diff / math.Max(ch.Previous, 1) * 100
		ch.Improved = ch.Diff <= 0

		weight := greenScoreWeights[c]
		if ch.Improved {
			score += 100 * weight
			pc.ImprovedCount++
		} else {
			score += math.Max(0, 100-ch.PercentChange) * weight
		}
		if ch.Diff < 0 && factors != nil {
			pc.CO2Saved += -ch.Diff * factors.ComparisonFactor(c)
		}
		pc.Changes = append(pc.Changes, ch)
	}
	pc.GreenScore = int(math.Round(score))

	best, worst := pc.Changes[0], pc.Changes[0]
	for _, ch := range pc.Changes[1:] {
		if math.Abs(ch.PercentChange) < math.Abs(best.PercentChange) {
			best = ch
		}
		if math.Abs(ch.PercentChange) > math.Abs(worst.PercentChange) {
			worst = ch
		}
	}
	pc.Best, pc.Worst = best.Category, worst.Category
	return pc
}
