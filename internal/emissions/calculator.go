package emissions

import "github.com/limbo/carbontrack/pkg/entity"

// Breakdown is the kg CO2e estimate of one or more activity records.
type Breakdown struct {
	Travel      float64 `json:"travel"`
	Electricity float64 `json:"electricity"`
	Meals       float64 `json:"meals"`
	Shopping    float64 `json:"shopping"`
	Waste       float64 `json:"waste"`
	Total       float64 `json:"total"`
}

// Of returns the value of category c.
func (b Breakdown) Of(c Category) float64 {
	switch c {
	case Travel:
		return b.Travel
	case Electricity:
		return b.Electricity
	case Meals:
		return b.Meals
	case Shopping:
		return b.Shopping
	case Waste:
		return b.Waste
	}
	return 0
}

func (b Breakdown) add(o Breakdown) Breakdown {
	return Breakdown{
		Travel:      b.Travel + o.Travel,
		Electricity: b.Electricity + o.Electricity,
		Meals:       b.Meals + o.Meals,
		Shopping:    b.Shopping + o.Shopping,
		Waste:       b.Waste + o.Waste,
		Total:       b.Total + o.Total,
	}
}

// ComputeBreakdown estimates emissions of a single record. It never fails:
// unknown travel modes or fuel types contribute zero.
func ComputeBreakdown(record *entity.ActivityRecord, factors *FactorTable) Breakdown {
	if record == nil || factors == nil {
		return Breakdown{}
	}
	b := Breakdown{
		Travel:      record.Travel.DistanceKm * factors.TravelFactor(record.Travel.Mode, record.Travel.FuelType),
		Electricity: record.Electricity.Units * factors.Electricity,
		Meals: float64(record.Meals.VegCount)*factors.VegMeal +
			float64(record.Meals.NonVegCount)*factors.NonVegMeal,
		Shopping: record.Shopping.AmountSpent * factors.Shopping,
		Waste:    record.Waste.MassKg * factors.Waste,
	}
	b.Total = b.Travel + b.Electricity + b.Meals + b.Shopping + b.Waste
	return b
}
