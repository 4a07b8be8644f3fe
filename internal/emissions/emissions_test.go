package emissions_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/limbo/carbontrack/internal/emissions"
	"github.com/limbo/carbontrack/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

func sampleRecord(date string) *entity.ActivityRecord {
	return &entity.ActivityRecord{
		UserID:      "user-1",
		Date:        date,
		Travel:      entity.Travel{Mode: "car", FuelType: "petrol", DistanceKm: 10},
		Electricity: entity.Electricity{Units: 5},
		Meals:       entity.Meals{VegCount: 2, NonVegCount: 1},
		Shopping:    entity.Shopping{AmountSpent: 100},
		Waste:       entity.Waste{MassKg: 2},
	}
}

func assertBreakdown(t *testing.T, expected, actual emissions.Breakdown) {
	t.Helper()
	assert.InDelta(t, expected.Travel, actual.Travel, delta, "travel")
	assert.InDelta(t, expected.Electricity, actual.Electricity, delta, "electricity")
	assert.InDelta(t, expected.Meals, actual.Meals, delta, "meals")
	assert.InDelta(t, expected.Shopping, actual.Shopping, delta, "shopping")
	assert.InDelta(t, expected.Waste, actual.Waste, delta, "waste")
	assert.InDelta(t, expected.Total, actual.Total, delta, "total")
}

func TestComputeBreakdown(t *testing.T) {
	factors := emissions.Canonical()
	testCases := []struct {
		Desc     string
		Record   *entity.ActivityRecord
		Expected emissions.Breakdown
	}{
		{
			Desc:   "reference scenario",
			Record: sampleRecord("2025-03-03"),
			Expected: emissions.Breakdown{
				Travel: 2.4, Electricity: 4.5, Meals: 3.0, Shopping: 3.0, Waste: 2.4, Total: 15.3,
			},
		},
		{
			Desc:     "all zero",
			Record:   &entity.ActivityRecord{UserID: "user-1", Date: "2025-03-03"},
			Expected: emissions.Breakdown{},
		},
		{
			Desc:     "nil record",
			Record:   nil,
			Expected: emissions.Breakdown{},
		},
		{
			Desc: "unknown mode contributes zero",
			Record: &entity.ActivityRecord{
				Travel: entity.Travel{Mode: "rocket", FuelType: "petrol", DistanceKm: 100},
			},
			Expected: emissions.Breakdown{},
		},
		{
			Desc: "car without fuel type contributes zero",
			Record: &entity.ActivityRecord{
				Travel: entity.Travel{Mode: "car", DistanceKm: 100},
			},
			Expected: emissions.Breakdown{},
		},
		{
			Desc: "bus ignores fuel type",
			Record: &entity.ActivityRecord{
				Travel: entity.Travel{Mode: "Bus", FuelType: "diesel", DistanceKm: 100},
			},
			Expected: emissions.Breakdown{Travel: 12, Total: 12},
		},
		{
			Desc: "diesel car",
			Record: &entity.ActivityRecord{
				Travel: entity.Travel{Mode: "car", FuelType: "DIESEL", DistanceKm: 100},
			},
			Expected: emissions.Breakdown{Travel: 27, Total: 27},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assertBreakdown(t, tc.Expected, emissions.ComputeBreakdown(tc.Record, factors))
		})
	}
}

func TestComputeBreakdownIsLinear(t *testing.T) {
	factors := emissions.Canonical()
	rec := sampleRecord("2025-03-03")
	single := emissions.ComputeBreakdown(rec, factors)
	rec.Travel.DistanceKm *= 2
	doubled := emissions.ComputeBreakdown(rec, factors)
	assert.InDelta(t, 2*single.Travel, doubled.Travel, delta)
	assert.InDelta(t, single.Electricity, doubled.Electricity, delta)
}

func TestAggregateMonth(t *testing.T) {
	factors := emissions.Canonical()
	t.Run("empty", func(t *testing.T) {
		agg := emissions.AggregateMonth(nil, factors)
		assertBreakdown(t, emissions.Breakdown{}, agg.Totals)
		assert.Nil(t, agg.TopCategory)
		assert.Len(t, agg.Ranking, len(emissions.Categories))
		assert.Equal(t, 0, agg.Records)
	})
	t.Run("n identical records", func(t *testing.T) {
		const n = 7
		records := make([]*entity.ActivityRecord, 0, n)
		for range n {
			records = append(records, sampleRecord("2025-03-03"))
		}
		single := emissions.ComputeBreakdown(records[0], factors)
		agg := emissions.AggregateMonth(records, factors)
		for _, c := range emissions.Categories {
			assert.InDelta(t, n*single.Of(c), agg.Totals.Of(c), 1e-6, string(c))
		}
		assert.InDelta(t, n*single.Total, agg.Totals.Total, 1e-6)
		assert.Equal(t, n, agg.Records)
	})
	t.Run("nil entries are not counted", func(t *testing.T) {
		records := []*entity.ActivityRecord{sampleRecord("2025-03-03"), nil, sampleRecord("2025-03-04"), nil}
		agg := emissions.AggregateMonth(records, factors)
		assert.Equal(t, 2, agg.Records)
		single := emissions.ComputeBreakdown(records[0], factors)
		assert.InDelta(t, single.Total, emissions.AveragePerDay(agg.Totals.Total, agg.Records, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)), 1e-6)
	})
	t.Run("ranking and top category", func(t *testing.T) {
		agg := emissions.AggregateMonth([]*entity.ActivityRecord{sampleRecord("2025-03-03")}, factors)
		require.NotNil(t, agg.TopCategory)
		assert.Equal(t, emissions.Electricity, *agg.TopCategory)
		// meals and shopping both emit 3.0, meals has precedence
		assert.Equal(t, emissions.Meals, agg.Ranking[1].Category)
		assert.Equal(t, emissions.Shopping, agg.Ranking[2].Category)
		// travel and waste both emit 2.4
		assert.Equal(t, emissions.Travel, agg.Ranking[3].Category)
		assert.Equal(t, emissions.Waste, agg.Ranking[4].Category)
	})
	t.Run("ties resolve to precedence order", func(t *testing.T) {
		ranking := emissions.Rank(emissions.Breakdown{
			Travel: 1, Electricity: 1, Meals: 1, Shopping: 1, Waste: 1, Total: 5,
		})
		for i, c := range emissions.Categories {
			assert.Equal(t, c, ranking[i].Category)
		}
	})
}

func TestTopContributors(t *testing.T) {
	ranking := emissions.Rank(emissions.Breakdown{Travel: 3, Waste: 1, Total: 4})
	assert.Equal(t, []emissions.Category{emissions.Travel, emissions.Waste}, emissions.TopContributors(ranking, 3))
	assert.Equal(t, []emissions.Category{emissions.Travel}, emissions.TopContributors(ranking, 1))
	assert.Empty(t, emissions.TopContributors(emissions.Rank(emissions.Breakdown{}), 3))
}

func TestDailyTrendAndPeak(t *testing.T) {
	factors := emissions.Canonical()
	small := &entity.ActivityRecord{Date: "2025-03-01", Waste: entity.Waste{MassKg: 1}}
	big := sampleRecord("2025-03-02")
	trend := emissions.DailyTrend([]*entity.ActivityRecord{big, small}, factors)
	require.Len(t, trend, 2)
	assert.Equal(t, "2025-03-01", trend[0].Date)
	assert.Equal(t, "2025-03-02", trend[1].Date)

	peak := emissions.PeakDay(trend)
	require.NotNil(t, peak)
	assert.Equal(t, "2025-03-02", peak.Date)

	assert.Nil(t, emissions.PeakDay(nil))
	assert.Nil(t, emissions.PeakDay([]emissions.DailyPoint{{Date: "2025-03-01"}}))
}

func TestAveragePerDay(t *testing.T) {
	feb := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	assert.InDelta(t, 5.0, emissions.AveragePerDay(10, 2, feb), delta)
	assert.InDelta(t, 0.0, emissions.AveragePerDay(0, 0, feb), delta)
	assert.Equal(t, 29, emissions.DaysIn(feb))
	assert.Equal(t, 31, emissions.DaysIn(time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)))
}

func month(records ...*entity.ActivityRecord) []*entity.ActivityRecord {
	return records
}

func TestCompareMonths(t *testing.T) {
	factors := emissions.Canonical()

	t.Run("identical periods", func(t *testing.T) {
		pc := emissions.CompareMonths(month(sampleRecord("2025-03-03")), month(sampleRecord("2025-02-03")), factors)
		for _, ch := range pc.Changes {
			assert.Zero(t, ch.PercentChange, string(ch.Category))
			assert.True(t, ch.Improved)
		}
		assert.Equal(t, 5, pc.ImprovedCount)
		assert.Zero(t, pc.CO2Saved)
		assert.Equal(t, 100, pc.GreenScore)
	})

	t.Run("every category grew", func(t *testing.T) {
		prev := sampleRecord("2025-02-03")
		cur := sampleRecord("2025-03-03")
		cur.Travel.DistanceKm *= 2
		cur.Electricity.Units *= 2
		cur.Meals.VegCount *= 2
		cur.Meals.NonVegCount *= 2
		cur.Shopping.AmountSpent *= 2
		cur.Waste.MassKg *= 2
		pc := emissions.CompareMonths(month(cur), month(prev), factors)
		assert.Equal(t, 0, pc.ImprovedCount)
		assert.Zero(t, pc.CO2Saved)
		assert.Equal(t, 0, pc.GreenScore)
	})

	t.Run("travel reduced from 100 to 80 km", func(t *testing.T) {
		prev := &entity.ActivityRecord{Travel: entity.Travel{DistanceKm: 100}}
		cur := &entity.ActivityRecord{Travel: entity.Travel{DistanceKm: 80}}
		pc := emissions.CompareMonths(month(cur), month(prev), factors)
		travel := pc.Changes[0]
		assert.Equal(t, emissions.Travel, travel.Category)
		assert.InDelta(t, -20.0, travel.Diff, delta)
		assert.InDelta(t, -20.0, travel.PercentChange, delta)
		assert.False(t, travel.NoBaseline)
		assert.Equal(t, 5, pc.ImprovedCount)
		assert.InDelta(t, 20*factors.ComparisonFactor(emissions.Travel), pc.CO2Saved, delta)
		assert.Equal(t, emissions.Travel, pc.Worst)
		assert.Equal(t, emissions.Electricity, pc.Best)
	})

	t.Run("empty periods", func(t *testing.T) {
		pc := emissions.CompareMonths(nil, nil, factors)
		for _, ch := range pc.Changes {
			assert.Zero(t, ch.PercentChange)
			assert.True(t, ch.NoBaseline)
		}
		assert.Equal(t, emissions.Travel, pc.Best)
		assert.Equal(t, emissions.Travel, pc.Worst)
		assert.Equal(t, 100, pc.GreenScore)
	})

	t.Run("no current records against positive previous", func(t *testing.T) {
		pc := emissions.CompareMonths(nil, month(sampleRecord("2025-02-03")), factors)
		for _, ch := range pc.Changes {
			assert.InDelta(t, -100.0, ch.PercentChange, delta, string(ch.Category))
		}
		assert.Equal(t, 5, pc.ImprovedCount)
		expected := 10*0.21 + 5*0.9 + 3*2.0 + 100*0.03 + 2*1.2
		assert.InDelta(t, expected, pc.CO2Saved, 1e-6)
	})

	t.Run("green score weighs partial growth", func(t *testing.T) {
		prev := &entity.ActivityRecord{Travel: entity.Travel{DistanceKm: 100}}
		cur := &entity.ActivityRecord{Travel: entity.Travel{DistanceKm: 110}}
		pc := emissions.CompareMonths(month(cur), month(prev), factors)
		// travel: (100 - 10) * 0.25 = 22.5, others flat: 75
		assert.Equal(t, 98, pc.GreenScore)
		assert.Equal(t, 4, pc.ImprovedCount)
	})

	t.Run("growth without baseline floors denominator", func(t *testing.T) {
		cur := &entity.ActivityRecord{Waste: entity.Waste{MassKg: 5}}
		pc := emissions.CompareMonths(month(cur), nil, factors)
		waste := pc.Changes[4]
		assert.Equal(t, emissions.Waste, waste.Category)
		assert.InDelta(t, 500.0, waste.PercentChange, delta)
		assert.True(t, waste.NoBaseline)
		assert.False(t, waste.Improved)
		assert.Equal(t, 85, pc.GreenScore)
	})
}

func TestInsights(t *testing.T) {
	assert.Contains(t, emissions.Tip(90), "Amazing")
	assert.Contains(t, emissions.Tip(61), "Great job")
	assert.Contains(t, emissions.Tip(41), "Good start")
	assert.Contains(t, emissions.Tip(40), "every small step")

	assert.Equal(t, emissions.NoDataSuggestion, emissions.Suggestion(nil))
	meals := emissions.Meals
	assert.Contains(t, emissions.Suggestion(&meals), "plant-based")
}

func TestParseFactorTable(t *testing.T) {
	t.Run("shipped file matches canonical", func(t *testing.T) {
		ft, err := emissions.LoadFactorTable(filepath.Join("..", "..", "configs", "factors.yaml"))
		require.NoError(t, err)
		assert.Equal(t, emissions.Canonical(), ft)
	})
	t.Run("any fuel alias and case folding", func(t *testing.T) {
		ft, err := emissions.ParseFactorTable([]byte(`
version: test
travel:
  Scooter:
    ANY: 0.07
electricity: 0.5
comparison: {travel: 1, electricity: 1, meals: 1, shopping: 1, waste: 1}
`))
		require.NoError(t, err)
		assert.InDelta(t, 0.07, ft.TravelFactor("scooter", "petrol"), delta)
		assert.InDelta(t, 0.0, ft.TravelFactor("car", "petrol"), delta)
	})
	t.Run("missing comparison factor", func(t *testing.T) {
		_, err := emissions.ParseFactorTable([]byte("version: test\ncomparison: {travel: 1}\n"))
		assert.Error(t, err)
	})
	t.Run("negative factor", func(t *testing.T) {
		_, err := emissions.ParseFactorTable([]byte(`
version: test
waste: -1
comparison: {travel: 1, electricity: 1, meals: 1, shopping: 1, waste: 1}
`))
		assert.Error(t, err)
	})
	t.Run("missing version", func(t *testing.T) {
		_, err := emissions.ParseFactorTable([]byte("comparison: {travel: 1, electricity: 1, meals: 1, shopping: 1, waste: 1}\n"))
		assert.Error(t, err)
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := emissions.LoadFactorTable(filepath.Join(os.TempDir(), "does-not-exist-factors.yaml"))
		assert.Error(t, err)
	})
}
