package emissions

import (
	"sort"
	"time"

	"github.com/limbo/carbontrack/pkg/entity"
)

type RankedCategory struct {
	Category Category `json:"category"`
	Value    float64  `json:"value"`
}

type MonthlyAggregate struct {
	Totals  Breakdown        `json:"totals"`
	Ranking []RankedCategory `json:"ranking"`
	// TopCategory is nil when every category sums to zero.
	TopCategory *Category `json:"topCategory"`
	Records     int       `json:"records"`
}

// DailyPoint is the breakdown of a single logged day.
type DailyPoint struct {
	Date      string    `json:"date"`
	Breakdown Breakdown `json:"breakdown"`
}

// AggregateMonth sums breakdowns of records per category and ranks the
// categories by emissions, highest first.
func AggregateMonth(records []*entity.ActivityRecord, factors *FactorTable) MonthlyAggregate {
	var totals Breakdown
	logged := 0
	for _, r := range records {
		if r == nil {
			continue
		}
		totals = totals.add(ComputeBreakdown(r, factors))
		logged++
	}
	ranking := Rank(totals)
	agg := MonthlyAggregate{
		Totals:  totals,
		Ranking: ranking,
		Records: logged,
	}
	if ranking[0].Value > 0 {
		top := ranking[0].Category
		agg.TopCategory = &top
	}
	return agg
}

// Rank orders categories of b by value descending. Equal values keep
// category precedence.
func Rank(b Breakdown) []RankedCategory {
	ranking := make([]RankedCategory, 0, len(Categories))
	for _, c := range Categories {
		ranking = append(ranking, RankedCategory{Category: c, Value: b.Of(c)})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		if ranking[i].Value != ranking[j].Value {
			return ranking[i].Value > ranking[j].Value
		}
		return ranking[i].Category.precedence() < ranking[j].Category.precedence()
	})
	return ranking
}

// TopContributors returns up to n leading categories with non-zero emissions.
func TopContributors(ranking []RankedCategory, n int) []Category {
	top := make([]Category, 0, n)
	for _, rc := range ranking {
		if len(top) == n || rc.Value <= 0 {
			break
		}
		top = append(top, rc.Category)
	}
	return top
}

// DailyTrend returns per-day breakdowns ordered by date.
func DailyTrend(records []*entity.ActivityRecord, factors *FactorTable) []DailyPoint {
	trend := make([]DailyPoint, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		trend = append(trend, DailyPoint{Date: r.Date, Breakdown: ComputeBreakdown(r, factors)})
	}
	sort.SliceStable(trend, func(i, j int) bool {
		return trend[i].Date < trend[j].Date
	})
	return trend
}

// PeakDay returns the day with the highest total, nil when nothing was emitted.
func PeakDay(trend []DailyPoint) *DailyPoint {
	var peak *DailyPoint
	for i := range trend {
		if trend[i].Breakdown.Total <= 0 {
			continue
		}
		if peak == nil || trend[i].Breakdown.Total > peak.Breakdown.Total {
			peak = &trend[i]
		}
	}
	return peak
}

// AveragePerDay divides total by the number of logged days, or by the days
// of month when no day was logged.
func AveragePerDay(total float64, loggedDays int, month time.Time) float64 {
	divisor := loggedDays
	if divisor == 0 {
		divisor = DaysIn(month)
	}
	if divisor == 0 {
		return 0
	}
	return total / float64(divisor)
}

// DaysIn reports the number of days of the month containing t.
func DaysIn(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1).Day()
}
