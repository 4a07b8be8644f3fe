package service

import (
	"context"
	"errors"
	"time"

	errorvalues "github.com/limbo/carbontrack/internal/error_values"
	"github.com/limbo/carbontrack/internal/emissions"
	"github.com/limbo/carbontrack/internal/observability"
	"github.com/limbo/carbontrack/internal/repository"
	"github.com/limbo/carbontrack/pkg/entity"
	"golang.org/x/sync/errgroup"
)

const (
	reportDaily    = "daily"
	reportMonthly  = "monthly"
	reportProgress = "progress"

	topContributorsCount = 3
)

type DailyReport struct {
	UserID string `json:"userId"`
	Date   string `json:"date"`
	// Logged is false when no record exists for the date; the breakdown is
	// then all zeros.
	Logged          bool                 `json:"logged"`
	Breakdown       emissions.Breakdown  `json:"breakdown"`
	TopContributors []emissions.Category `json:"topContributors"`
	Suggestion      string               `json:"suggestion"`
	FactorsVersion  string               `json:"factorsVersion"`
}

type MonthlyReport struct {
	UserID          string                     `json:"userId"`
	Month           string                     `json:"month"`
	Aggregate       emissions.MonthlyAggregate `json:"aggregate"`
	Trend           []emissions.DailyPoint     `json:"trend"`
	AveragePerDay   float64                    `json:"averagePerDay"`
	PeakDay         *emissions.DailyPoint      `json:"peakDay"`
	TopContributors []emissions.Category       `json:"topContributors"`
	Suggestion      string                     `json:"suggestion"`
	FactorsVersion  string                     `json:"factorsVersion"`
}

type ProgressReport struct {
	UserID         string                       `json:"userId"`
	Month          string                       `json:"month"`
	PreviousMonth  string                       `json:"previousMonth"`
	Comparison     emissions.ProgressComparison `json:"comparison"`
	Tip            string                       `json:"tip"`
	FactorsVersion string                       `json:"factorsVersion"`
}

type ReportService struct {
	repo     repository.ActivityRecordsRepositoryI
	factors  *emissions.FactorTable
	inflight *inflight
}

// NewReportService builds reports with factors, or with the canonical table
// when factors is nil.
func NewReportService(repo repository.ActivityRecordsRepositoryI, factors *emissions.FactorTable) *ReportService {
	if factors == nil {
		factors = emissions.Canonical()
	}
	return &ReportService{
		repo:     repo,
		factors:  factors,
		inflight: newInflight(),
	}
}

func (rs *ReportService) Factors() *emissions.FactorTable {
	return rs.factors
}

func (rs *ReportService) DailySummary(ctx context.Context, userID, date string) (report *DailyReport, err error) {
	if userID == "" {
		return nil, errorvalues.ErrValidation
	}
	day, err := ParseDate(date)
	if err != nil {
		return nil, err
	}
	defer rs.observe(reportDaily, time.Now(), &err)
	ctx, t := rs.inflight.begin(ctx, reportKey(ctx, userID, reportDaily))
	defer rs.inflight.finish(t)

	record, err := rs.repo.GetByUserAndDate(ctx, userID, day)
	logged := true
	if err != nil {
		if !errors.Is(err, errorvalues.ErrRecordNotFound) {
			return nil, rs.fetchError(reportDaily, t, err)
		}
		logged = false
		record = &entity.ActivityRecord{UserID: userID, Date: day.Format(entity.DateLayout)}
	}
	breakdown := emissions.ComputeBreakdown(record, rs.factors)
	top := emissions.TopContributors(emissions.Rank(breakdown), topContributorsCount)
	report = &DailyReport{
		UserID:          userID,
		Date:            day.Format(entity.DateLayout),
		Logged:          logged,
		Breakdown:       breakdown,
		TopContributors: top,
		Suggestion:      suggestionFor(top),
		FactorsVersion:  rs.factors.Version,
	}
	if !rs.inflight.current(t) {
		return nil, rs.superseded(reportDaily)
	}
	return report, nil
}

func (rs *ReportService) MonthlySummary(ctx context.Context, userID, month string) (report *MonthlyReport, err error) {
	if userID == "" {
		return nil, errorvalues.ErrValidation
	}
	from, err := ParseMonth(month)
	if err != nil {
		return nil, err
	}
	defer rs.observe(reportMonthly, time.Now(), &err)
	ctx, t := rs.inflight.begin(ctx, reportKey(ctx, userID, reportMonthly))
	defer rs.inflight.finish(t)

	records, err := rs.repo.GetByUserAndDateRange(ctx, userID, from, from.AddDate(0, 1, 0))
	if err != nil {
		return nil, rs.fetchError(reportMonthly, t, err)
	}
	agg := emissions.AggregateMonth(records, rs.factors)
	trend := emissions.DailyTrend(records, rs.factors)
	top := emissions.TopContributors(agg.Ranking, topContributorsCount)
	report = &MonthlyReport{
		UserID:          userID,
		Month:           from.Format(entity.MonthLayout),
		Aggregate:       agg,
		Trend:           trend,
		AveragePerDay:   emissions.AveragePerDay(agg.Totals.Total, agg.Records, from),
		PeakDay:         emissions.PeakDay(trend),
		TopContributors: top,
		Suggestion:      emissions.Suggestion(agg.TopCategory),
		FactorsVersion:  rs.factors.Version,
	}
	if !rs.inflight.current(t) {
		return nil, rs.superseded(reportMonthly)
	}
	return report, nil
}

func (rs *ReportService) Progress(ctx context.Context, userID, month string) (report *ProgressReport, err error) {
	if userID == "" {
		return nil, errorvalues.ErrValidation
	}
	from, err := ParseMonth(month)
	if err != nil {
		return nil, err
	}
	defer rs.observe(reportProgress, time.Now(), &err)
	ctx, t := rs.inflight.begin(ctx, reportKey(ctx, userID, reportProgress))
	defer rs.inflight.finish(t)

	prevFrom := from.AddDate(0, -1, 0)
	var current, previous []*entity.ActivityRecord
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = rs.repo.GetByUserAndDateRange(gctx, userID, from, from.AddDate(0, 1, 0))
		return err
	})
	g.Go(func() error {
		var err error
		previous, err = rs.repo.GetByUserAndDateRange(gctx, userID, prevFrom, from)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, rs.fetchError(reportProgress, t, err)
	}
	cmp := emissions.CompareMonths(current, previous, rs.factors)
	report = &ProgressReport{
		UserID:         userID,
		Month:          from.Format(entity.MonthLayout),
		PreviousMonth:  prevFrom.Format(entity.MonthLayout),
		Comparison:     cmp,
		Tip:            emissions.Tip(cmp.GreenScore),
		FactorsVersion: rs.factors.Version,
	}
	if !rs.inflight.current(t) {
		return nil, rs.superseded(reportProgress)
	}
	return report, nil
}

// fetchError turns a failed fetch into ErrReportSuperseded when a newer
// request cancelled it, and into the retryable ErrRecordsUnavailable otherwise.
func (rs *ReportService) fetchError(kind string, t ticket, err error) error {
	if !rs.inflight.current(t) {
		return rs.superseded(kind)
	}
	return errors.Join(errorvalues.ErrRecordsUnavailable, err)
}

func (rs *ReportService) superseded(kind string) error {
	observability.ReportSuperseded(kind)
	return errorvalues.ErrReportSuperseded
}

func (rs *ReportService) observe(kind string, start time.Time, err *error) {
	observability.ObserveReport(kind, time.Since(start), *err)
}

// reportKey is empty for requests without a view id, which are never
// superseded.
func reportKey(ctx context.Context, userID, kind string) string {
	view := ViewIDFromContext(ctx)
	if view == "" {
		return ""
	}
	return userID + "|" + kind + "|" + view
}

func suggestionFor(top []emissions.Category) string {
	if len(top) == 0 {
		return emissions.Suggestion(nil)
	}
	return emissions.Suggestion(&top[0])
}
