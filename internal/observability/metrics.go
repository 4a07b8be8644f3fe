package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "carbontrack"

var (
	recordsSaved = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "daily_input",
		Name:      "records_saved_total",
		Help:      "Activity records written through the daily input endpoint.",
	})
	lastRecordSaved = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "daily_input",
		Name:      "last_record_saved_timestamp_seconds",
		Help:      "Unix timestamp of the most recent stored activity record.",
	})
	reportDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "reports",
		Name:      "build_duration_seconds",
		Help:      "Time spent fetching records and building a report.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"kind", "outcome"})
	reportsSuperseded = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reports",
		Name:      "superseded_total",
		Help:      "Reports discarded because a newer request for the same view arrived.",
	}, []string{"kind"})
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by route pattern, method and status code.",
	}, []string{"route", "method", "status"})
	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route pattern.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})
)

func init() {
	prometheus.MustRegister(
		recordsSaved,
		lastRecordSaved,
		reportDuration,
		reportsSuperseded,
		httpRequests,
		httpDuration,
	)
}

// RecordSaved counts a stored record and moves the watermark.
func RecordSaved(ts time.Time) {
	recordsSaved.Inc()
	if ts.IsZero() {
		return
	}
	lastRecordSaved.Set(float64(ts.Unix()))
}

// ObserveReport records how long building a report of the given kind took.
func ObserveReport(kind string, elapsed time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	reportDuration.WithLabelValues(kind, outcome).Observe(elapsed.Seconds())
}

func ReportSuperseded(kind string) {
	reportsSuperseded.WithLabelValues(kind).Inc()
}

// ObserveHTTP is called once per served request. Route is the router
// pattern, never the raw path, to keep label cardinality bounded.
func ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}
