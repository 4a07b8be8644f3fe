package observability_test

import (
	"errors"
	"testing"
	"time"

	"github.com/limbo/carbontrack/internal/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
	metrics:
		for _, m := range f.GetMetric() {
			for _, lp := range m.GetLabel() {
				if v, ok := labels[lp.GetName()]; ok && v != lp.GetValue() {
					continue metrics
				}
			}
			if m.GetCounter() != nil {
				return m.GetCounter().GetValue()
			}
			if m.GetHistogram() != nil {
				return float64(m.GetHistogram().GetSampleCount())
			}
		}
	}
	return 0
}

func TestMetricsExported(t *testing.T) {
	before := counterValue(t, "carbontrack_daily_input_records_saved_total", nil)
	observability.RecordSaved(time.Now())
	observability.RecordSaved(time.Time{})
	assert.Equal(t, before+2, counterValue(t, "carbontrack_daily_input_records_saved_total", nil))

	observability.ReportSuperseded("progress")
	assert.Equal(t, 1.0, counterValue(t, "carbontrack_reports_superseded_total", map[string]string{"kind": "progress"}))

	observability.ObserveReport("monthly", time.Millisecond, nil)
	observability.ObserveReport("monthly", time.Millisecond, errors.New("db down"))
	assert.Equal(t, 1.0, counterValue(t, "carbontrack_reports_build_duration_seconds", map[string]string{"kind": "monthly", "outcome": "error"}))

	observability.ObserveHTTP("", "GET", 404, time.Millisecond)
	assert.Equal(t, 1.0, counterValue(t, "carbontrack_http_requests_total", map[string]string{"route": "unmatched", "status": "404"}))
}
