package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	passesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "runner",
		Name:      "passes_total",
		Help:      "Count of account passes by status.",
	}, []string{"status"})
	passDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "runner",
		Name:      "pass_duration_seconds",
		Help:      "Duration of a full pass over all accounts.",
		Buckets:   prometheus.ExponentialBuckets(10, 2, 10),
	}, []string{"status"})
	passAccounts = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "runner",
		Name:      "pass_accounts",
		Help:      "Number of accounts processed in the last pass.",
	})
	accountResultsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "runner",
		Name:      "account_results_total",
		Help:      "Count of per-account results.",
	}, []string{"status"})
)

// Runner tracks the account cycle runner.
type Runner struct{}

// NewRunner constructs the runner metrics collector.
func NewRunner() *Runner {
	return &Runner{}
}

// ObservePass records a finished pass.
func (m *Runner) ObservePass(err error, accounts int, started time.Time) {
	status := statusOf(err)
	passesTotal.WithLabelValues(status).Inc()
	passDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	passAccounts.Set(float64(accounts))
}

// ObserveAccount counts one per-account result.
func (m *Runner) ObserveAccount(status string) {
	accountResultsTotal.WithLabelValues(status).Inc()
}
