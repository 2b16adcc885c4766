package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eligibilityDecisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "eligibility",
		Name:      "decisions_total",
		Help:      "Count of eligibility evaluations by result.",
	}, []string{"result"})

	claimAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "claim",
		Name:      "attempts_total",
		Help:      "Count of build/sign/send attempts by outcome.",
	}, []string{"outcome"})
	claimSubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "claim",
		Name:      "submissions_total",
		Help:      "Count of finished claim submissions by result.",
	}, []string{"result"})
	claimSubmissionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "claim",
		Name:      "submission_duration_seconds",
		Help:      "Duration of claim submissions including confirmation.",
		Buckets:   []float64{1, 5, 15, 30, 60, 120, 300},
	}, []string{"result"})
)

// Eligibility records evaluator decisions.
type Eligibility struct{}

func NewEligibility() *Eligibility { return &Eligibility{} }

// ObserveDecision counts an evaluation as eligible, not_eligible or error.
func (m *Eligibility) ObserveDecision(eligible bool, err error) {
	result := "not_eligible"
	switch {
	case err != nil:
		result = "error"
	case eligible:
		result = "eligible"
	}
	eligibilityDecisionsTotal.WithLabelValues(result).Inc()
}

// Claim records submitter attempts and final results.
type Claim struct{}

func NewClaim() *Claim { return &Claim{} }

// ObserveAttempt counts one build/sign/send attempt by its outcome (success, failed, retry).
func (m *Claim) ObserveAttempt(outcome string) {
	claimAttemptsTotal.WithLabelValues(outcome).Inc()
}

// ObserveSubmission records the end of a Submit call.
func (m *Claim) ObserveSubmission(err error, started time.Time) {
	result := statusOf(err)
	claimSubmissionsTotal.WithLabelValues(result).Inc()
	claimSubmissionDuration.WithLabelValues(result).Observe(time.Since(started).Seconds())
}
