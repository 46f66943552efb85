// Package metrics exposes prometheus instrumentation for scoring and test generation.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/SAP-F-2025/workdna-service/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the service
type Metrics struct {
	// Submission metrics
	Submissions     *prometheus.CounterVec
	SubmissionScore *prometheus.HistogramVec
	TraitScores     *prometheus.HistogramVec
	TimeBehaviors   *prometheus.CounterVec
	SkippedAnswers  *prometheus.CounterVec

	// HR metrics
	TestsGenerated *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with all metrics registered
func NewMetrics(registry prometheus.Registerer) *Metrics {
	factory := promauto.With(registry)
	scoreBuckets := prometheus.LinearBuckets(0, 10, 11)

	return &Metrics{
		Submissions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "workdna_submissions_total",
				Help: "Total number of scored assessment submissions",
			},
			[]string{"job", "passed", "source"},
		),
		SubmissionScore: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "workdna_submission_total_score",
				Help:    "Normalized total score of scored submissions",
				Buckets: scoreBuckets,
			},
			[]string{"job"},
		),
		TraitScores: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "workdna_trait_score",
				Help:    "Normalized per-trait score of scored submissions",
				Buckets: scoreBuckets,
			},
			[]string{"trait"},
		),
		TimeBehaviors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "workdna_answer_time_behavior_total",
				Help: "Scored answers by response time classification",
			},
			[]string{"behavior"},
		),
		SkippedAnswers: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "workdna_skipped_answers_total",
				Help: "Answers excluded from scoring",
			},
			[]string{"job"},
		),
		TestsGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "workdna_tests_generated_total",
				Help: "Total number of generated test keys",
			},
			[]string{"role"},
		),
	}
}

// NewRegistry creates a new Prometheus registry with metrics
func NewRegistry() (*prometheus.Registry, *Metrics) {
	reg := prometheus.NewRegistry()
	return reg, NewMetrics(reg)
}

// HandlerFor returns an HTTP handler for a specific registry
func HandlerFor(reg prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// RecordSubmission observes a scored report. answered is how many answers the
// candidate sent; anything not in the detailed results was skipped.
func (m *Metrics) RecordSubmission(report *models.ScoreReport, source string, answered int) {
	if m == nil || report == nil {
		return
	}

	job := report.JobTitle
	m.Submissions.WithLabelValues(job, strconv.FormatBool(report.Passed), source).Inc()
	m.SubmissionScore.WithLabelValues(job).Observe(float64(report.TotalScore))

	for trait, score := range report.SkillScores {
		m.TraitScores.WithLabelValues(string(trait)).Observe(float64(score))
	}

	summary := report.BehavioralSummary
	m.TimeBehaviors.WithLabelValues("too_fast").Add(float64(summary.FastResponses))
	m.TimeBehaviors.WithLabelValues("too_slow").Add(float64(summary.SlowResponses))
	m.TimeBehaviors.WithLabelValues("optimal").Add(float64(summary.OptimalResponses))

	if skipped := answered - len(report.DetailedResults); skipped > 0 {
		m.SkippedAnswers.WithLabelValues(job).Add(float64(skipped))
	}
}

func (m *Metrics) RecordTestGenerated(role string) {
	if m == nil {
		return
	}
	m.TestsGenerated.WithLabelValues(role).Inc()
}
