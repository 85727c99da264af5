package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all pipeline metrics
type Registry struct {
	// Device matching
	MatchesTotal *prometheus.CounterVec
	MatchScore   prometheus.Histogram

	// Recommendations
	RecommendationRuns      prometheus.Counter
	RecommendationsEmitted  prometheus.Histogram
	RecommendationTruncated prometheus.Counter

	// Narrative resolution
	NarrativeSourceTotal *prometheus.CounterVec

	// Document builds
	DocumentBuildsTotal   *prometheus.CounterVec
	DocumentBuildDuration prometheus.Histogram

	// Export
	ExportAttemptsTotal *prometheus.CounterVec
	ExportRetriesTotal  prometheus.Counter

	registry *prometheus.Registry
}

// NewRegistry creates an isolated metrics registry. Instances are explicit
// and disposable so tests never share collector state.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}

	r.MatchesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "compliance_device_matches_total",
			Help: "Device-type match attempts by outcome",
		},
		[]string{"outcome"},
	)
	r.MatchScore = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "compliance_device_match_score",
			Help:    "Normalized device-type match scores",
			Buckets: []float64{0.1, 0.2, 0.3, 0.5, 0.7, 0.9, 1.0},
		},
	)

	r.RecommendationRuns = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "compliance_recommendation_runs_total",
			Help: "Recommendation engine invocations",
		},
	)
	r.RecommendationsEmitted = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "compliance_recommendations_emitted",
			Help:    "Recommendations emitted per run (post-truncation)",
			Buckets: []float64{0, 1, 2, 5, 10},
		},
	)
	r.RecommendationTruncated = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "compliance_recommendations_truncated_total",
			Help: "Runs whose candidate set exceeded the output cap",
		},
	)

	r.NarrativeSourceTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "compliance_narrative_source_total",
			Help: "Narrative resolutions by winning source tier",
		},
		[]string{"source"},
	)

	r.DocumentBuildsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "compliance_document_builds_total",
			Help: "SSP document builds by status",
		},
		[]string{"status"},
	)
	r.DocumentBuildDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "compliance_document_build_duration_seconds",
			Help:    "SSP document build duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
	)

	r.ExportAttemptsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "compliance_export_attempts_total",
			Help: "Export attempts by outcome",
		},
		[]string{"outcome"},
	)
	r.ExportRetriesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "compliance_export_retries_total",
			Help: "Export attempts beyond the first",
		},
	)

	return r
}

// Gatherer exposes the underlying registry for scraping
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// RecordMatch records one device-type match outcome
func (r *Registry) RecordMatch(matched bool, score float64) {
	outcome := "matched"
	if !matched {
		outcome = "unmatched"
	}
	r.MatchesTotal.WithLabelValues(outcome).Inc()
	r.MatchScore.Observe(score)
}

// RecordRecommendationRun records one engine run
func (r *Registry) RecordRecommendationRun(emitted int, truncated bool) {
	r.RecommendationRuns.Inc()
	r.RecommendationsEmitted.Observe(float64(emitted))
	if truncated {
		r.RecommendationTruncated.Inc()
	}
}

// RecordNarrativeSource records which tier won a control's resolution
func (r *Registry) RecordNarrativeSource(source string) {
	r.NarrativeSourceTotal.WithLabelValues(source).Inc()
}

// RecordDocumentBuild records one build with its duration
func (r *Registry) RecordDocumentBuild(status string, duration time.Duration) {
	r.DocumentBuildsTotal.WithLabelValues(status).Inc()
	r.DocumentBuildDuration.Observe(duration.Seconds())
}

// RecordExportAttempt records one export attempt
func (r *Registry) RecordExportAttempt(outcome string, isRetry bool) {
	r.ExportAttemptsTotal.WithLabelValues(outcome).Inc()
	if isRetry {
		r.ExportRetriesTotal.Inc()
	}
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// Default returns the shared process-wide registry
func Default() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}
