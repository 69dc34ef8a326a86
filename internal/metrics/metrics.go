// Package metrics holds the Prometheus collectors of the bot.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the bot collectors. A nil *Metrics records nothing.
type Metrics struct {
	translations     *prometheus.CounterVec
	upstreamCalls    *prometheus.CounterVec
	upstreamDuration prometheus.Histogram
	cacheLookups     *prometheus.CounterVec
	exerciseOutcomes *prometheus.CounterVec
	updates          *prometheus.CounterVec
}

// New registers the collectors on reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		translations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vocabu_translations_total",
				Help: "Resolved translations by method",
			},
			[]string{"method"},
		),
		upstreamCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vocabu_translator_requests_total",
				Help: "External translator requests by HTTP status",
			},
			[]string{"status"},
		),
		upstreamDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "vocabu_translator_request_duration_seconds",
				Help:    "External translator request duration in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
			},
		),
		cacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vocabu_translation_cache_lookups_total",
				Help: "Translation cache lookups by result",
			},
			[]string{"result"},
		),
		exerciseOutcomes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vocabu_exercise_outcomes_total",
				Help: "Exercise outcomes",
			},
			[]string{"outcome"},
		),
		updates: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vocabu_updates_total",
				Help: "Handled chat updates by kind",
			},
			[]string{"kind"},
		),
	}
}

// Translation counts a resolved translation
func (m *Metrics) Translation(method string) {
	if m == nil {
		return
	}
	if method == "" {
		method = "none"
	}
	m.translations.WithLabelValues(method).Inc()
}

// UpstreamCall records one external translator request. Status 0 means a transport failure.
func (m *Metrics) UpstreamCall(status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.upstreamCalls.WithLabelValues(label).Inc()
	m.upstreamDuration.Observe(elapsed.Seconds())
}

// CacheLookup counts a translation cache hit or miss
func (m *Metrics) CacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

// ExerciseOutcome counts an answered or skipped exercise
func (m *Metrics) ExerciseOutcome(outcome string) {
	if m == nil {
		return
	}
	m.exerciseOutcomes.WithLabelValues(outcome).Inc()
}

// Update counts a handled update, "text" or "callback"
func (m *Metrics) Update(kind string) {
	if m == nil {
		return
	}
	m.updates.WithLabelValues(kind).Inc()
}
