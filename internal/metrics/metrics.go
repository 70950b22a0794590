// Package metrics exposes Prometheus instrumentation for intent dispatch
// and pipeline stages.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	intentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parlo_intents_total",
			Help: "Total number of dispatched intents",
		},
		[]string{"intent", "status"},
	)

	stageTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parlo_pipeline_stage_total",
			Help: "Total number of executed pipeline stages",
		},
		[]string{"flow", "stage", "status"},
	)

	stageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "parlo_pipeline_stage_duration_seconds",
			Help:    "Duration of pipeline stages in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		},
		[]string{"flow", "stage"},
	)
)

// Recorder implements the pipeline Observer and records intent outcomes.
type Recorder struct{}

// NewRecorder creates a metrics recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// ObserveStage records one pipeline stage outcome.
func (r *Recorder) ObserveStage(flow, stage, status string, duration time.Duration) {
	stageTotal.WithLabelValues(flow, stage, status).Inc()
	stageDuration.WithLabelValues(flow, stage).Observe(duration.Seconds())
}

// RecordIntent records one intent dispatch outcome.
func (r *Recorder) RecordIntent(intent, status string) {
	intentsTotal.WithLabelValues(intent, status).Inc()
}
