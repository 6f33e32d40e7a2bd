// Package metrics exposes run counters and stage timings in Prometheus form.
//
// lshsim is a batch tool, so nothing is served over HTTP; a run's registry is
// written once to a node-exporter textfile when configured.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "lshsim"

// Drop kinds used as the "kind" label of RecordsDropped.
const (
	DropMalformedDocument = "malformed_document"
	DropDuplicateDocument = "duplicate_document"
	DropMalformedPair     = "malformed_pair"
	DropDuplicatePair     = "duplicate_pair"
	DropMissingID         = "missing_id"
)

// Metrics wraps a private registry and the standard run collectors.
type Metrics struct {
	registry *prometheus.Registry

	DocumentsProcessed  prometheus.Counter
	GoldPairs           prometheus.Counter
	RecordsDropped      *prometheus.CounterVec
	DegenerateSignature prometheus.Counter
	CandidatePairs      prometheus.Counter
	Outcomes            *prometheus.CounterVec
	StageDuration       *prometheus.HistogramVec
	LastRunTimestamp    prometheus.Gauge
}

// New registers a fresh set of collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{registry: reg}

	m.DocumentsProcessed = m.newCounter(prometheus.CounterOpts{
		Name: "documents_processed_total",
		Help: "Documents normalized, signed and banded.",
	})
	m.GoldPairs = m.newCounter(prometheus.CounterOpts{
		Name: "gold_pairs_total",
		Help: "Labeled pairs evaluated after deduplication.",
	})
	m.RecordsDropped = m.newCounterVec(prometheus.CounterOpts{
		Name: "records_dropped_total",
		Help: "Input records excluded from the run.",
	}, []string{"kind"})
	m.DegenerateSignature = m.newCounter(prometheus.CounterOpts{
		Name: "degenerate_signatures_total",
		Help: "Documents shorter than the shingle size (all-zero signature).",
	})
	m.CandidatePairs = m.newCounter(prometheus.CounterOpts{
		Name: "candidate_pairs_total",
		Help: "Labeled pairs sharing at least one band bucket.",
	})
	m.Outcomes = m.newCounterVec(prometheus.CounterOpts{
		Name: "candidate_outcomes_total",
		Help: "Candidate pairs by gold label outcome.",
	}, []string{"outcome"})
	m.StageDuration = m.newHistogramVec(prometheus.HistogramOpts{
		Name:    "stage_duration_seconds",
		Help:    "Wall time spent per pipeline stage.",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
	}, []string{"stage"})
	m.LastRunTimestamp = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "last_run_timestamp_seconds",
		Help:      "Unix time the last run finished.",
	})
	reg.MustRegister(m.LastRunTimestamp)

	return m
}

func (m *Metrics) newCounter(opts prometheus.CounterOpts) prometheus.Counter {
	opts.Namespace = namespace
	c := prometheus.NewCounter(opts)
	m.registry.MustRegister(c)
	return c
}

func (m *Metrics) newCounterVec(opts prometheus.CounterOpts, labelNames []string) *prometheus.CounterVec {
	opts.Namespace = namespace
	cv := prometheus.NewCounterVec(opts, labelNames)
	m.registry.MustRegister(cv)
	return cv
}

func (m *Metrics) newHistogramVec(opts prometheus.HistogramOpts, labelNames []string) *prometheus.HistogramVec {
	opts.Namespace = namespace
	hv := prometheus.NewHistogramVec(opts, labelNames)
	m.registry.MustRegister(hv)
	return hv
}

// Registry exposes the underlying registry for gathering.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Dropped adds n to the drop counter for kind. Zero is still recorded so the
// series exists in the output.
func (m *Metrics) Dropped(kind string, n int) {
	if m == nil || n < 0 {
		return
	}
	m.RecordsDropped.WithLabelValues(kind).Add(float64(n))
}

// ObserveStage records how long a stage took.
func (m *Metrics) ObserveStage(stage string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.StageDuration.WithLabelValues(stage).Observe(elapsed.Seconds())
}

// Timer returns a func that observes the time since Timer was called.
func (m *Metrics) Timer(stage string) func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		elapsed := time.Since(start)
		m.ObserveStage(stage, elapsed)
		return elapsed
	}
}

// Outcome adds the true/false positive totals of an evaluation.
func (m *Metrics) Outcome(truePositive, falsePositive int) {
	if m == nil {
		return
	}
	m.Outcomes.WithLabelValues("true_positive").Add(float64(truePositive))
	m.Outcomes.WithLabelValues("false_positive").Add(float64(falsePositive))
	m.CandidatePairs.Add(float64(truePositive + falsePositive))
}

// WriteTextfile writes the registry to path in text exposition format. The
// file is replaced atomically so a collector never reads a partial write.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure metrics directory: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
