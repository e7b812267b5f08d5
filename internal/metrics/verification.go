package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Verification counts verification cases and mismatches per suite. It
// satisfies the verify.Recorder interface.
type Verification struct {
	Checks       *prometheus.CounterVec
	Mismatches   *prometheus.CounterVec
	Duration     *prometheus.HistogramVec
	ActiveSuites prometheus.Gauge
}

// NewVerification creates the verification metrics under namespace.
func NewVerification(namespace string) *Verification {
	return &Verification{
		Checks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checks_total",
			Help:      "Verification cases executed.",
		}, []string{"suite"}),
		Mismatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mismatches_total",
			Help:      "Suites that ended with a failure.",
		}, []string{"suite"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "check_duration_seconds",
			Help:      "Wall time of a suite.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"suite"}),
		ActiveSuites: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_suites",
			Help:      "Suites currently running.",
		}),
	}
}

// Collectors returns all prometheus metrics as collectors for registration.
func (m *Verification) Collectors() []prometheus.Collector {
	if m == nil {
		return nil
	}
	return []prometheus.Collector{
		m.Checks,
		m.Mismatches,
		m.Duration,
		m.ActiveSuites,
	}
}

// SuiteStarted marks a suite as running.
func (m *Verification) SuiteStarted(string) {
	if m == nil {
		return
	}
	m.ActiveSuites.Inc()
}

// SuiteFinished records the outcome of a suite.
func (m *Verification) SuiteFinished(suite string, cases int, d time.Duration, err error) {
	if m == nil {
		return
	}
	m.ActiveSuites.Dec()
	m.Checks.WithLabelValues(suite).Add(float64(cases))
	m.Duration.WithLabelValues(suite).Observe(d.Seconds())
	if err != nil {
		m.Mismatches.WithLabelValues(suite).Inc()
	}
}
