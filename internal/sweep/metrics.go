package sweep

import (
	"github.com/prometheus/client_golang/prometheus"

	"jobmate/placement-service/internal/lifecycle"
)

// Metrics counts sweep outcomes per pass.
type Metrics struct {
	Runs     *prometheus.CounterVec
	Records  *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewMetrics builds the collectors and registers them on reg when reg is not
// nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "placement",
			Subsystem: "sweep",
			Name:      "runs_total",
			Help:      "Completed sweep pass runs",
		}, []string{"pass"}),
		Records: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "placement",
			Subsystem: "sweep",
			Name:      "records_total",
			Help:      "Sweep candidates by outcome",
		}, []string{"pass", "outcome"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "placement",
			Subsystem: "sweep",
			Name:      "duration_seconds",
			Help:      "Sweep pass duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"pass"}),
	}
	if reg != nil {
		reg.MustRegister(m.Runs, m.Records, m.Duration)
	}
	return m
}

// Observe records a finished pass.
func (m *Metrics) Observe(r *lifecycle.Report) {
	if m == nil {
		return
	}
	m.Runs.WithLabelValues(r.Pass).Inc()
	m.Records.WithLabelValues(r.Pass, "applied").Add(float64(r.Applied))
	m.Records.WithLabelValues(r.Pass, "skipped").Add(float64(r.Skipped))
	m.Records.WithLabelValues(r.Pass, "failed").Add(float64(r.Failed))
	m.Duration.WithLabelValues(r.Pass).Observe(r.Duration.Seconds())
}
