package invoices

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the service's Prometheus collectors. A nil *Metrics records
// nothing.
type Metrics struct {
	generated  prometheus.Counter
	itemSource *prometheus.CounterVec
	duration   prometheus.Histogram
	revised    *prometheus.CounterVec
}

// NewMetrics builds the collectors and registers them on reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		generated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "invoice_drafter_generated_total",
			Help: "Total number of invoices generated from prompts",
		}),
		itemSource: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "invoice_drafter_line_item_source_total",
				Help: "Generated invoices by the pattern family that produced their line items",
			},
			[]string{"source"},
		),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "invoice_drafter_generate_duration_seconds",
			Help:    "Time spent extracting an invoice from a prompt",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12), // 100µs to ~200ms
		}),
		revised: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "invoice_drafter_revised_total",
				Help: "Total number of revised records by outcome",
			},
			[]string{"outcome"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.generated, m.itemSource, m.duration, m.revised)
	}
	return m
}

func (m *Metrics) observeGenerate(source string, took time.Duration) {
	if m == nil {
		return
	}
	m.generated.Inc()
	m.itemSource.WithLabelValues(source).Inc()
	m.duration.Observe(took.Seconds())
}

func (m *Metrics) observeRevise(outcome string) {
	if m == nil {
		return
	}
	m.revised.WithLabelValues(outcome).Inc()
}
