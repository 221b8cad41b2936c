package persist

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts slot traffic so write amplification is observable.
type Metrics struct {
	Reads          prometheus.Counter
	Writes         prometheus.Counter
	WriteFailures  prometheus.Counter
	DecodeFailures prometheus.Counter
}

// NewMetrics creates the counters and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Reads: f.NewCounter(prometheus.CounterOpts{
			Namespace: "taskboard",
			Name:      "slot_reads_total",
			Help:      "Number of durable slot reads.",
		}),
		Writes: f.NewCounter(prometheus.CounterOpts{
			Namespace: "taskboard",
			Name:      "slot_writes_total",
			Help:      "Number of successful durable slot writes.",
		}),
		WriteFailures: f.NewCounter(prometheus.CounterOpts{
			Namespace: "taskboard",
			Name:      "slot_write_failures_total",
			Help:      "Number of durable slot writes that failed.",
		}),
		DecodeFailures: f.NewCounter(prometheus.CounterOpts{
			Namespace: "taskboard",
			Name:      "slot_decode_failures_total",
			Help:      "Number of stored values that could not be decoded.",
		}),
	}
}
