// Package metrics exposes the analyser's Prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blockinsight7000"

// operationVec pairs an outcome counter with a latency histogram. The status
// label is always last.
type operationVec struct {
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newOperationVec(subsystem, subject string, buckets []float64, labels ...string) operationVec {
	labels = append(labels, "status")
	return operationVec{
		total: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "operations_total",
			Help:      "Count of " + subject + " operations.",
		}, labels),
		duration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "operation_duration_seconds",
			Help:      "Duration of " + subject + " operations.",
			Buckets:   buckets,
		}, labels),
	}
}

func (v operationVec) observe(err error, started time.Time, labels ...string) {
	labels = append(labels, statusOf(err))
	v.total.WithLabelValues(labels...).Inc()
	v.duration.WithLabelValues(labels...).Observe(time.Since(started).Seconds())
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func orUnknown(label string) string {
	if label == "" {
		return "unknown"
	}
	return label
}
