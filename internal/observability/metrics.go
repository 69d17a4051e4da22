package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "officeurl",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"node", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "officeurl",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"node", "method", "path", "status"},
	)
	descriptorParses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "officeurl",
			Subsystem: "descriptor",
			Name:      "parses_total",
			Help:      "Descriptor builds and parses by source, connection type and outcome.",
		},
		[]string{"node", "source", "connection_type", "success"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, descriptorParses)
	})
}

func RecordHTTPRequest(node, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(node, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(node, method, path, statusLabel).Observe(duration.Seconds())
}

// RecordDescriptor counts one descriptor build or parse. connectionType is
// empty when the descriptor was rejected.
func RecordDescriptor(node, source, connectionType string, success bool) {
	RegisterMetrics()
	if connectionType == "" {
		connectionType = "unknown"
	}
	descriptorParses.WithLabelValues(node, source, connectionType, strconv.FormatBool(success)).Inc()
}
