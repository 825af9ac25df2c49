package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blocktimes",
		Subsystem: "api_client",
		Name:      "operations_total",
		Help:      "Count of block explorer API operations.",
	}, []string{"operation", "status"})
	apiRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blocktimes",
		Subsystem: "api_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of block explorer API operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// APIClient tracks metrics for block explorer API calls.
type APIClient struct{}

// NewAPIClient constructs a metrics collector for API calls.
func NewAPIClient() *APIClient {
	return &APIClient{}
}

// Observe records a single API call outcome and duration.
func (m APIClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	apiRequestsTotal.WithLabelValues(operation, status).Inc()
	apiRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
