package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	collectorPagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blocktimes",
		Subsystem: "collector",
		Name:      "pages_total",
		Help:      "Count of fetched block pages.",
	}, []string{"status"})

	collectorPageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blocktimes",
		Subsystem: "collector",
		Name:      "page_duration_seconds",
		Help:      "Duration of fetching and indexing one page.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	collectorBlocksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "blocktimes",
		Subsystem: "collector",
		Name:      "blocks_total",
		Help:      "Count of main-chain blocks ingested into the indexes.",
	})

	collectorDuplicatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blocktimes",
		Subsystem: "collector",
		Name:      "duplicates_total",
		Help:      "Count of duplicate-key collisions while indexing.",
	}, []string{"key"})
)

// Collector tracks metrics for the page collection loop.
type Collector struct{}

// NewCollector constructs a metrics collector for the fetch loop.
func NewCollector() *Collector {
	return &Collector{}
}

// ObservePage records one page outcome, its main-chain block count, and
// duration.
func (m Collector) ObservePage(err error, blocks int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	collectorPagesTotal.WithLabelValues(status).Inc()
	collectorPageDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	if err == nil {
		collectorBlocksTotal.Add(float64(blocks))
	}
}

// ObserveDuplicateHeight counts a by-height key collision.
func (m Collector) ObserveDuplicateHeight() {
	collectorDuplicatesTotal.WithLabelValues("height").Inc()
}

// ObserveDuplicateTimestamp counts a by-time key collision.
func (m Collector) ObserveDuplicateTimestamp() {
	collectorDuplicatesTotal.WithLabelValues("timestamp").Inc()
}
