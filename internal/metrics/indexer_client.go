package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	indexerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pokt_explorer",
		Subsystem: "indexer_client",
		Name:      "operations_total",
		Help:      "Count of indexer REST operations.",
	}, []string{"operation", "method", "status"})
	indexerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "pokt_explorer",
		Subsystem: "indexer_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of indexer REST operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "method", "status"})
	indexerSharedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pokt_explorer",
		Subsystem: "indexer_client",
		Name:      "inflight_shared_total",
		Help:      "Count of calls answered by an identical in-flight request.",
	}, []string{"operation"})
)

// IndexerClient tracks metrics for calls to the indexer REST API.
type IndexerClient struct{}

// NewIndexerClient constructs a metrics collector for indexer calls.
func NewIndexerClient() *IndexerClient {
	return &IndexerClient{}
}

// Observe records a single request outcome and duration.
func (m IndexerClient) Observe(operation, method string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	if method == "" {
		method = "unknown"
	}

	indexerRequestsTotal.WithLabelValues(operation, method, status).Inc()
	indexerRequestDuration.WithLabelValues(operation, method, status).Observe(time.Since(started).Seconds())
}

// ObserveShared records a call that joined an in-flight request.
func (m IndexerClient) ObserveShared(operation string) {
	indexerSharedTotal.WithLabelValues(operation).Inc()
}
