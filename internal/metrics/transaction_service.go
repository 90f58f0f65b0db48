package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	txFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pokt_explorer",
		Subsystem: "transaction_service",
		Name:      "fetch_total",
		Help:      "Count of transaction fetches by source.",
	}, []string{"source", "status"})
	txFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "pokt_explorer",
		Subsystem: "transaction_service",
		Name:      "fetch_duration_seconds",
		Help:      "Duration of transaction fetches by source.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"source", "status"})
	txDecodeFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pokt_explorer",
		Subsystem: "transaction_service",
		Name:      "decode_failures_total",
		Help:      "Count of raw transactions skipped by the RPC fallback.",
	})
)

// Transaction sources.
const (
	SourceIndexer = "indexer"
	SourceRPC     = "rpc"
)

// TransactionService tracks the primary and fallback transaction paths.
type TransactionService struct{}

// NewTransactionService constructs a metrics collector for transaction fetches.
func NewTransactionService() *TransactionService {
	return &TransactionService{}
}

// ObserveFetch records one fetch attempt from source.
func (m TransactionService) ObserveFetch(source string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	txFetchTotal.WithLabelValues(source, status).Inc()
	txFetchDuration.WithLabelValues(source, status).Observe(time.Since(started).Seconds())
}

// ObserveDecodeFailure records a raw transaction that could not be decoded.
func (m TransactionService) ObserveDecodeFailure() {
	txDecodeFailuresTotal.Inc()
}
