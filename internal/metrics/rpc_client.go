package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rpcRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pokt_explorer",
		Subsystem: "rpc_client",
		Name:      "operations_total",
		Help:      "Count of chain RPC operations.",
	}, []string{"operation", "chain", "status"})
	rpcRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "pokt_explorer",
		Subsystem: "rpc_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of chain RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "chain", "status"})
)

// RPCClient tracks metrics for calls to a chain REST (LCD) node.
type RPCClient struct {
	chain string
}

// NewRPCClient constructs a metrics collector for RPC calls.
func NewRPCClient(chain string) *RPCClient {
	if chain == "" {
		chain = "unknown"
	}
	return &RPCClient{chain: chain}
}

// Observe records a single RPC call outcome and duration.
func (m RPCClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	rpcRequestsTotal.WithLabelValues(operation, m.chain, status).Inc()
	rpcRequestDuration.WithLabelValues(operation, m.chain, status).Observe(time.Since(started).Seconds())
}
