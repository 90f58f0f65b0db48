package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pokt_explorer",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Count of served API requests.",
	}, []string{"route", "code"})
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "pokt_explorer",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of served API requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "code"})
)

// HTTPHandler tracks served API requests by route template.
type HTTPHandler struct{}

// NewHTTPHandler constructs a metrics collector for the API router.
func NewHTTPHandler() *HTTPHandler {
	return &HTTPHandler{}
}

// Observe records one served request.
func (m HTTPHandler) Observe(route string, code int, started time.Time) {
	if route == "" {
		route = "unmatched"
	}
	c := strconv.Itoa(code)
	httpRequestsTotal.WithLabelValues(route, c).Inc()
	httpRequestDuration.WithLabelValues(route, c).Observe(time.Since(started).Seconds())
}
