package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var cacheLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "pokt_explorer",
	Subsystem: "cache",
	Name:      "lookups_total",
	Help:      "Count of cache lookups by result.",
}, []string{"cache", "result"})

// Cache tracks hit ratios of a named cache.
type Cache struct {
	name string
}

// NewCache constructs a metrics collector for the named cache.
func NewCache(name string) *Cache {
	if name == "" {
		name = "unknown"
	}
	return &Cache{name: name}
}

// ObserveLookup records a hit or a miss.
func (m Cache) ObserveLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	cacheLookupsTotal.WithLabelValues(m.name, result).Inc()
}
