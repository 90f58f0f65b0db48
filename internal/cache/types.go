// Package cache holds TTL caches for computed analytics. Memory keeps entries
// in process; Redis shares them between API replicas.
package cache

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		ObserveLookup(hit bool)
	}
)

type nopMetrics struct{}

func (nopMetrics) ObserveLookup(bool) {}
