package indexer

import "time"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records outcomes of indexer calls.
	Metrics interface {
		Observe(operation, method string, err error, started time.Time)
		ObserveShared(operation string)
	}
)

type nopMetrics struct{}

func (nopMetrics) Observe(string, string, error, time.Time) {}
func (nopMetrics) ObserveShared(string)                     {}
