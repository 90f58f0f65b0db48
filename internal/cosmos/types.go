package cosmos

import "time"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RPCMetrics records outcomes of node calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
