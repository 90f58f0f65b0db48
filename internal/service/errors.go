package service

import (
	"errors"
	"fmt"
)

// ErrUnavailable is matched by every UnavailableError.
var ErrUnavailable = errors.New("both server and node are unavailable")

var (
	errNodeNotReady = errors.New("rpc not available")
	errNoBlocks     = errors.New("no block data available")
)

// UnavailableError is returned when the indexer failed and the node
// fallback failed as well. Both causes are kept.
type UnavailableError struct {
	Primary  error
	Fallback error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s: indexer: %v; node: %v", ErrUnavailable, e.Primary, e.Fallback)
}

func (e *UnavailableError) Unwrap() []error {
	return []error{ErrUnavailable, e.Primary, e.Fallback}
}
