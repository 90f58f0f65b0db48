package address

import "fmt"

// DecodeError reports a malformed bech32 address. Err is the decoder error,
// unchanged.
type DecodeError struct {
	Input string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode address %q: %v", e.Input, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
