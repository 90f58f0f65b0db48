package model

import "errors"

// ErrInvalidFilter is returned when a filter carries an unknown enum value.
var ErrInvalidFilter = errors.New("invalid filter")
