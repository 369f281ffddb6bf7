package randkit

import "errors"

var (
	// ErrInvalidRange is returned when the minimum bound is greater than the maximum.
	ErrInvalidRange = errors.New("randkit: min must not be greater than max")
)
