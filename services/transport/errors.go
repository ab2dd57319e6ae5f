package transport

import "errors"

var (
	ErrInvalidMode    = errors.New("invalid travel mode")
	ErrSeatAllocation = errors.New("seat allocation failed")
)
