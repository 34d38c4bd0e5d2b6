package assertion

import "errors"

var (
	ErrNoExpiry        = errors.New("assertion: token has no exp claim")
	ErrInvalidLifetime = errors.New("assertion: lifetime must be positive")
)
