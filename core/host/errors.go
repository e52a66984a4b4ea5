package host

import "errors"

var (
	// ErrHostClosed is returned when registering against a closed host.
	ErrHostClosed = errors.New("host is closed")
)
