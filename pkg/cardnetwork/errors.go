package cardnetwork

import "errors"

var (
	// ErrUnknownNetwork is returned when a network name does not match any known card network.
	ErrUnknownNetwork = errors.New("unknown card network")
	ErrUnknownStatus  = errors.New("unknown match status")
)
