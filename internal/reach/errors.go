package reach

import "errors"

var (
	ErrEmptyHost = errors.New("host is empty")
	ErrNoAddress = errors.New("no addresses found for host")

	// ErrProbeUnavailable means a prober could not even start (for example,
	// ICMP sockets need privileges). The checker moves on to the next prober.
	ErrProbeUnavailable = errors.New("probe unavailable")
)
