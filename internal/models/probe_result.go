package models

import "time"

// ProbeMethod names the probe that produced a reachability verdict.
type ProbeMethod string

const (
	ProbeICMP ProbeMethod = "icmp"
	ProbeTCP  ProbeMethod = "tcp"
)

// ProbeResult holds the outcome of a single reachability check.
type ProbeResult struct {
	Timestamp time.Time
	Host      string // as typed, trimmed
	Address   string // resolved network address
	Reachable bool
	Elapsed   time.Duration
	Method    ProbeMethod
}

// ElapsedMillis returns the probe's wall-clock duration in whole milliseconds.
func (r ProbeResult) ElapsedMillis() int64 {
	ms := r.Elapsed.Milliseconds()
	if ms < 0 {
		return 0
	}
	return ms
}
