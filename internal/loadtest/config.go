// Package loadtest drives a running Atlas instance with generated
// assessment sessions and verifies that results become readable.
package loadtest

import (
	"sync/atomic"
	"time"
)

// Config holds the test run parameters.
type Config struct {
	BaseURL     string
	NumSessions int
	NumUsers    int
	Workers     int
	Timeout     time.Duration
	LogFile     string
	Verbose     bool
}

// Stats accumulates counters over a test run.
type Stats struct {
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	Submitted  atomic.Int64
	Duplicates atomic.Int64
	Rejected   atomic.Int64
	Failed     atomic.Int64
	Verified   atomic.Int64
}
