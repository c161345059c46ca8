// Package repository defines the snapshot history store interface and errors.
package repository

import "time"

// Option applies a configuration option to the HistoryStore.
type Option func(*HistoryStore)

// WithHistoryLimit caps the number of snapshots retained per user and tool.
// Older snapshots are dropped once the limit is exceeded.
func WithHistoryLimit(limit int) Option {
	return func(s *HistoryStore) {
		if limit > 0 {
			s.historyLimit = limit
		}
	}
}

// WithMetricsUpdateInterval sets the interval for background metrics updates.
func WithMetricsUpdateInterval(interval time.Duration) Option {
	return func(s *HistoryStore) {
		if interval > 0 {
			s.metricsUpdateInterval = interval
		}
	}
}
