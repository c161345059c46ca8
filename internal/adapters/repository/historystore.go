package repository

import (
	"context"
	"sync"
	"time"

	"github.com/selfcraft/atlas/internal/domain/model"
	"github.com/selfcraft/atlas/pkg/metrics"
)

// In-memory, append-only Store implementation.
//
// Histories are keyed by (userID, tool). Each history keeps insertion
// order and is capped at historyLimit entries; once full, appending
// drops the oldest snapshot.

const (
	defaultHistoryLimit          = 200
	defaultMetricsUpdateInterval = 5 * time.Second
)

type historyKey struct {
	userID string
	tool   model.Tool
}

// HistoryStore is a mutex-guarded in-memory Store.
type HistoryStore struct {
	mu        sync.RWMutex
	byKey     map[historyKey][]model.Snapshot
	userTools map[string]int // distinct tools with history per user
	total     int

	historyLimit          int
	metricsUpdateInterval time.Duration

	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewHistoryStore creates a HistoryStore and starts its background
// metrics updater. The updater stops when ctx is canceled or Close is
// called.
func NewHistoryStore(ctx context.Context, opts ...Option) *HistoryStore {
	s := &HistoryStore{
		byKey:                 make(map[historyKey][]model.Snapshot),
		userTools:             make(map[string]int),
		historyLimit:          defaultHistoryLimit,
		metricsUpdateInterval: defaultMetricsUpdateInterval,
		stopChan:              make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.startMetricsUpdater(ctx)

	return s
}

// Close gracefully shuts down the background metrics goroutine.
func (s *HistoryStore) Close() error {
	select {
	case <-s.stopChan:
		// already closed
	default:
		close(s.stopChan)
	}
	s.wg.Wait()

	return nil
}

// Append implements Store.Append.
func (s *HistoryStore) Append(ctx context.Context, snap model.Snapshot) error {
	key := historyKey{userID: snap.UserID, tool: snap.Tool}

	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.byKey[key]
	if len(history) == 0 {
		s.userTools[snap.UserID]++
	}

	history = append(history, snap)
	s.total++
	if len(history) > s.historyLimit {
		dropped := len(history) - s.historyLimit
		history = append(history[:0], history[dropped:]...)
		s.total -= dropped
	}
	s.byKey[key] = history

	return nil
}

// Recent implements Store.Recent.
func (s *HistoryStore) Recent(ctx context.Context, userID string, tool model.Tool, limit int) ([]model.Snapshot, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.byKey[historyKey{userID: userID, tool: tool}]
	if len(history) < limit {
		limit = len(history)
	}

	out := make([]model.Snapshot, 0, limit)
	for i := len(history) - 1; i >= len(history)-limit; i-- {
		out = append(out, history[i])
	}

	return out, nil
}

// Latest implements Store.Latest.
func (s *HistoryStore) Latest(ctx context.Context, userID string, tool model.Tool) (model.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.byKey[historyKey{userID: userID, tool: tool}]
	if len(history) == 0 {
		return model.Snapshot{}, ErrNotFound
	}

	return history[len(history)-1], nil
}

// CountFor implements Store.CountFor.
func (s *HistoryStore) CountFor(ctx context.Context, userID string, tool model.Tool) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.byKey[historyKey{userID: userID, tool: tool}])
}

// Count implements Store.Count.
func (s *HistoryStore) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.total
}

// Users implements Store.Users.
func (s *HistoryStore) Users(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.userTools)
}

// startMetricsUpdater starts a background goroutine that refreshes
// store gauges at the configured interval.
func (s *HistoryStore) startMetricsUpdater(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.metricsUpdateInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-s.stopChan:
				return
			case <-ticker.C:
				s.updateMetrics()
			}
		}
	}()
}

func (s *HistoryStore) updateMetrics() {
	s.mu.RLock()
	users := len(s.userTools)
	snapshots := s.total
	s.mu.RUnlock()

	metrics.UpdateHistorySize(users, snapshots)
}
