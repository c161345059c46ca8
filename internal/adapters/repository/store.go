// Package repository defines the snapshot history store interface and errors.
package repository

import (
	"context"

	"github.com/selfcraft/atlas/internal/domain/model"
)

// Store provides append-only access to result snapshots, grouped by
// user and tool.
type Store interface {
	// Append persists a snapshot at the end of its user/tool history.
	Append(ctx context.Context, snap model.Snapshot) error

	// Recent returns up to limit snapshots for a user and tool, newest
	// first. An unknown user or tool yields an empty slice.
	Recent(ctx context.Context, userID string, tool model.Tool, limit int) ([]model.Snapshot, error)

	// Latest returns the most recent snapshot for a user and tool.
	// Returns ErrNotFound when no snapshot exists.
	Latest(ctx context.Context, userID string, tool model.Tool) (model.Snapshot, error)

	// CountFor returns the number of snapshots stored for a user and tool.
	CountFor(ctx context.Context, userID string, tool model.Tool) int

	// Count returns the total number of snapshots across all histories.
	Count(ctx context.Context) int

	// Users returns the number of distinct users with at least one snapshot.
	Users(ctx context.Context) int
}
