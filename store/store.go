// Package store holds the persistence collaborator for the tournament
// engine. The contract is whole-replace: every mutation reads the latest
// snapshot, applies one change, and writes the complete document back. No
// implementation performs field-level writes.
package store

import (
	"context"

	"github.com/Kishore8899/badminton-tournament-scorer/models"
)

type SnapshotStore interface {
	// Load returns the persisted snapshot. ok is false when the store holds
	// no snapshot yet; that is not an error.
	Load(ctx context.Context) (snap models.Snapshot, ok bool, err error)

	// Save replaces the persisted snapshot with the given one.
	Save(ctx context.Context, snap models.Snapshot) error

	// Clear drops the persisted snapshot. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}
