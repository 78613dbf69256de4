package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Kishore8899/badminton-tournament-scorer/engine"
	"github.com/Kishore8899/badminton-tournament-scorer/models"
	"github.com/Kishore8899/badminton-tournament-scorer/store"
)

// TournamentState owns the domain snapshot for one tournament session. All
// mutations funnel through it: the engine derives the complete next snapshot,
// the store persists it, and only then does the in-memory copy advance. A
// failed persist leaves the previous snapshot in place, so callers never
// observe a half-applied change.
//
// The mutex serializes mutations; the engine assumes at most one in flight.
type TournamentState struct {
	mu     sync.Mutex
	store  store.SnapshotStore
	snap   models.Snapshot
	logger *slog.Logger
}

// NewTournamentState loads the persisted snapshot, seeding and persisting
// the default configuration when the store is empty (first run).
func NewTournamentState(ctx context.Context, st store.SnapshotStore, logger *slog.Logger) (*TournamentState, error) {
	snap, ok, err := st.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tournament snapshot: %w", err)
	}
	if !ok {
		snap = engine.DefaultSnapshot(time.Now())
		if err := st.Save(ctx, snap); err != nil {
			return nil, fmt.Errorf("failed to seed tournament snapshot: %w", err)
		}
		logger.Info("seeded new tournament snapshot", slog.String("tournament_id", snap.TournamentDetails.ID))
	}

	return &TournamentState{
		store:  st,
		snap:   snap,
		logger: logger,
	}, nil
}

// View returns the current snapshot. Engine transformations never mutate
// snapshot slices in place, so the shared backing arrays are safe to read.
func (t *TournamentState) View() models.Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snap
}

// mutate applies one engine transformation and persists the result. The
// in-memory snapshot advances only after the store accepts the document.
func (t *TournamentState) mutate(ctx context.Context, fn func(models.Snapshot) (models.Snapshot, error)) (models.Snapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	next, err := fn(t.snap)
	if err != nil {
		return t.snap, err
	}
	if err := t.store.Save(ctx, next); err != nil {
		t.logger.Error("snapshot save failed, keeping previous state", slog.Any("error", err))
		return t.snap, err
	}
	t.snap = next
	return next, nil
}

// replace swaps in an externally produced snapshot (import path). The same
// persist-then-swap rule applies.
func (t *TournamentState) replace(ctx context.Context, snap models.Snapshot) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.store.Save(ctx, snap); err != nil {
		return err
	}
	t.snap = snap
	return nil
}

// reset clears the store and starts a fresh session with the default
// configuration.
func (t *TournamentState) reset(ctx context.Context) (models.Snapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.store.Clear(ctx); err != nil {
		return t.snap, fmt.Errorf("failed to clear tournament store: %w", err)
	}
	fresh := engine.DefaultSnapshot(time.Now())
	if err := t.store.Save(ctx, fresh); err != nil {
		return t.snap, fmt.Errorf("failed to seed tournament snapshot after reset: %w", err)
	}
	t.snap = fresh
	t.logger.Info("tournament reset", slog.String("tournament_id", fresh.TournamentDetails.ID))
	return fresh, nil
}
