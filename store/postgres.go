package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Kishore8899/badminton-tournament-scorer/models"
)

// postgresSnapshotStore keeps the whole snapshot as a single JSONB document.
// One row per deployment; Save upserts the full document, which serializes
// concurrent writers to last-write-wins at the database.
type postgresSnapshotStore struct {
	db *sql.DB
}

func NewPostgresSnapshotStore(ctx context.Context, db *sql.DB) (SnapshotStore, error) {
	s := &postgresSnapshotStore{db: db}
	if err := s.migrate(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *postgresSnapshotStore) migrate(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS tournament_snapshots (
			id         INT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
			document   JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create tournament_snapshots table: %w", err)
	}
	return nil
}

func (s *postgresSnapshotStore) Load(ctx context.Context) (models.Snapshot, bool, error) {
	var raw []byte
	query := `SELECT document FROM tournament_snapshots WHERE id = 1`
	err := s.db.QueryRowContext(ctx, query).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Snapshot{}, false, nil
	}
	if err != nil {
		return models.Snapshot{}, false, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var snap models.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return models.Snapshot{}, false, fmt.Errorf("failed to decode stored snapshot: %w", err)
	}
	return snap, true, nil
}

func (s *postgresSnapshotStore) Save(ctx context.Context, snap models.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	query := `
		INSERT INTO tournament_snapshots (id, document, updated_at)
		VALUES (1, $1, now())
		ON CONFLICT (id) DO UPDATE SET document = EXCLUDED.document, updated_at = now()`
	if _, err := s.db.ExecContext(ctx, query, raw); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

func (s *postgresSnapshotStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM tournament_snapshots WHERE id = 1`); err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}
	return nil
}
