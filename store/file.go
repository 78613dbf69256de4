package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Kishore8899/badminton-tournament-scorer/models"
)

// fileSnapshotStore persists the snapshot as an indented JSON document on
// disk. It is the default for local, single-operator runs; the file is the
// same document the export endpoint produces.
type fileSnapshotStore struct {
	path string
}

func NewFileSnapshotStore(path string) SnapshotStore {
	return &fileSnapshotStore{path: path}
}

func (s *fileSnapshotStore) Load(_ context.Context) (models.Snapshot, bool, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return models.Snapshot{}, false, nil
	}
	if err != nil {
		return models.Snapshot{}, false, fmt.Errorf("failed to read snapshot file %s: %w", s.path, err)
	}

	var snap models.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return models.Snapshot{}, false, fmt.Errorf("failed to decode snapshot file %s: %w", s.path, err)
	}
	return snap, true, nil
}

func (s *fileSnapshotStore) Save(_ context.Context, snap models.Snapshot) error {
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	// Write-then-rename so a crash mid-save never leaves a torn document.
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".snapshot-*")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot file: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write snapshot file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close snapshot file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace snapshot file %s: %w", s.path, err)
	}
	return nil
}

func (s *fileSnapshotStore) Clear(_ context.Context) error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove snapshot file %s: %w", s.path, err)
	}
	return nil
}
