package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Kishore8899/badminton-tournament-scorer/engine"
	"github.com/Kishore8899/badminton-tournament-scorer/models"
	"github.com/Kishore8899/badminton-tournament-scorer/storage"
)

type ExportService interface {
	// Export writes the full snapshot as an indented JSON document and
	// returns the suggested download filename. When a backup uploader is
	// configured the same document is pushed off-box concurrently.
	Export(ctx context.Context, w io.Writer) (string, error)

	// Import replaces the whole domain state with the given export document
	// after an integrity check. Round-tripping Export into Import reproduces
	// an equivalent state, ids and relationships included.
	Import(ctx context.Context, r io.Reader) (models.Snapshot, error)
}

type exportService struct {
	state    *TournamentState
	uploader storage.BackupUploader
	logger   *slog.Logger
}

// NewExportService builds the export/import collaborator. uploader may be
// nil, in which case exports stay local-only.
func NewExportService(state *TournamentState, uploader storage.BackupUploader, logger *slog.Logger) ExportService {
	return &exportService{state: state, uploader: uploader, logger: logger}
}

var unsafeFilenameChars = regexp.MustCompile(`\s+`)

// ExportFileName derives the download name from the tournament name, the
// same way the original exporter did: lowercased, spaces collapsed to
// dashes, "-export.json" suffix.
func ExportFileName(tournamentName string) string {
	slug := unsafeFilenameChars.ReplaceAllString(strings.ToLower(strings.TrimSpace(tournamentName)), "-")
	if slug == "" {
		slug = "tournament"
	}
	return slug + "-export.json"
}

func (s *exportService) Export(ctx context.Context, w io.Writer) (string, error) {
	snap := s.state.View()

	doc, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode export document: %w", err)
	}

	name := "tournament"
	if snap.TournamentDetails != nil {
		name = snap.TournamentDetails.Name
	}
	filename := ExportFileName(name)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if _, err := w.Write(doc); err != nil {
			return fmt.Errorf("failed to write export document: %w", err)
		}
		return nil
	})
	if s.uploader != nil {
		g.Go(func() error {
			key := fmt.Sprintf("exports/%s-%s", time.Now().UTC().Format("20060102T150405Z"), filename)
			result, err := s.uploader.Upload(gCtx, key, "application/json", bytes.NewReader(doc))
			if err != nil {
				return err
			}
			s.logger.Info("export backup uploaded",
				slog.String("key", result.Key),
				slog.String("location", result.Location))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	return filename, nil
}

func (s *exportService) Import(ctx context.Context, r io.Reader) (models.Snapshot, error) {
	var snap models.Snapshot
	dec := json.NewDecoder(r)
	if err := dec.Decode(&snap); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %v", engine.ErrSnapshotInvalid, err)
	}
	if err := engine.ValidateSnapshot(snap); err != nil {
		return models.Snapshot{}, err
	}

	if err := s.state.replace(ctx, snap); err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to persist imported snapshot: %w", err)
	}
	s.logger.Info("snapshot imported",
		slog.Int("players", len(snap.Players)),
		slog.Int("teams", len(snap.Teams)),
		slog.Int("matches", len(snap.Matches)))
	return snap, nil
}
