package services

import (
	"context"
	"log/slog"

	"github.com/Kishore8899/badminton-tournament-scorer/engine"
	"github.com/Kishore8899/badminton-tournament-scorer/models"
)

type TournamentService interface {
	Details(ctx context.Context) (models.Tournament, error)
	UpdateDetails(ctx context.Context, details models.Tournament) (models.Tournament, error)
	// Reset discards the whole session and seeds a fresh default tournament.
	// Destructive; clients are expected to confirm before calling.
	Reset(ctx context.Context) (models.Snapshot, error)
	Snapshot(ctx context.Context) models.Snapshot
}

type tournamentService struct {
	state  *TournamentState
	logger *slog.Logger
}

func NewTournamentService(state *TournamentState, logger *slog.Logger) TournamentService {
	return &tournamentService{state: state, logger: logger}
}

func (s *tournamentService) Details(_ context.Context) (models.Tournament, error) {
	snap := s.state.View()
	if snap.TournamentDetails == nil {
		return models.Tournament{}, engine.ErrTournamentNotFound
	}
	return *snap.TournamentDetails, nil
}

func (s *tournamentService) UpdateDetails(ctx context.Context, details models.Tournament) (models.Tournament, error) {
	next, err := s.state.mutate(ctx, func(snap models.Snapshot) (models.Snapshot, error) {
		return engine.UpdateDetails(snap, details)
	})
	if err != nil {
		return models.Tournament{}, err
	}
	s.logger.Info("tournament details updated", slog.String("name", next.TournamentDetails.Name))
	return *next.TournamentDetails, nil
}

func (s *tournamentService) Reset(ctx context.Context) (models.Snapshot, error) {
	return s.state.reset(ctx)
}

func (s *tournamentService) Snapshot(_ context.Context) models.Snapshot {
	return s.state.View()
}
