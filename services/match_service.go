package services

import (
	"context"

	"github.com/Kishore8899/badminton-tournament-scorer/engine"
	"github.com/Kishore8899/badminton-tournament-scorer/models"
)

type MatchService interface {
	ListMatches(ctx context.Context) []models.Match
	GenerateFixtures(ctx context.Context) ([]models.Match, error)
	SetScore(ctx context.Context, matchID string, side models.TeamSide, score int) (models.Match, error)
	EndMatch(ctx context.Context, matchID string, winnerTeamID string) (models.Match, error)
	ReopenMatch(ctx context.Context, matchID string) (models.Match, error)
}

type matchService struct {
	state *TournamentState
}

func NewMatchService(state *TournamentState) MatchService {
	return &matchService{state: state}
}

func (s *matchService) ListMatches(_ context.Context) []models.Match {
	return s.state.View().Matches
}

func (s *matchService) GenerateFixtures(ctx context.Context) ([]models.Match, error) {
	next, err := s.state.mutate(ctx, engine.GenerateFixtures)
	if err != nil {
		return nil, err
	}
	return next.Matches, nil
}

func (s *matchService) SetScore(ctx context.Context, matchID string, side models.TeamSide, score int) (models.Match, error) {
	next, err := s.state.mutate(ctx, func(snap models.Snapshot) (models.Snapshot, error) {
		return engine.SetScore(snap, matchID, side, score)
	})
	if err != nil {
		return models.Match{}, err
	}
	return matchByID(next, matchID)
}

func (s *matchService) EndMatch(ctx context.Context, matchID string, winnerTeamID string) (models.Match, error) {
	next, err := s.state.mutate(ctx, func(snap models.Snapshot) (models.Snapshot, error) {
		return engine.EndMatch(snap, matchID, winnerTeamID)
	})
	if err != nil {
		return models.Match{}, err
	}
	return matchByID(next, matchID)
}

func (s *matchService) ReopenMatch(ctx context.Context, matchID string) (models.Match, error) {
	next, err := s.state.mutate(ctx, func(snap models.Snapshot) (models.Snapshot, error) {
		return engine.ReopenMatch(snap, matchID)
	})
	if err != nil {
		return models.Match{}, err
	}
	return matchByID(next, matchID)
}

func matchByID(snap models.Snapshot, matchID string) (models.Match, error) {
	idx := snap.FindMatch(matchID)
	if idx < 0 {
		return models.Match{}, engine.ErrMatchNotFound
	}
	return snap.Matches[idx], nil
}
