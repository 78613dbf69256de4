package services

import (
	"context"

	"github.com/Kishore8899/badminton-tournament-scorer/engine"
	"github.com/Kishore8899/badminton-tournament-scorer/models"
)

type RosterService interface {
	ListPlayers(ctx context.Context) []models.Player
	AddPlayer(ctx context.Context, input engine.NewPlayer) (models.Player, error)
	RemovePlayer(ctx context.Context, playerID string) (models.Snapshot, error)
	ListTeams(ctx context.Context) []models.Team
	AddTeam(ctx context.Context, input engine.NewTeam) (models.Team, error)
	RemoveTeam(ctx context.Context, teamID string) (models.Snapshot, error)
}

type rosterService struct {
	state *TournamentState
}

func NewRosterService(state *TournamentState) RosterService {
	return &rosterService{state: state}
}

func (s *rosterService) ListPlayers(_ context.Context) []models.Player {
	return s.state.View().Players
}

func (s *rosterService) AddPlayer(ctx context.Context, input engine.NewPlayer) (models.Player, error) {
	var created models.Player
	_, err := s.state.mutate(ctx, func(snap models.Snapshot) (models.Snapshot, error) {
		next, player, err := engine.AddPlayer(snap, input)
		created = player
		return next, err
	})
	if err != nil {
		return models.Player{}, err
	}
	return created, nil
}

func (s *rosterService) RemovePlayer(ctx context.Context, playerID string) (models.Snapshot, error) {
	return s.state.mutate(ctx, func(snap models.Snapshot) (models.Snapshot, error) {
		return engine.RemovePlayer(snap, playerID)
	})
}

func (s *rosterService) ListTeams(_ context.Context) []models.Team {
	return s.state.View().Teams
}

func (s *rosterService) AddTeam(ctx context.Context, input engine.NewTeam) (models.Team, error) {
	var created models.Team
	_, err := s.state.mutate(ctx, func(snap models.Snapshot) (models.Snapshot, error) {
		next, team, err := engine.AddTeam(snap, input)
		created = team
		return next, err
	})
	if err != nil {
		return models.Team{}, err
	}
	return created, nil
}

func (s *rosterService) RemoveTeam(ctx context.Context, teamID string) (models.Snapshot, error) {
	return s.state.mutate(ctx, func(snap models.Snapshot) (models.Snapshot, error) {
		return engine.RemoveTeam(snap, teamID)
	})
}
