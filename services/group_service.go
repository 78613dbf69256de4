package services

import (
	"context"

	"github.com/Kishore8899/badminton-tournament-scorer/engine"
	"github.com/Kishore8899/badminton-tournament-scorer/models"
)

type GroupService interface {
	ListGroups(ctx context.Context) []models.Group
	CreateGroup(ctx context.Context, name string) (models.Group, error)
	AssignTeamToGroup(ctx context.Context, teamID, groupID string) ([]models.Group, error)
	AutoAssignGroups(ctx context.Context, count int) ([]models.Group, error)
}

type groupService struct {
	state *TournamentState
}

func NewGroupService(state *TournamentState) GroupService {
	return &groupService{state: state}
}

func (s *groupService) ListGroups(_ context.Context) []models.Group {
	return s.state.View().Groups
}

func (s *groupService) CreateGroup(ctx context.Context, name string) (models.Group, error) {
	var created models.Group
	_, err := s.state.mutate(ctx, func(snap models.Snapshot) (models.Snapshot, error) {
		next, group, err := engine.CreateGroup(snap, name)
		created = group
		return next, err
	})
	if err != nil {
		return models.Group{}, err
	}
	return created, nil
}

func (s *groupService) AssignTeamToGroup(ctx context.Context, teamID, groupID string) ([]models.Group, error) {
	next, err := s.state.mutate(ctx, func(snap models.Snapshot) (models.Snapshot, error) {
		return engine.AssignTeamToGroup(snap, teamID, groupID)
	})
	if err != nil {
		return nil, err
	}
	return next.Groups, nil
}

func (s *groupService) AutoAssignGroups(ctx context.Context, count int) ([]models.Group, error) {
	next, err := s.state.mutate(ctx, func(snap models.Snapshot) (models.Snapshot, error) {
		return engine.AutoAssignGroups(snap, count)
	})
	if err != nil {
		return nil, err
	}
	return next.Groups, nil
}
