package services

import (
	"context"

	"github.com/Kishore8899/badminton-tournament-scorer/engine"
	"github.com/Kishore8899/badminton-tournament-scorer/models"
)

// LeaderboardFilter narrows the computed standings. Zero value means the
// full leaderboard; filters are a select over the same computed slice, not
// a different computation.
type LeaderboardFilter struct {
	GroupID  string
	Category models.Category
}

type LeaderboardService interface {
	Standings(ctx context.Context, filter LeaderboardFilter) ([]models.LeaderboardEntry, error)
}

type leaderboardService struct {
	state *TournamentState
}

func NewLeaderboardService(state *TournamentState) LeaderboardService {
	return &leaderboardService{state: state}
}

func (s *leaderboardService) Standings(_ context.Context, filter LeaderboardFilter) ([]models.LeaderboardEntry, error) {
	snap := s.state.View()
	entries := engine.ComputeLeaderboard(snap.Teams, snap.Groups, snap.Matches)

	if filter.GroupID != "" {
		if _, ok := snap.FindGroup(filter.GroupID); !ok {
			return nil, engine.ErrGroupNotFound
		}
		entries = engine.FilterByGroup(entries, filter.GroupID)
	}
	if filter.Category != "" {
		if !filter.Category.Valid() {
			return nil, engine.ErrCategoryInvalid
		}
		entries = engine.FilterByCategory(entries, filter.Category)
	}
	return entries, nil
}
