package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kishore8899/badminton-tournament-scorer/models"
)

func TestDefaultSnapshot(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	snap := DefaultSnapshot(now)

	require.NotNil(t, snap.TournamentDetails)
	assert.Equal(t, "Badminton Tournament", snap.TournamentDetails.Name)
	assert.Equal(t, "2026-08-31", snap.TournamentDetails.StartDate)
	assert.Equal(t, "2026-09-02", snap.TournamentDetails.EndDate)
	assert.Equal(t, 21, snap.TournamentDetails.ScoringRules.PointsPerGame)
	assert.NotEmpty(t, snap.TournamentDetails.Categories)

	assert.NotNil(t, snap.Players)
	assert.Empty(t, snap.Players)
	assert.Empty(t, snap.Matches)
}

func TestUpdateDetails(t *testing.T) {
	snap := DefaultSnapshot(time.Now())
	originalID := snap.TournamentDetails.ID

	next, err := UpdateDetails(snap, models.Tournament{
		Name:         "Club Open 2026",
		StartDate:    "2026-09-05",
		EndDate:      "2026-09-07",
		Categories:   []models.Category{models.WomensSingles},
		ScoringRules: models.ScoringRules{PointsPerGame: 15},
	})
	require.NoError(t, err)

	assert.Equal(t, originalID, next.TournamentDetails.ID, "blank id keeps the existing one")
	assert.Equal(t, "Club Open 2026", next.TournamentDetails.Name)
	assert.Equal(t, 15, next.TournamentDetails.ScoringRules.PointsPerGame)

	// The old configuration is untouched.
	assert.Equal(t, "Badminton Tournament", snap.TournamentDetails.Name)
}

func TestUpdateDetailsValidation(t *testing.T) {
	snap := DefaultSnapshot(time.Now())
	valid := models.Tournament{
		Name:         "Club Open",
		Categories:   []models.Category{models.MensSingles},
		ScoringRules: models.ScoringRules{PointsPerGame: 21},
	}

	tests := []struct {
		name   string
		mutate func(*models.Tournament)
		want   error
	}{
		{"blank name", func(d *models.Tournament) { d.Name = "  " }, ErrNameRequired},
		{"zero points per game", func(d *models.Tournament) { d.ScoringRules.PointsPerGame = 0 }, ErrPointsPerGameInvalid},
		{"negative points per game", func(d *models.Tournament) { d.ScoringRules.PointsPerGame = -5 }, ErrPointsPerGameInvalid},
		{"no categories", func(d *models.Tournament) { d.Categories = nil }, ErrCategoriesRequired},
		{"bad category", func(d *models.Tournament) { d.Categories = []models.Category{"Juniors"} }, ErrCategoryInvalid},
		{"end before start", func(d *models.Tournament) { d.StartDate, d.EndDate = "2026-09-07", "2026-09-05" }, ErrDateRangeInvalid},
		{"malformed date", func(d *models.Tournament) { d.StartDate, d.EndDate = "07/09/2026", "2026-09-08" }, ErrDateRangeInvalid},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			details := valid
			tc.mutate(&details)
			_, err := UpdateDetails(snap, details)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestUpdateDetailsSameDayTournament(t *testing.T) {
	snap := DefaultSnapshot(time.Now())

	_, err := UpdateDetails(snap, models.Tournament{
		Name:         "One Day Open",
		StartDate:    "2026-09-05",
		EndDate:      "2026-09-05",
		Categories:   []models.Category{models.MensSingles},
		ScoringRules: models.ScoringRules{PointsPerGame: 21},
	})
	assert.NoError(t, err)
}

func TestValidateSnapshotAccepts(t *testing.T) {
	snap := seededSnapshot(3)
	snap, err := AutoAssignGroups(snap, 1)
	require.NoError(t, err)
	snap, err = GenerateFixtures(snap)
	require.NoError(t, err)
	snap = finish(t, snap, snap.Matches[0].ID, 21, 12)

	assert.NoError(t, ValidateSnapshot(snap))
}

func TestValidateSnapshotRejects(t *testing.T) {
	base := func() models.Snapshot {
		snap := seededSnapshot(2)
		snap, err := AutoAssignGroups(snap, 1)
		require.NoError(t, err)
		snap, err = GenerateFixtures(snap)
		require.NoError(t, err)
		return snap
	}

	tests := []struct {
		name   string
		mutate func(*models.Snapshot)
	}{
		{"missing details", func(s *models.Snapshot) { s.TournamentDetails = nil }},
		{"bad points per game", func(s *models.Snapshot) { s.TournamentDetails.ScoringRules.PointsPerGame = 0 }},
		{"duplicate player id", func(s *models.Snapshot) { s.Players = append(s.Players, s.Players[0]) }},
		{"duplicate team id", func(s *models.Snapshot) { s.Teams = append(s.Teams, s.Teams[0]) }},
		{"wrong arity", func(s *models.Snapshot) { s.Teams[0].Category = models.MensDoubles }},
		{"unknown player on team", func(s *models.Snapshot) { s.Teams[0].Players[0].ID = "ghost" }},
		{"team in two groups", func(s *models.Snapshot) {
			s.Groups = append(s.Groups, models.Group{ID: "g2", Name: "Group B", Teams: s.Groups[0].Teams[:1]})
		}},
		{"group with unknown team", func(s *models.Snapshot) {
			s.Groups[0].Teams = append(s.Groups[0].Teams, singlesTeam("ghost", "Ghost"))
		}},
		{"match with unknown team", func(s *models.Snapshot) { s.Matches[0].TeamB.ID = "ghost" }},
		{"match against itself", func(s *models.Snapshot) { s.Matches[0].TeamB = s.Matches[0].TeamA }},
		{"negative score", func(s *models.Snapshot) { s.Matches[0].Score.TeamA = -1 }},
		{"scheduled with winner", func(s *models.Snapshot) { s.Matches[0].Winner = &s.Matches[0].TeamA }},
		{"completed without winner", func(s *models.Snapshot) { s.Matches[0].Status = models.MatchCompleted }},
		{"unknown status", func(s *models.Snapshot) { s.Matches[0].Status = "paused" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snap := base()
			tc.mutate(&snap)
			assert.ErrorIs(t, ValidateSnapshot(snap), ErrSnapshotInvalid)
		})
	}
}

func TestValidateSnapshotPlayerOnTwoTeams(t *testing.T) {
	teamA := singlesTeam("t1", "Alpha")
	teamB := models.Team{
		ID:       "t2",
		Name:     "Bravo",
		Category: models.MensSingles,
		Players:  teamA.Players,
	}
	snap := DefaultSnapshot(time.Now())
	snap.Players = playersOf(teamA)
	snap.Teams = []models.Team{teamA, teamB}

	assert.ErrorIs(t, ValidateSnapshot(snap), ErrSnapshotInvalid)
}
