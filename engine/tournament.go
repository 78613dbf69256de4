package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Kishore8899/badminton-tournament-scorer/models"
)

const dateLayout = "2006-01-02"

// DefaultSnapshot seeds a brand-new tournament session: a fresh
// configuration spanning today to two days out, the common divisions, and
// the standard 21 points per game. Collections start empty.
func DefaultSnapshot(now time.Time) models.Snapshot {
	return models.Snapshot{
		TournamentDetails: &models.Tournament{
			ID:        uuid.NewString(),
			Name:      "Badminton Tournament",
			StartDate: now.Format(dateLayout),
			EndDate:   now.AddDate(0, 0, 2).Format(dateLayout),
			Categories: []models.Category{
				models.MensSingles,
				models.MensDoubles,
				models.MixedDoubles,
			},
			ScoringRules: models.ScoringRules{PointsPerGame: 21},
		},
		Players: []models.Player{},
		Teams:   []models.Team{},
		Groups:  []models.Group{},
		Matches: []models.Match{},
	}
}

// UpdateDetails replaces the tournament configuration. The id of the
// existing configuration is preserved when the caller leaves it blank.
func UpdateDetails(snap models.Snapshot, details models.Tournament) (models.Snapshot, error) {
	if strings.TrimSpace(details.Name) == "" {
		return snap, ErrNameRequired
	}
	if details.ScoringRules.PointsPerGame <= 0 {
		return snap, ErrPointsPerGameInvalid
	}
	if len(details.Categories) == 0 {
		return snap, ErrCategoriesRequired
	}
	for _, c := range details.Categories {
		if !c.Valid() {
			return snap, ErrCategoryInvalid
		}
	}
	if details.StartDate != "" && details.EndDate != "" {
		start, err := time.Parse(dateLayout, details.StartDate)
		if err != nil {
			return snap, fmt.Errorf("%w: bad start date %q", ErrDateRangeInvalid, details.StartDate)
		}
		end, err := time.Parse(dateLayout, details.EndDate)
		if err != nil {
			return snap, fmt.Errorf("%w: bad end date %q", ErrDateRangeInvalid, details.EndDate)
		}
		if end.Before(start) {
			return snap, ErrDateRangeInvalid
		}
	}

	if details.ID == "" {
		if snap.TournamentDetails != nil {
			details.ID = snap.TournamentDetails.ID
		} else {
			details.ID = uuid.NewString()
		}
	}

	next := snap
	next.TournamentDetails = &details
	return next, nil
}

// ValidateSnapshot checks the structural invariants of an imported document:
// team arity and player references, the group partition property, and match
// side/winner consistency. A snapshot that passes can be swapped in as the
// current domain state.
func ValidateSnapshot(snap models.Snapshot) error {
	if snap.TournamentDetails == nil {
		return fmt.Errorf("%w: missing tournament details", ErrSnapshotInvalid)
	}
	if snap.TournamentDetails.ScoringRules.PointsPerGame <= 0 {
		return fmt.Errorf("%w: %v", ErrSnapshotInvalid, ErrPointsPerGameInvalid)
	}

	playerIDs := make(map[string]bool, len(snap.Players))
	for _, p := range snap.Players {
		if p.ID == "" || playerIDs[p.ID] {
			return fmt.Errorf("%w: duplicate or empty player id %q", ErrSnapshotInvalid, p.ID)
		}
		playerIDs[p.ID] = true
	}

	teamIDs := make(map[string]bool, len(snap.Teams))
	rostered := make(map[string]bool)
	for _, t := range snap.Teams {
		if t.ID == "" || teamIDs[t.ID] {
			return fmt.Errorf("%w: duplicate or empty team id %q", ErrSnapshotInvalid, t.ID)
		}
		teamIDs[t.ID] = true
		if len(t.Players) != t.Category.Arity() {
			return fmt.Errorf("%w: team %q has %d players for category %s", ErrSnapshotInvalid, t.Name, len(t.Players), t.Category)
		}
		for _, p := range t.Players {
			if !playerIDs[p.ID] {
				return fmt.Errorf("%w: team %q references unknown player %q", ErrSnapshotInvalid, t.Name, p.ID)
			}
			if rostered[p.ID] {
				return fmt.Errorf("%w: player %q appears on more than one team", ErrSnapshotInvalid, p.ID)
			}
			rostered[p.ID] = true
		}
	}

	grouped := make(map[string]bool)
	for _, g := range snap.Groups {
		for _, t := range g.Teams {
			if !teamIDs[t.ID] {
				return fmt.Errorf("%w: group %q references unknown team %q", ErrSnapshotInvalid, g.Name, t.ID)
			}
			if grouped[t.ID] {
				return fmt.Errorf("%w: team %q appears in more than one group", ErrSnapshotInvalid, t.ID)
			}
			grouped[t.ID] = true
		}
	}

	for _, m := range snap.Matches {
		if !teamIDs[m.TeamA.ID] || !teamIDs[m.TeamB.ID] {
			return fmt.Errorf("%w: match %q references an unknown team", ErrSnapshotInvalid, m.ID)
		}
		if m.TeamA.ID == m.TeamB.ID {
			return fmt.Errorf("%w: match %q pairs a team with itself", ErrSnapshotInvalid, m.ID)
		}
		if m.Score.TeamA < 0 || m.Score.TeamB < 0 {
			return fmt.Errorf("%w: match %q has a negative score", ErrSnapshotInvalid, m.ID)
		}
		switch m.Status {
		case models.MatchScheduled, models.MatchInProgress:
			if m.Winner != nil {
				return fmt.Errorf("%w: match %q has a winner but is not completed", ErrSnapshotInvalid, m.ID)
			}
		case models.MatchCompleted:
			if m.Winner == nil || !m.Involves(m.Winner.ID) {
				return fmt.Errorf("%w: completed match %q has no valid winner", ErrSnapshotInvalid, m.ID)
			}
		default:
			return fmt.Errorf("%w: match %q has unknown status %q", ErrSnapshotInvalid, m.ID, m.Status)
		}
	}

	return nil
}
