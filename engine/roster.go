package engine

import (
	"strings"

	"github.com/google/uuid"

	"github.com/Kishore8899/badminton-tournament-scorer/models"
)

// NewPlayer carries the caller-supplied fields for player registration.
type NewPlayer struct {
	Name         string               `json:"name"`
	Age          *int                 `json:"age,omitempty"`
	DominantHand *models.DominantHand `json:"dominantHand,omitempty"`
	Contact      *string              `json:"contact,omitempty"`
}

// NewTeam carries the caller-supplied fields for team creation. Players are
// referenced by id and must already be registered.
type NewTeam struct {
	Name      string          `json:"name"`
	Category  models.Category `json:"category"`
	PlayerIDs []string        `json:"playerIds"`
}

// AddPlayer registers a player under a fresh id. Every call mints a new
// identity, so it is not a retry-safe operation.
func AddPlayer(snap models.Snapshot, input NewPlayer) (models.Snapshot, models.Player, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return snap, models.Player{}, ErrNameRequired
	}

	player := models.Player{
		ID:           uuid.NewString(),
		Name:         name,
		Age:          input.Age,
		DominantHand: input.DominantHand,
		Contact:      input.Contact,
	}

	next := snap
	next.Players = append(append([]models.Player{}, snap.Players...), player)
	return next, player, nil
}

// RemovePlayer deletes a player and everything that depends on it: the team
// the player is on, that team's group membership, and every match the team
// is scheduled in. The whole next snapshot is derived in one pass so the
// caller can swap it in atomically.
func RemovePlayer(snap models.Snapshot, playerID string) (models.Snapshot, error) {
	if _, ok := snap.FindPlayer(playerID); !ok {
		return snap, ErrPlayerNotFound
	}

	doomedTeams := make(map[string]bool)
	for _, t := range snap.Teams {
		if t.HasPlayer(playerID) {
			doomedTeams[t.ID] = true
		}
	}

	next := snap
	next.Players = make([]models.Player, 0, len(snap.Players)-1)
	for _, p := range snap.Players {
		if p.ID != playerID {
			next.Players = append(next.Players, p)
		}
	}
	return cascadeTeamRemoval(next, doomedTeams), nil
}

// AddTeam creates a team under a fresh id. The player list must match the
// category arity, contain no duplicates, and none of the players may already
// be on another team.
func AddTeam(snap models.Snapshot, input NewTeam) (models.Snapshot, models.Team, error) {
	if !input.Category.Valid() {
		return snap, models.Team{}, ErrCategoryInvalid
	}
	if len(input.PlayerIDs) != input.Category.Arity() {
		return snap, models.Team{}, ErrTeamSizeMismatch
	}
	if len(input.PlayerIDs) == 2 && input.PlayerIDs[0] == input.PlayerIDs[1] {
		return snap, models.Team{}, ErrDuplicateTeamPlayer
	}

	players := make([]models.Player, 0, len(input.PlayerIDs))
	for _, id := range input.PlayerIDs {
		p, ok := snap.FindPlayer(id)
		if !ok {
			return snap, models.Team{}, ErrPlayerNotFound
		}
		for _, t := range snap.Teams {
			if t.HasPlayer(id) {
				return snap, models.Team{}, ErrPlayerAlreadyRostered
			}
		}
		players = append(players, p)
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		// Same default the registration form uses: the player names joined.
		names := make([]string, len(players))
		for i, p := range players {
			names[i] = p.Name
		}
		name = strings.Join(names, " / ")
	}

	team := models.Team{
		ID:       uuid.NewString(),
		Name:     name,
		Category: input.Category,
		Players:  players,
	}

	next := snap
	next.Teams = append(append([]models.Team{}, snap.Teams...), team)
	return next, team, nil
}

// RemoveTeam deletes a team and cascades into groups and matches, with the
// same single-pass atomicity as RemovePlayer.
func RemoveTeam(snap models.Snapshot, teamID string) (models.Snapshot, error) {
	if _, ok := snap.FindTeam(teamID); !ok {
		return snap, ErrTeamNotFound
	}
	return cascadeTeamRemoval(snap, map[string]bool{teamID: true}), nil
}

// cascadeTeamRemoval drops the given teams from the roster, from every
// group's member list (the groups themselves survive, possibly empty), and
// deletes every match referencing them. Input slices are never mutated.
func cascadeTeamRemoval(snap models.Snapshot, doomed map[string]bool) models.Snapshot {
	next := snap

	next.Teams = make([]models.Team, 0, len(snap.Teams))
	for _, t := range snap.Teams {
		if !doomed[t.ID] {
			next.Teams = append(next.Teams, t)
		}
	}

	next.Groups = make([]models.Group, 0, len(snap.Groups))
	for _, g := range snap.Groups {
		kept := make([]models.Team, 0, len(g.Teams))
		for _, t := range g.Teams {
			if !doomed[t.ID] {
				kept = append(kept, t)
			}
		}
		g.Teams = kept
		next.Groups = append(next.Groups, g)
	}

	next.Matches = make([]models.Match, 0, len(snap.Matches))
	for _, m := range snap.Matches {
		if !doomed[m.TeamA.ID] && !doomed[m.TeamB.ID] {
			next.Matches = append(next.Matches, m)
		}
	}

	return next
}
