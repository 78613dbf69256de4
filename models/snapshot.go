package models

// Snapshot is the whole-tournament interchange document. The persistence
// collaborator only ever loads and saves complete snapshots; there are no
// field-level writes. The same document is what the export endpoint emits.
type Snapshot struct {
	TournamentDetails *Tournament `json:"tournamentDetails"`
	Players           []Player    `json:"players"`
	Teams             []Team      `json:"teams"`
	Groups            []Group     `json:"groups"`
	Matches           []Match     `json:"matches"`
}

// FindTeam returns the team with the given id, if present.
func (s Snapshot) FindTeam(teamID string) (Team, bool) {
	for _, t := range s.Teams {
		if t.ID == teamID {
			return t, true
		}
	}
	return Team{}, false
}

// FindPlayer returns the player with the given id, if present.
func (s Snapshot) FindPlayer(playerID string) (Player, bool) {
	for _, p := range s.Players {
		if p.ID == playerID {
			return p, true
		}
	}
	return Player{}, false
}

// FindGroup returns the group with the given id, if present.
func (s Snapshot) FindGroup(groupID string) (Group, bool) {
	for _, g := range s.Groups {
		if g.ID == groupID {
			return g, true
		}
	}
	return Group{}, false
}

// FindMatch returns the index of the match with the given id, or -1.
func (s Snapshot) FindMatch(matchID string) int {
	for i, m := range s.Matches {
		if m.ID == matchID {
			return i
		}
	}
	return -1
}
