package models

// Group is a round-robin pool of teams. Across one tournament every team
// belongs to at most one group.
type Group struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Teams []Team `json:"teams"`
}

func (g Group) HasTeam(teamID string) bool {
	for _, t := range g.Teams {
		if t.ID == teamID {
			return true
		}
	}
	return false
}
