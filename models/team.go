package models

// Team is one or two players entered into a single category. The player
// count must match the category arity; that rule is enforced by the engine,
// not by the shape itself.
type Team struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Players  []Player `json:"players"`
}

func (t Team) HasPlayer(playerID string) bool {
	for _, p := range t.Players {
		if p.ID == playerID {
			return true
		}
	}
	return false
}
