package engine

import (
	"fmt"
	"time"

	"github.com/Kishore8899/badminton-tournament-scorer/models"
)

// singlesTeam builds a one-player team whose player id is derived from the
// team id, keeping fixtures self-consistent for validation.
func singlesTeam(id, name string) models.Team {
	return models.Team{
		ID:       id,
		Name:     name,
		Category: models.MensSingles,
		Players:  []models.Player{{ID: "p-" + id, Name: name}},
	}
}

func playersOf(teams ...models.Team) []models.Player {
	players := make([]models.Player, 0, len(teams))
	for _, t := range teams {
		players = append(players, t.Players...)
	}
	return players
}

// seededSnapshot is a default session with n singles teams already rostered.
func seededSnapshot(n int) models.Snapshot {
	snap := DefaultSnapshot(time.Now())
	for i := 0; i < n; i++ {
		t := singlesTeam(fmt.Sprintf("t%d", i+1), fmt.Sprintf("Team %d", i+1))
		snap.Players = append(snap.Players, t.Players...)
		snap.Teams = append(snap.Teams, t)
	}
	return snap
}
