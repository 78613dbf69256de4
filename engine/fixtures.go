package engine

import (
	"github.com/google/uuid"

	"github.com/Kishore8899/badminton-tournament-scorer/models"
)

// GenerateFixtures creates the round-robin match set: for each group, every
// unordered pair of its teams exactly once, so a group of n teams produces
// n*(n-1)/2 matches. Teams never meet across groups.
//
// Enumeration is deterministic: groups in their current order, and within a
// group index pairs (i, j) with i < j in the group's team order. That fixes
// match numbering for display and for tests.
//
// Fixtures are generated once per tournament lifetime. If any match already
// exists the call is a no-op guard and returns the snapshot unchanged.
func GenerateFixtures(snap models.Snapshot) (models.Snapshot, error) {
	if len(snap.Matches) > 0 {
		return snap, nil
	}

	matches := make([]models.Match, 0)
	for _, group := range snap.Groups {
		for i := 0; i < len(group.Teams); i++ {
			for j := i + 1; j < len(group.Teams); j++ {
				matches = append(matches, models.Match{
					ID:     uuid.NewString(),
					TeamA:  group.Teams[i],
					TeamB:  group.Teams[j],
					Score:  models.Score{},
					Games:  []models.GameScore{},
					Status: models.MatchScheduled,
				})
			}
		}
	}

	next := snap
	next.Matches = matches
	return next, nil
}
