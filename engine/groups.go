package engine

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Kishore8899/badminton-tournament-scorer/models"
)

// CreateGroup adds a fresh empty group.
func CreateGroup(snap models.Snapshot, name string) (models.Snapshot, models.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return snap, models.Group{}, ErrNameRequired
	}

	group := models.Group{
		ID:    uuid.NewString(),
		Name:  name,
		Teams: []models.Team{},
	}

	next := snap
	next.Groups = append(append([]models.Group{}, snap.Groups...), group)
	return next, group, nil
}

// AssignTeamToGroup moves the team into the target group, removing it from
// whichever group currently holds it. Reassigning a team to the group it is
// already in yields the same observable state. An unknown group id is an
// error and leaves the snapshot untouched; the team is never dropped on the
// floor.
func AssignTeamToGroup(snap models.Snapshot, teamID, groupID string) (models.Snapshot, error) {
	team, ok := snap.FindTeam(teamID)
	if !ok {
		return snap, ErrTeamNotFound
	}
	if _, ok := snap.FindGroup(groupID); !ok {
		return snap, ErrGroupNotFound
	}

	next := snap
	next.Groups = make([]models.Group, 0, len(snap.Groups))
	for _, g := range snap.Groups {
		kept := make([]models.Team, 0, len(g.Teams))
		for _, t := range g.Teams {
			if t.ID != teamID {
				kept = append(kept, t)
			}
		}
		if g.ID == groupID {
			kept = append(kept, team)
		}
		g.Teams = kept
		next.Groups = append(next.Groups, g)
	}
	return next, nil
}

// AutoAssignGroups discards every existing group and partitions all known
// teams across count fresh groups by round-robin over the roster order:
// team i goes to group i mod count. Prior manual grouping is lost, which is
// why the operation carries the destructive flag in the route table.
func AutoAssignGroups(snap models.Snapshot, count int) (models.Snapshot, error) {
	if count <= 0 {
		return snap, ErrGroupCountInvalid
	}

	groups := make([]models.Group, count)
	for i := range groups {
		groups[i] = models.Group{
			ID:    uuid.NewString(),
			Name:  fmt.Sprintf("Group %c", rune('A'+i)),
			Teams: []models.Team{},
		}
	}
	for i, team := range snap.Teams {
		g := &groups[i%count]
		g.Teams = append(g.Teams, team)
	}

	next := snap
	next.Groups = groups
	return next, nil
}
