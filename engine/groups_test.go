package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGroup(t *testing.T) {
	snap := DefaultSnapshot(time.Now())

	next, group, err := CreateGroup(snap, " Group A ")
	require.NoError(t, err)
	assert.Equal(t, "Group A", group.Name)
	assert.NotEmpty(t, group.ID)
	require.Len(t, next.Groups, 1)
	assert.Empty(t, next.Groups[0].Teams)
}

func TestCreateGroupRequiresName(t *testing.T) {
	snap := DefaultSnapshot(time.Now())

	_, _, err := CreateGroup(snap, "")
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestAssignTeamToGroupMoves(t *testing.T) {
	snap := seededSnapshot(2)
	snap, a, err := CreateGroup(snap, "Group A")
	require.NoError(t, err)
	snap, b, err := CreateGroup(snap, "Group B")
	require.NoError(t, err)

	snap, err = AssignTeamToGroup(snap, "t1", a.ID)
	require.NoError(t, err)

	// Moving to another group removes the team from the first.
	snap, err = AssignTeamToGroup(snap, "t1", b.ID)
	require.NoError(t, err)

	groupA, _ := snap.FindGroup(a.ID)
	groupB, _ := snap.FindGroup(b.ID)
	assert.Empty(t, groupA.Teams)
	require.Len(t, groupB.Teams, 1)
	assert.Equal(t, "t1", groupB.Teams[0].ID)
}

func TestAssignTeamToGroupIdempotent(t *testing.T) {
	snap := seededSnapshot(1)
	snap, g, err := CreateGroup(snap, "Group A")
	require.NoError(t, err)

	snap, err = AssignTeamToGroup(snap, "t1", g.ID)
	require.NoError(t, err)
	again, err := AssignTeamToGroup(snap, "t1", g.ID)
	require.NoError(t, err)

	assert.Equal(t, snap.Groups, again.Groups)
}

func TestAssignTeamToGroupErrors(t *testing.T) {
	snap := seededSnapshot(1)
	snap, g, err := CreateGroup(snap, "Group A")
	require.NoError(t, err)
	snap, err = AssignTeamToGroup(snap, "t1", g.ID)
	require.NoError(t, err)

	_, err = AssignTeamToGroup(snap, "ghost", g.ID)
	assert.ErrorIs(t, err, ErrTeamNotFound)

	// Unknown target group fails and the team stays where it was.
	_, err = AssignTeamToGroup(snap, "t1", "ghost")
	assert.ErrorIs(t, err, ErrGroupNotFound)
	group, _ := snap.FindGroup(g.ID)
	require.Len(t, group.Teams, 1)
}

func TestAutoAssignGroupsRoundRobin(t *testing.T) {
	snap := seededSnapshot(5)

	next, err := AutoAssignGroups(snap, 2)
	require.NoError(t, err)

	require.Len(t, next.Groups, 2)
	assert.Equal(t, "Group A", next.Groups[0].Name)
	assert.Equal(t, "Group B", next.Groups[1].Name)

	// Roster order round-robin: t1 t3 t5 in A, t2 t4 in B.
	ids := func(i int) []string {
		out := []string{}
		for _, team := range next.Groups[i].Teams {
			out = append(out, team.ID)
		}
		return out
	}
	assert.Equal(t, []string{"t1", "t3", "t5"}, ids(0))
	assert.Equal(t, []string{"t2", "t4"}, ids(1))
}

func TestAutoAssignGroupsReplacesExisting(t *testing.T) {
	snap := seededSnapshot(2)
	snap, _, err := CreateGroup(snap, "Handmade")
	require.NoError(t, err)

	next, err := AutoAssignGroups(snap, 1)
	require.NoError(t, err)

	require.Len(t, next.Groups, 1)
	assert.Equal(t, "Group A", next.Groups[0].Name)
}

func TestAutoAssignGroupsPartition(t *testing.T) {
	snap := seededSnapshot(7)

	next, err := AutoAssignGroups(snap, 3)
	require.NoError(t, err)

	seen := map[string]int{}
	for _, g := range next.Groups {
		for _, team := range g.Teams {
			seen[team.ID]++
		}
	}
	assert.Len(t, seen, 7, "every team grouped")
	for id, n := range seen {
		assert.Equalf(t, 1, n, "team %s in exactly one group", id)
	}
}

func TestAutoAssignGroupsInvalidCount(t *testing.T) {
	snap := seededSnapshot(2)

	for _, count := range []int{0, -1} {
		_, err := AutoAssignGroups(snap, count)
		assert.ErrorIs(t, err, ErrGroupCountInvalid)
	}
}
