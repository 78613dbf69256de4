package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kishore8899/badminton-tournament-scorer/models"
)

// liveFixture builds a single-group session with one generated match and
// returns the snapshot plus the match id.
func liveFixture(t *testing.T) (models.Snapshot, string) {
	t.Helper()
	snap := seededSnapshot(2)
	snap, err := AutoAssignGroups(snap, 1)
	require.NoError(t, err)
	snap, err = GenerateFixtures(snap)
	require.NoError(t, err)
	require.Len(t, snap.Matches, 1)
	return snap, snap.Matches[0].ID
}

func TestSetScoreStartsMatch(t *testing.T) {
	snap, id := liveFixture(t)

	next, err := SetScore(snap, id, models.SideA, 5)
	require.NoError(t, err)

	m := next.Matches[0]
	assert.Equal(t, 5, m.Score.TeamA)
	assert.Equal(t, 0, m.Score.TeamB)
	assert.Equal(t, models.MatchInProgress, m.Status)

	// The input snapshot still shows the scheduled match.
	assert.Equal(t, models.MatchScheduled, snap.Matches[0].Status)
}

func TestSetScoreClampsNegative(t *testing.T) {
	snap, id := liveFixture(t)

	next, err := SetScore(snap, id, models.SideB, -3)
	require.NoError(t, err)
	assert.Equal(t, 0, next.Matches[0].Score.TeamB)
	assert.Equal(t, models.MatchInProgress, next.Matches[0].Status)
}

func TestSetScoreErrors(t *testing.T) {
	snap, id := liveFixture(t)

	_, err := SetScore(snap, id, "left", 5)
	assert.ErrorIs(t, err, ErrTeamSideInvalid)

	_, err = SetScore(snap, "ghost", models.SideA, 5)
	assert.ErrorIs(t, err, ErrMatchNotFound)
}

func TestSetScoreRejectsCompleted(t *testing.T) {
	snap, id := liveFixture(t)
	snap, err := SetScore(snap, id, models.SideA, 21)
	require.NoError(t, err)
	snap, err = EndMatch(snap, id, "")
	require.NoError(t, err)

	_, err = SetScore(snap, id, models.SideA, 22)
	assert.ErrorIs(t, err, ErrMatchCompleted)
}

func TestEndMatchDerivesWinner(t *testing.T) {
	snap, id := liveFixture(t)
	snap, err := SetScore(snap, id, models.SideA, 21)
	require.NoError(t, err)
	snap, err = SetScore(snap, id, models.SideB, 15)
	require.NoError(t, err)

	next, err := EndMatch(snap, id, "")
	require.NoError(t, err)

	m := next.Matches[0]
	assert.Equal(t, models.MatchCompleted, m.Status)
	require.NotNil(t, m.Winner)
	assert.Equal(t, m.TeamA.ID, m.Winner.ID)
	require.Len(t, m.Games, 1)
	assert.Equal(t, models.GameScore{TeamA: 21, TeamB: 15}, m.Games[0])
}

func TestEndMatchAcceptsAgreeingWinner(t *testing.T) {
	snap, id := liveFixture(t)
	snap, err := SetScore(snap, id, models.SideB, 21)
	require.NoError(t, err)

	winnerID := snap.Matches[0].TeamB.ID
	next, err := EndMatch(snap, id, winnerID)
	require.NoError(t, err)
	assert.Equal(t, winnerID, next.Matches[0].Winner.ID)
}

func TestEndMatchRejectsDisagreeingWinner(t *testing.T) {
	snap, id := liveFixture(t)
	snap, err := SetScore(snap, id, models.SideA, 21)
	require.NoError(t, err)

	loserID := snap.Matches[0].TeamB.ID
	_, err = EndMatch(snap, id, loserID)
	assert.ErrorIs(t, err, ErrWinnerMismatch)
}

func TestEndMatchRejectsTie(t *testing.T) {
	snap, id := liveFixture(t)

	// A fresh 0:0 match is a tie too.
	_, err := EndMatch(snap, id, "")
	assert.ErrorIs(t, err, ErrTieNotCompletable)

	snap, err = SetScore(snap, id, models.SideA, 20)
	require.NoError(t, err)
	snap, err = SetScore(snap, id, models.SideB, 20)
	require.NoError(t, err)
	_, err = EndMatch(snap, id, "")
	assert.ErrorIs(t, err, ErrTieNotCompletable)
}

func TestEndMatchEarlyStoppage(t *testing.T) {
	snap, id := liveFixture(t)
	snap, err := SetScore(snap, id, models.SideA, 11)
	require.NoError(t, err)

	// Below the configured game point; retirement still finalizes the match.
	next, err := EndMatch(snap, id, "")
	require.NoError(t, err)
	assert.Equal(t, models.MatchCompleted, next.Matches[0].Status)
	assert.False(t, next.Matches[0].ReachedGamePoint(21))
}

func TestEndMatchTwiceRejected(t *testing.T) {
	snap, id := liveFixture(t)
	snap, err := SetScore(snap, id, models.SideA, 21)
	require.NoError(t, err)
	snap, err = EndMatch(snap, id, "")
	require.NoError(t, err)

	_, err = EndMatch(snap, id, "")
	assert.ErrorIs(t, err, ErrMatchCompleted)
}

func TestReopenMatch(t *testing.T) {
	snap, id := liveFixture(t)
	snap, err := SetScore(snap, id, models.SideA, 21)
	require.NoError(t, err)
	snap, err = SetScore(snap, id, models.SideB, 15)
	require.NoError(t, err)
	snap, err = EndMatch(snap, id, "")
	require.NoError(t, err)

	next, err := ReopenMatch(snap, id)
	require.NoError(t, err)

	m := next.Matches[0]
	assert.Equal(t, models.MatchInProgress, m.Status)
	assert.Nil(t, m.Winner)
	assert.Equal(t, models.Score{TeamA: 21, TeamB: 15}, m.Score, "score survives the reopen")
	assert.Empty(t, m.Games, "the completion game entry is withdrawn")
}

func TestReopenMatchNoOpWhenNotCompleted(t *testing.T) {
	snap, id := liveFixture(t)

	next, err := ReopenMatch(snap, id)
	require.NoError(t, err)
	assert.Equal(t, models.MatchScheduled, next.Matches[0].Status)

	snap, err = SetScore(snap, id, models.SideA, 7)
	require.NoError(t, err)
	next, err = ReopenMatch(snap, id)
	require.NoError(t, err)
	assert.Equal(t, snap.Matches, next.Matches)
}

func TestReopenMatchUnknown(t *testing.T) {
	snap, _ := liveFixture(t)

	_, err := ReopenMatch(snap, "ghost")
	assert.ErrorIs(t, err, ErrMatchNotFound)
}

func TestMatchLifecycleRoundTrip(t *testing.T) {
	snap, id := liveFixture(t)

	var err error
	snap, err = SetScore(snap, id, models.SideA, 21)
	require.NoError(t, err)
	snap, err = EndMatch(snap, id, "")
	require.NoError(t, err)
	snap, err = ReopenMatch(snap, id)
	require.NoError(t, err)

	// Correct the outcome and finalize again.
	snap, err = SetScore(snap, id, models.SideB, 23)
	require.NoError(t, err)
	snap, err = EndMatch(snap, id, "")
	require.NoError(t, err)

	m := snap.Matches[0]
	require.NotNil(t, m.Winner)
	assert.Equal(t, m.TeamB.ID, m.Winner.ID)
	require.Len(t, m.Games, 1)
	assert.Equal(t, models.GameScore{TeamA: 21, TeamB: 23}, m.Games[0])
}
