package engine

import (
	"github.com/Kishore8899/badminton-tournament-scorer/models"
)

// SetScore sets one side's score on a live match. Negative input clamps to
// zero. The first score mutation moves a scheduled match to in-progress.
// Scoring a completed match is rejected; the match must be reopened first.
func SetScore(snap models.Snapshot, matchID string, side models.TeamSide, score int) (models.Snapshot, error) {
	if !side.Valid() {
		return snap, ErrTeamSideInvalid
	}
	idx := snap.FindMatch(matchID)
	if idx < 0 {
		return snap, ErrMatchNotFound
	}
	if snap.Matches[idx].Status == models.MatchCompleted {
		return snap, ErrMatchCompleted
	}

	if score < 0 {
		score = 0
	}

	next := snap
	next.Matches = append([]models.Match{}, snap.Matches...)
	m := &next.Matches[idx]
	if side == models.SideA {
		m.Score.TeamA = score
	} else {
		m.Score.TeamB = score
	}
	m.Status = models.MatchInProgress
	return next, nil
}

// EndMatch completes a match. The winner is derived from the score; a tie
// can never be finalized. When the caller names a winner it must be one of
// the two sides and must agree with the score, otherwise the call is
// rejected. The final score is appended to the match's game history.
func EndMatch(snap models.Snapshot, matchID string, winnerTeamID string) (models.Snapshot, error) {
	idx := snap.FindMatch(matchID)
	if idx < 0 {
		return snap, ErrMatchNotFound
	}
	current := snap.Matches[idx]
	if current.Status == models.MatchCompleted {
		return snap, ErrMatchCompleted
	}
	if current.Score.TeamA == current.Score.TeamB {
		return snap, ErrTieNotCompletable
	}

	winner := current.TeamA
	if current.Score.TeamB > current.Score.TeamA {
		winner = current.TeamB
	}
	if winnerTeamID != "" && winnerTeamID != winner.ID {
		return snap, ErrWinnerMismatch
	}

	next := snap
	next.Matches = append([]models.Match{}, snap.Matches...)
	m := &next.Matches[idx]
	m.Status = models.MatchCompleted
	m.Winner = &winner
	m.Games = append(append([]models.GameScore{}, current.Games...), models.GameScore{
		TeamA: current.Score.TeamA,
		TeamB: current.Score.TeamB,
	})
	return next, nil
}

// ReopenMatch takes a completed match back to in-progress: the winner is
// cleared, the score is preserved, and the game entry recorded at completion
// is withdrawn. A match that is not completed is left as is.
func ReopenMatch(snap models.Snapshot, matchID string) (models.Snapshot, error) {
	idx := snap.FindMatch(matchID)
	if idx < 0 {
		return snap, ErrMatchNotFound
	}
	if snap.Matches[idx].Status != models.MatchCompleted {
		return snap, nil
	}

	next := snap
	next.Matches = append([]models.Match{}, snap.Matches...)
	m := &next.Matches[idx]
	m.Status = models.MatchInProgress
	m.Winner = nil
	if n := len(m.Games); n > 0 {
		m.Games = append([]models.GameScore{}, m.Games[:n-1]...)
	}
	return next, nil
}
