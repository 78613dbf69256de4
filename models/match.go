package models

// MatchStatus follows the scheduled → in-progress → completed lifecycle,
// with completed → in-progress allowed as a reopen.
type MatchStatus string

const (
	MatchScheduled  MatchStatus = "scheduled"
	MatchInProgress MatchStatus = "in-progress"
	MatchCompleted  MatchStatus = "completed"
)

// TeamSide names one side of a match in score updates.
type TeamSide string

const (
	SideA TeamSide = "teamA"
	SideB TeamSide = "teamB"
)

func (s TeamSide) Valid() bool {
	return s == SideA || s == SideB
}

type Score struct {
	TeamA int `json:"teamA"`
	TeamB int `json:"teamB"`
}

// GameScore is the final score of one finished game.
type GameScore struct {
	TeamA int `json:"teamA"`
	TeamB int `json:"teamB"`
}

// Match is a fixture between two teams of the same group. Winner is set only
// while the match is completed.
type Match struct {
	ID     string      `json:"id"`
	TeamA  Team        `json:"teamA"`
	TeamB  Team        `json:"teamB"`
	Score  Score       `json:"score"`
	Games  []GameScore `json:"games"`
	Status MatchStatus `json:"status"`
	Winner *Team       `json:"winner,omitempty"`
}

func (m Match) Involves(teamID string) bool {
	return m.TeamA.ID == teamID || m.TeamB.ID == teamID
}

// ReachedGamePoint reports whether either side has reached the configured
// points-per-game threshold. The lifecycle does not gate EndMatch on it
// (early stoppage is legal); callers use it to drive their confirm step.
func (m Match) ReachedGamePoint(pointsPerGame int) bool {
	if pointsPerGame <= 0 {
		return false
	}
	return m.Score.TeamA >= pointsPerGame || m.Score.TeamB >= pointsPerGame
}
