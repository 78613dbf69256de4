package models

// LeaderboardEntry is a derived standings row. It is recomputed from teams,
// groups and completed matches on every request and never stored.
type LeaderboardEntry struct {
	TeamID          string   `json:"teamId"`
	TeamName        string   `json:"teamName"`
	Category        Category `json:"category"`
	GroupID         *string  `json:"groupId,omitempty"`
	GroupName       *string  `json:"groupName,omitempty"`
	Played          int      `json:"played"`
	Wins            int      `json:"wins"`
	Losses          int      `json:"losses"`
	PointsFor       int      `json:"pointsFor"`
	PointsAgainst   int      `json:"pointsAgainst"`
	PointDifference int      `json:"pointDifference"`
}
