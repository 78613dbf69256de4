package models

// ScoringRules holds the per-game scoring configuration.
type ScoringRules struct {
	PointsPerGame int `json:"pointsPerGame"`
}

// Tournament is the configuration record for one tournament session.
// Dates are kept as ISO date strings (YYYY-MM-DD), matching the interchange
// document format.
type Tournament struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	StartDate    string       `json:"startDate"`
	EndDate      string       `json:"endDate"`
	Categories   []Category   `json:"categories"`
	ScoringRules ScoringRules `json:"scoringRules"`
}
