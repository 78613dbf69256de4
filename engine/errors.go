package engine

import "errors"

// Sentinel errors shared by the engine and the layers above it. Handlers map
// these to HTTP statuses; everything else wraps them with context.
var (
	// Not found
	ErrPlayerNotFound     = errors.New("player not found")
	ErrTeamNotFound       = errors.New("team not found")
	ErrGroupNotFound      = errors.New("group not found")
	ErrMatchNotFound      = errors.New("match not found")
	ErrTournamentNotFound = errors.New("tournament details not found")

	// Validation and business rules
	ErrNameRequired          = errors.New("name is required")
	ErrCategoryInvalid       = errors.New("unknown category")
	ErrTeamSizeMismatch      = errors.New("player count does not match category")
	ErrDuplicateTeamPlayer   = errors.New("a doubles team needs two distinct players")
	ErrPlayerAlreadyRostered = errors.New("player already belongs to a team")
	ErrGroupCountInvalid     = errors.New("number of groups must be a positive integer")
	ErrTeamSideInvalid       = errors.New("team side must be teamA or teamB")
	ErrTieNotCompletable     = errors.New("tie cannot be completed")
	ErrWinnerMismatch        = errors.New("winner does not match the match score")
	ErrPointsPerGameInvalid  = errors.New("points per game must be a positive integer")
	ErrDateRangeInvalid      = errors.New("end date must not be before start date")
	ErrCategoriesRequired    = errors.New("at least one category is required")
	ErrSnapshotInvalid       = errors.New("snapshot failed integrity check")

	// State machine
	ErrMatchCompleted = errors.New("match is already completed")
)
