package service

import "errors"

// Faults that terminate a run. All are wrapped with the offending
// identifier so callers can both match with errors.Is and report the
// culprit.
var (
	// ErrWeekRange covers invalid week bounds from flags or config.
	ErrWeekRange = errors.New("invalid week range")

	// ErrUnknownRoster means a matchup entry referenced a roster ID
	// missing from the league's roster set.
	ErrUnknownRoster = errors.New("matchup references unknown roster")

	// ErrUnknownOwner means a roster's owner ID resolved to no user.
	ErrUnknownOwner = errors.New("roster references unknown owner")

	// ErrUnknownPlayer means a starter ID was absent from the player
	// directory during debug projection.
	ErrUnknownPlayer = errors.New("starter references unknown player")

	// ErrTeamNotFound means no team name came close enough to a lookup
	// query.
	ErrTeamNotFound = errors.New("team not found")
)
