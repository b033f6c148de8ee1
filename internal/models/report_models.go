package models

import "time"

// WeekMatchups pairs a week number with that week's matchup entries.
type WeekMatchups struct {
	Week     int
	Matchups []MatchupEntry
}

// ReportRow is one ranked line of the season report. WeeklyScores holds
// the rounded per-week effective scores in week order.
type ReportRow struct {
	RosterID     int
	TeamName     string
	UserName     string
	Total        float64
	WeeklyScores []float64
}

// SeasonReport is a computed ranking for a week range, cached by the
// bot between commands.
type SeasonReport struct {
	StartWeek   int
	EndWeek     int
	Rows        []ReportRow
	LastUpdated time.Time
}

// PlayerDirectory caches the full NFL player listing, which is a large
// download the bot should not repeat per command.
type PlayerDirectory struct {
	PlayersByID map[string]Player
	LastUpdated time.Time
}
