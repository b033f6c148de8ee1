package service

import (
	"fmt"
	"math"

	"github.com/b-c-lucas/sleeper-end-of-season-matchup-totals/internal/models"
)

// roundScore rounds to two decimals, half away from zero.
func roundScore(score float64) float64 {
	return math.Round(score*100) / 100
}

// effectiveScore prefers a commissioner override when one is set and
// non-zero.
func effectiveScore(entry models.MatchupEntry) float64 {
	if entry.CustomPoints != nil && *entry.CustomPoints != 0 {
		return *entry.CustomPoints
	}
	return entry.Points
}

// Aggregate folds week-ordered matchups into per-roster weekly score
// series and season totals. Every roster in the league gets a series,
// including rosters with no matchup entries in the range. Weekly
// entries are rounded individually and the total is rounded again
// after summing; Sleeper's own standings arithmetic works on
// two-decimal values, so the double rounding is kept.
func Aggregate(weeks []models.WeekMatchups, rostersByID map[int]models.Roster, projector *Projector) (map[int][]float64, map[int]float64, error) {
	weeklyScores := make(map[int][]float64, len(rostersByID))
	for rosterID := range rostersByID {
		weeklyScores[rosterID] = []float64{}
	}

	for _, week := range weeks {
		for _, entry := range week.Matchups {
			if _, ok := rostersByID[entry.RosterID]; !ok {
				return nil, nil, fmt.Errorf("week %d: roster %d: %w", week.Week, entry.RosterID, ErrUnknownRoster)
			}

			score := roundScore(effectiveScore(entry))
			weeklyScores[entry.RosterID] = append(weeklyScores[entry.RosterID], score)

			if projector != nil {
				if err := projector.Project(week.Week, entry); err != nil {
					return nil, nil, err
				}
			}
		}
	}

	totals := make(map[int]float64, len(weeklyScores))
	for rosterID, scores := range weeklyScores {
		var sum float64
		for _, score := range scores {
			sum += score
		}
		totals[rosterID] = roundScore(sum)
	}

	return weeklyScores, totals, nil
}
