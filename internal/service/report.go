package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/b-c-lucas/sleeper-end-of-season-matchup-totals/internal/models"
)

// resolveTeamName prefers the custom team name a user set in their
// league metadata, falling back to "Team <display name>".
func resolveTeamName(user models.User) string {
	if user.Metadata != nil && user.Metadata.TeamName != "" {
		return user.Metadata.TeamName
	}
	return "Team " + user.DisplayName
}

// BuildReport joins totals back to owners and ranks by total score
// descending. Rows are seeded in ascending roster-ID order and sorted
// stably, so equal totals keep a deterministic order.
func BuildReport(weeklyScores map[int][]float64, totals map[int]float64, rostersByID map[int]models.Roster, usersByID map[string]models.User) ([]models.ReportRow, error) {
	rosterIDs := make([]int, 0, len(totals))
	for rosterID := range totals {
		rosterIDs = append(rosterIDs, rosterID)
	}
	sort.Ints(rosterIDs)

	rows := make([]models.ReportRow, 0, len(rosterIDs))
	for _, rosterID := range rosterIDs {
		roster := rostersByID[rosterID]

		user, ok := usersByID[roster.OwnerID]
		if !ok {
			return nil, fmt.Errorf("roster %d: owner %q: %w", rosterID, roster.OwnerID, ErrUnknownOwner)
		}

		rows = append(rows, models.ReportRow{
			RosterID:     rosterID,
			TeamName:     resolveTeamName(user),
			UserName:     user.DisplayName,
			Total:        totals[rosterID],
			WeeklyScores: weeklyScores[rosterID],
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total > rows[j].Total
	})

	return rows, nil
}

// FormatRow renders one report line: "Team (@user): 123.45", with the
// weekly series and roster ID appended under the matching debug flags.
func FormatRow(row models.ReportRow, opts DebugOptions) string {
	parts := []string{
		row.TeamName,
		fmt.Sprintf("(@%s):", row.UserName),
		fmt.Sprintf("%.2f", row.Total),
	}

	if opts.WeekSelected() {
		scores := make([]string, len(row.WeeklyScores))
		for i, score := range row.WeeklyScores {
			scores[i] = fmt.Sprintf("%.2f", score)
		}
		parts = append(parts, "["+strings.Join(scores, " ")+"]")
	}

	if opts.RosterSelected() {
		parts = append(parts, fmt.Sprintf("(roster ID: %d)", row.RosterID))
	}

	return strings.Join(parts, " ")
}
