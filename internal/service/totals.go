package service

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/b-c-lucas/sleeper-end-of-season-matchup-totals/internal/models"
	"github.com/b-c-lucas/sleeper-end-of-season-matchup-totals/internal/repository/memory"
)

const (
	reportTTL  = time.Hour
	playersTTL = 24 * time.Hour

	matchThreshold = 0.6
)

// TotalsService runs the fetch-aggregate-rank pipeline and formats the
// results. The repository is optional; the one-shot CLI passes nil and
// always fetches fresh.
type TotalsService struct {
	coordinator *Coordinator
	repo        *memory.Repository
	debugOut    io.Writer
}

func NewTotalsService(fetcher Fetcher, repo *memory.Repository, debugOut io.Writer) *TotalsService {
	return &TotalsService{
		coordinator: NewCoordinator(fetcher),
		repo:        repo,
		debugOut:    debugOut,
	}
}

// SeasonTotals returns the ranked report for the week range, one line
// per roster.
func (s *TotalsService) SeasonTotals(startWeek, endWeek int, opts DebugOptions) (string, error) {
	rows, err := s.rankedRows(startWeek, endWeek, opts)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(FormatRow(row, opts))
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// TeamTotal looks up a single team's season total by approximate team
// or owner name.
func (s *TotalsService) TeamTotal(teamName string, startWeek, endWeek int) (string, error) {
	rows, err := s.rankedRows(startWeek, endWeek, DebugOptions{})
	if err != nil {
		return "", err
	}

	var bestMatch *models.ReportRow
	bestRank := 0
	bestSimilarity := 0.0

	for i := range rows {
		for _, candidate := range []string{rows[i].TeamName, rows[i].UserName} {
			distance := fuzzy.LevenshteinDistance(strings.ToLower(teamName), strings.ToLower(candidate))
			maxLen := float64(max(len(teamName), len(candidate)))
			similarity := 1 - float64(distance)/maxLen

			if similarity > matchThreshold && similarity > bestSimilarity {
				bestSimilarity = similarity
				bestMatch = &rows[i]
				bestRank = i + 1
			}
		}
	}

	if bestMatch == nil {
		return "", fmt.Errorf("%q: %w", teamName, ErrTeamNotFound)
	}

	return fmt.Sprintf("#%d %s (@%s): %.2f over weeks %d-%d",
		bestRank, bestMatch.TeamName, bestMatch.UserName, bestMatch.Total, startWeek, endWeek), nil
}

func (s *TotalsService) rankedRows(startWeek, endWeek int, opts DebugOptions) ([]models.ReportRow, error) {
	cacheable := opts == (DebugOptions{}) && s.repo != nil
	if cacheable {
		if report := s.repo.GetReport(); report != nil &&
			report.StartWeek == startWeek && report.EndWeek == endWeek &&
			time.Since(report.LastUpdated) < reportTTL {
			return report.Rows, nil
		}
	}

	needPlayers := opts.Starters
	var cachedPlayers map[string]models.Player
	if needPlayers && s.repo != nil {
		if directory := s.repo.GetPlayers(); directory != nil && time.Since(directory.LastUpdated) < playersTTL {
			cachedPlayers = directory.PlayersByID
			needPlayers = false
		}
	}

	data, err := s.coordinator.Fetch(startWeek, endWeek, needPlayers)
	if err != nil {
		return nil, err
	}

	if cachedPlayers != nil {
		data.PlayersByID = cachedPlayers
	} else if needPlayers && s.repo != nil {
		s.repo.SavePlayers(&models.PlayerDirectory{
			PlayersByID: data.PlayersByID,
			LastUpdated: time.Now(),
		})
	}

	slog.Info("Fetched league data",
		"users", len(data.UsersByID),
		"rosters", len(data.RostersByID),
		"weeks", len(data.Weeks))

	projector := NewProjector(opts, data.PlayersByID, s.debugOut)

	weeklyScores, totals, err := Aggregate(data.Weeks, data.RostersByID, projector)
	if err != nil {
		return nil, err
	}

	rows, err := BuildReport(weeklyScores, totals, data.RostersByID, data.UsersByID)
	if err != nil {
		return nil, err
	}

	if cacheable {
		s.repo.SaveReport(&models.SeasonReport{
			StartWeek:   startWeek,
			EndWeek:     endWeek,
			Rows:        rows,
			LastUpdated: time.Now(),
		})
	}

	return rows, nil
}
