package service

import (
	"fmt"
	"sort"
	"sync"

	"github.com/b-c-lucas/sleeper-end-of-season-matchup-totals/internal/models"
)

// Fetcher is the slice of the Sleeper API the pipeline consumes.
// Satisfied by *sleeper.API.
type Fetcher interface {
	FetchUsersByID() (map[string]models.User, error)
	FetchRostersByID() (map[int]models.Roster, error)
	FetchMatchups(week int) ([]models.MatchupEntry, error)
	FetchPlayers() (map[string]models.Player, error)
}

// LeagueData is everything one run needs, fully fetched. Weeks is
// sorted ascending by week number.
type LeagueData struct {
	UsersByID   map[string]models.User
	RostersByID map[int]models.Roster
	PlayersByID map[string]models.Player
	Weeks       []models.WeekMatchups
}

// Coordinator issues fetches in two waves: first the league-wide
// collections, then one matchup fetch per week. Each task writes only
// its own result slot, so the barrier is the only synchronization
// needed.
type Coordinator struct {
	fetcher Fetcher
}

func NewCoordinator(fetcher Fetcher) *Coordinator {
	return &Coordinator{fetcher: fetcher}
}

func (c *Coordinator) Fetch(startWeek, endWeek int, needPlayers bool) (*LeagueData, error) {
	if startWeek < 1 || endWeek < startWeek {
		return nil, fmt.Errorf("weeks %d-%d: %w", startWeek, endWeek, ErrWeekRange)
	}

	data := &LeagueData{}

	var wg sync.WaitGroup
	var usersErr, rostersErr, playersErr error

	wg.Add(3)
	go func() {
		defer wg.Done()
		data.UsersByID, usersErr = c.fetcher.FetchUsersByID()
	}()
	go func() {
		defer wg.Done()
		data.RostersByID, rostersErr = c.fetcher.FetchRostersByID()
	}()
	go func() {
		defer wg.Done()
		if !needPlayers {
			// Starter projection is off, so skip the expensive
			// directory download entirely.
			data.PlayersByID = map[string]models.Player{}
			return
		}
		data.PlayersByID, playersErr = c.fetcher.FetchPlayers()
	}()
	wg.Wait()

	for _, err := range []error{usersErr, rostersErr, playersErr} {
		if err != nil {
			return nil, err
		}
	}

	weeks, err := c.fetchWeeks(startWeek, endWeek)
	if err != nil {
		return nil, err
	}
	data.Weeks = weeks

	return data, nil
}

func (c *Coordinator) fetchWeeks(startWeek, endWeek int) ([]models.WeekMatchups, error) {
	type weekResult struct {
		week     int
		matchups []models.MatchupEntry
		err      error
	}

	count := endWeek - startWeek + 1
	results := make(chan weekResult, count)

	for week := startWeek; week <= endWeek; week++ {
		go func(week int) {
			matchups, err := c.fetcher.FetchMatchups(week)
			results <- weekResult{week: week, matchups: matchups, err: err}
		}(week)
	}

	weeks := make([]models.WeekMatchups, 0, count)
	var firstErr error
	for i := 0; i < count; i++ {
		result := <-results
		if result.err != nil {
			if firstErr == nil {
				firstErr = result.err
			}
			continue
		}
		weeks = append(weeks, models.WeekMatchups{Week: result.week, Matchups: result.matchups})
	}
	if firstErr != nil {
		return nil, firstErr
	}

	// Fetches complete in network order. The aggregator indexes each
	// series by position, so the weeks must be re-sorted before handoff.
	sort.Slice(weeks, func(i, j int) bool {
		return weeks[i].Week < weeks[j].Week
	})

	return weeks, nil
}
