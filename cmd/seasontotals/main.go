package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/b-c-lucas/sleeper-end-of-season-matchup-totals/internal/api/sleeper"
	"github.com/b-c-lucas/sleeper-end-of-season-matchup-totals/internal/config"
	"github.com/b-c-lucas/sleeper-end-of-season-matchup-totals/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running season totals", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	cfg, err := config.NewSleeper()
	if err != nil {
		return err
	}

	leagueID := flag.String("league-id", cfg.LeagueID, "The ID of the Sleeper league.")
	startWeek := flag.Int("start-week", cfg.StartWeek, "The # of week to start counting.")
	endWeek := flag.Int("end-week", cfg.EndWeek, "The # of week to end counting.")
	debugAllWeeks := flag.Bool("debug-all-weeks", false, "Whether to display debug info for all weeks during execution.")
	debugWeek := flag.Int("debug-week", 0, "The week # to debug, if provided.")
	debugAllRosters := flag.Bool("debug-all-rosters", false, "Whether to display debug info for all rosters during execution.")
	debugRosterID := flag.Int("debug-roster-id", 0, "The ID of the roster to debug, if provided.")
	debugStarters := flag.Bool("debug-starters", false, "Whether to display debug info about starting players during execution.")
	flag.Parse()

	if *leagueID == "" {
		return errors.New("league ID required (-league-id flag or SLEEPER_LEAGUE_ID)")
	}

	client := sleeper.NewClient()
	api := sleeper.NewAPI(client, *leagueID)
	totalsService := service.NewTotalsService(api, nil, os.Stdout)

	report, err := totalsService.SeasonTotals(*startWeek, *endWeek, service.DebugOptions{
		AllWeeks:   *debugAllWeeks,
		Week:       *debugWeek,
		AllRosters: *debugAllRosters,
		RosterID:   *debugRosterID,
		Starters:   *debugStarters,
	})
	if err != nil {
		return err
	}

	fmt.Print(report)
	return nil
}
