package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/b-c-lucas/sleeper-end-of-season-matchup-totals/internal/config"
	"github.com/b-c-lucas/sleeper-end-of-season-matchup-totals/internal/service"
)

type Scheduler struct {
	s             gocron.Scheduler
	totalsService *service.TotalsService
	sleeperCfg    config.Sleeper
	sendMessage   func(string) error
}

func NewScheduler(totalsService *service.TotalsService, sleeperCfg config.Sleeper, sendMessage func(string) error) (*Scheduler, error) {
	location, err := time.LoadLocation("America/Chicago") // CDT
	if err != nil {
		slog.Error("Failed to load location", "error", err)
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:             s,
		totalsService: totalsService,
		sleeperCfg:    sleeperCfg,
		sendMessage:   sendMessage,
	}, nil
}

func (s *Scheduler) Start() error {
	// Season totals - Tuesday 7:30 CDT, after Monday night scores settle
	_, err := s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Tuesday), gocron.NewAtTimes(gocron.NewAtTime(7, 30, 0))),
		gocron.NewTask(s.sendSeasonTotals),
	)
	if err != nil {
		return fmt.Errorf("failed to create season totals job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) sendSeasonTotals() {
	report, err := s.totalsService.SeasonTotals(s.sleeperCfg.StartWeek, s.sleeperCfg.EndWeek, service.DebugOptions{})
	if err != nil {
		slog.Error("Failed to get season totals", "error", err)
		return
	}
	s.sendMessage(report)
}
