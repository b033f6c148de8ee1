package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/b-c-lucas/sleeper-end-of-season-matchup-totals/internal/api/sleeper"
	"github.com/b-c-lucas/sleeper-end-of-season-matchup-totals/internal/bot"
	"github.com/b-c-lucas/sleeper-end-of-season-matchup-totals/internal/config"
	"github.com/b-c-lucas/sleeper-end-of-season-matchup-totals/internal/repository/memory"
	"github.com/b-c-lucas/sleeper-end-of-season-matchup-totals/internal/scheduler"
	"github.com/b-c-lucas/sleeper-end-of-season-matchup-totals/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Error("Error loading .env file", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}
	if cfg.Sleeper.LeagueID == "" {
		return errors.New("SLEEPER_LEAGUE_ID is required")
	}

	client := sleeper.NewClient()
	api := sleeper.NewAPI(client, cfg.Sleeper.LeagueID)

	repo := memory.NewRepository()
	totalsService := service.NewTotalsService(api, repo, io.Discard)

	telegramBot, err := bot.NewTelegramBot(cfg.TelegramBot.Token, cfg.TelegramBot.ChatID, totalsService, cfg.Sleeper)
	if err != nil {
		return err
	}

	sched, err := scheduler.NewScheduler(totalsService, cfg.Sleeper, telegramBot.SendMessage)
	if err != nil {
		return err
	}

	if err := sched.Start(); err != nil {
		return err
	}
	defer func() {
		err := sched.Stop()
		if err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()

	http.HandleFunc("/", healthCheckHandler)

	go func() {
		if err := http.ListenAndServe(":80", nil); err != nil {
			slog.Error("Error starting HTTP server", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := telegramBot.Start(ctx); err != nil {
			slog.Error("Error running telegram bot", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	return nil
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
