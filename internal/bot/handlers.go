package bot

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/b-c-lucas/sleeper-end-of-season-matchup-totals/internal/config"
	"github.com/b-c-lucas/sleeper-end-of-season-matchup-totals/internal/service"
)

type Handler struct {
	totalsService *service.TotalsService
	sleeperCfg    config.Sleeper
}

func NewHandler(totalsService *service.TotalsService, sleeperCfg config.Sleeper) *Handler {
	return &Handler{totalsService: totalsService, sleeperCfg: sleeperCfg}
}

func (h *Handler) HandleCommand(update tgbotapi.Update) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	command := strings.ToLower(update.Message.Command())
	args := update.Message.CommandArguments()

	switch command {
	case "start":
		msg.Text = "Welcome! Use /help to see available commands."
	case "help":
		msg.Text = "Available commands:\n/totals [start end] - Season totals for all teams\n/team <team> - One team's season total"
	case "totals":
		h.handleTotals(&msg, args)
	case "team":
		h.handleTeam(&msg, args)
	default:
		msg.Text = "Unknown command. Use /help to see available commands."
	}

	return msg
}

func (h *Handler) handleTotals(msg *tgbotapi.MessageConfig, args string) {
	startWeek, endWeek, err := h.weekRange(args)
	if err != nil {
		msg.Text = fmt.Sprintf("Bad week range: %v. Usage: /totals [start end]", err)
		return
	}

	report, err := h.totalsService.SeasonTotals(startWeek, endWeek, service.DebugOptions{})
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching season totals: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handleTeam(msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please provide a team name. Usage: /team <team name>"
		return
	}

	result, err := h.totalsService.TeamTotal(args, h.sleeperCfg.StartWeek, h.sleeperCfg.EndWeek)
	if err != nil {
		msg.Text = fmt.Sprintf("Error getting team total: %v", err)
	} else {
		msg.Text = result
	}
}

// weekRange parses an optional "start end" argument pair, defaulting
// to the configured season bounds.
func (h *Handler) weekRange(args string) (int, int, error) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return h.sleeperCfg.StartWeek, h.sleeperCfg.EndWeek, nil
	}
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected two week numbers, got %d", len(fields))
	}

	startWeek, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("start week %q: %w", fields[0], err)
	}
	endWeek, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("end week %q: %w", fields[1], err)
	}

	return startWeek, endWeek, nil
}
