package service

import (
	"fmt"
	"io"

	"github.com/b-c-lucas/sleeper-end-of-season-matchup-totals/internal/models"
)

// DebugOptions select which (week, roster) pairs to dump during
// aggregation. Week and RosterID of 0 mean "not set"; Sleeper weeks
// and roster IDs start at 1.
type DebugOptions struct {
	AllWeeks   bool
	Week       int
	AllRosters bool
	RosterID   int
	Starters   bool
}

// WeekSelected reports whether any week-level debugging was requested,
// which also switches the report rows to include the full series.
func (o DebugOptions) WeekSelected() bool {
	return o.AllWeeks || o.Week != 0
}

// RosterSelected reports whether any roster-level debugging was
// requested, which adds roster IDs to the report rows.
func (o DebugOptions) RosterSelected() bool {
	return o.AllRosters || o.RosterID != 0
}

func (o DebugOptions) matches(week, rosterID int) bool {
	weekMatch := o.AllWeeks || o.Week == week
	rosterMatch := o.AllRosters || o.RosterID == rosterID
	return weekMatch && rosterMatch
}

// Projector writes raw matchup entries for the selected (week, roster)
// pairs, resolving starters against the player directory when asked.
type Projector struct {
	opts    DebugOptions
	players map[string]models.Player
	out     io.Writer
}

func NewProjector(opts DebugOptions, players map[string]models.Player, out io.Writer) *Projector {
	return &Projector{opts: opts, players: players, out: out}
}

func (p *Projector) Project(week int, entry models.MatchupEntry) error {
	if !p.opts.matches(week, entry.RosterID) {
		return nil
	}

	fmt.Fprintf(p.out, "week=%d; matchup=%+v\n", week, entry)

	if !p.opts.Starters {
		return nil
	}

	for _, starterID := range entry.Starters {
		player, ok := p.players[starterID]
		if !ok {
			return fmt.Errorf("week %d: roster %d: starter %q: %w", week, entry.RosterID, starterID, ErrUnknownPlayer)
		}
		fmt.Fprintf(p.out, "%s %s (%s)\n", player.FirstName, player.LastName, player.Team)
	}

	return nil
}
