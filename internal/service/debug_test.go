package service_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/b-c-lucas/sleeper-end-of-season-matchup-totals/internal/models"
	"github.com/b-c-lucas/sleeper-end-of-season-matchup-totals/internal/service"
)

func TestProjector(t *testing.T) {
	Convey("Given entries for two rosters across two weeks", t, func() {
		entries := []struct {
			week  int
			entry models.MatchupEntry
		}{
			{1, models.MatchupEntry{RosterID: 1, Points: 10.0, Starters: []string{"123"}}},
			{1, models.MatchupEntry{RosterID: 2, Points: 12.5, Starters: []string{"456"}}},
			{2, models.MatchupEntry{RosterID: 1, Points: 8.25, Starters: []string{"123"}}},
			{2, models.MatchupEntry{RosterID: 2, Points: 3.33, Starters: []string{"456"}}},
		}
		players := map[string]models.Player{
			"123": {PlayerID: "123", FirstName: "Justin", LastName: "Jefferson", Team: "MIN"},
			"456": {PlayerID: "456", FirstName: "Josh", LastName: "Allen", Team: "BUF"},
		}

		project := func(projector *service.Projector) error {
			for _, e := range entries {
				if err := projector.Project(e.week, e.entry); err != nil {
					return err
				}
			}
			return nil
		}

		Convey("When an exact week and roster are selected", func() {
			var buf bytes.Buffer
			projector := service.NewProjector(service.DebugOptions{Week: 1, RosterID: 1}, players, &buf)

			So(project(projector), ShouldBeNil)

			Convey("Then exactly one entry is dumped", func() {
				lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
				So(lines, ShouldHaveLength, 1)
				So(lines[0], ShouldStartWith, "week=1;")
				So(lines[0], ShouldContainSubstring, "RosterID:1")
			})
		})

		Convey("When all weeks and all rosters are selected", func() {
			var buf bytes.Buffer
			projector := service.NewProjector(service.DebugOptions{AllWeeks: true, AllRosters: true}, players, &buf)

			So(project(projector), ShouldBeNil)

			lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
			So(lines, ShouldHaveLength, 4)
		})

		Convey("When only a week is selected without a roster", func() {
			var buf bytes.Buffer
			projector := service.NewProjector(service.DebugOptions{Week: 1}, players, &buf)

			So(project(projector), ShouldBeNil)

			Convey("Then nothing is dumped", func() {
				So(buf.String(), ShouldBeEmpty)
			})
		})

		Convey("When starter projection is on", func() {
			var buf bytes.Buffer
			opts := service.DebugOptions{Week: 1, RosterID: 1, Starters: true}
			projector := service.NewProjector(opts, players, &buf)

			So(project(projector), ShouldBeNil)

			Convey("Then starters resolve to name and team", func() {
				So(buf.String(), ShouldContainSubstring, "Justin Jefferson (MIN)")
				So(buf.String(), ShouldNotContainSubstring, "Josh Allen")
			})
		})

		Convey("When a starter is missing from the directory", func() {
			var buf bytes.Buffer
			opts := service.DebugOptions{AllWeeks: true, AllRosters: true, Starters: true}
			projector := service.NewProjector(opts, map[string]models.Player{}, &buf)

			err := project(projector)

			Convey("Then projection fails naming the starter", func() {
				So(errors.Is(err, service.ErrUnknownPlayer), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, `"123"`)
			})
		})
	})
}
