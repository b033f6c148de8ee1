package sleeper_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/b-c-lucas/sleeper-end-of-season-matchup-totals/internal/api/sleeper"
)

func TestAPI(t *testing.T) {
	Convey("Given a Sleeper server", t, func() {
		mux := http.NewServeMux()
		mux.HandleFunc("/league/L1/users", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[
				{"user_id": "u1", "display_name": "alice"},
				{"user_id": "u2", "display_name": "bob", "metadata": {"team_name": "Gridiron Gang"}}
			]`))
		})
		mux.HandleFunc("/league/L1/rosters", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[
				{"roster_id": 1, "owner_id": "u1"},
				{"roster_id": 2, "owner_id": "u2"}
			]`))
		})
		mux.HandleFunc("/league/L1/matchups/3", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[
				{"roster_id": 1, "matchup_id": 1, "points": 101.52, "starters": ["123", "SF"]},
				{"roster_id": 2, "matchup_id": 1, "points": 88.1, "custom_points": 90.0}
			]`))
		})
		mux.HandleFunc("/players/nfl", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{
				"123": {"player_id": "123", "first_name": "Justin", "last_name": "Jefferson", "team": "MIN", "position": "WR"}
			}`))
		})

		server := httptest.NewServer(mux)
		Reset(server.Close)

		api := sleeper.NewAPI(sleeper.NewClientWithBaseURL(server.URL), "L1")

		Convey("When fetching users", func() {
			users, err := api.FetchUsersByID()

			Convey("Then they are keyed by user ID", func() {
				So(err, ShouldBeNil)
				So(users, ShouldHaveLength, 2)
				So(users["u1"].DisplayName, ShouldEqual, "alice")
				So(users["u1"].Metadata, ShouldBeNil)
				So(users["u2"].Metadata.TeamName, ShouldEqual, "Gridiron Gang")
			})
		})

		Convey("When fetching rosters", func() {
			rosters, err := api.FetchRostersByID()

			Convey("Then they are keyed by roster ID", func() {
				So(err, ShouldBeNil)
				So(rosters, ShouldHaveLength, 2)
				So(rosters[2].OwnerID, ShouldEqual, "u2")
			})
		})

		Convey("When fetching a week's matchups", func() {
			matchups, err := api.FetchMatchups(3)

			Convey("Then optional fields survive decoding", func() {
				So(err, ShouldBeNil)
				So(matchups, ShouldHaveLength, 2)
				So(matchups[0].CustomPoints, ShouldBeNil)
				So(matchups[0].Starters, ShouldResemble, []string{"123", "SF"})
				So(matchups[1].CustomPoints, ShouldNotBeNil)
				So(*matchups[1].CustomPoints, ShouldEqual, 90.0)
			})
		})

		Convey("When fetching the player directory", func() {
			players, err := api.FetchPlayers()

			So(err, ShouldBeNil)
			So(players["123"].LastName, ShouldEqual, "Jefferson")
			So(players["123"].Team, ShouldEqual, "MIN")
		})

		Convey("When a week has no matchups endpoint", func() {
			_, err := api.FetchMatchups(19)

			Convey("Then the status failure surfaces", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "unexpected status code: 404")
			})
		})
	})

	Convey("Given a server returning malformed JSON", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{not json`))
		}))
		Reset(server.Close)

		api := sleeper.NewAPI(sleeper.NewClientWithBaseURL(server.URL), "L1")

		Convey("When fetching users", func() {
			_, err := api.FetchUsersByID()

			Convey("Then the decode failure surfaces", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "error decoding response")
			})
		})
	})
}
