package sleeper

import (
	"fmt"

	"github.com/b-c-lucas/sleeper-end-of-season-matchup-totals/internal/models"
)

type API struct {
	client   *Client
	leagueID string
}

func NewAPI(client *Client, leagueID string) *API {
	return &API{client: client, leagueID: leagueID}
}

func (a *API) FetchUsersByID() (map[string]models.User, error) {
	var users []models.User
	endpoint := fmt.Sprintf("/league/%s/users", a.leagueID)

	if err := a.client.Get(endpoint, &users); err != nil {
		return nil, fmt.Errorf("fetching league users: %w", err)
	}

	usersByID := make(map[string]models.User, len(users))
	for _, user := range users {
		usersByID[user.UserID] = user
	}

	return usersByID, nil
}

func (a *API) FetchRostersByID() (map[int]models.Roster, error) {
	var rosters []models.Roster
	endpoint := fmt.Sprintf("/league/%s/rosters", a.leagueID)

	if err := a.client.Get(endpoint, &rosters); err != nil {
		return nil, fmt.Errorf("fetching league rosters: %w", err)
	}

	rostersByID := make(map[int]models.Roster, len(rosters))
	for _, roster := range rosters {
		rostersByID[roster.RosterID] = roster
	}

	return rostersByID, nil
}

func (a *API) FetchMatchups(week int) ([]models.MatchupEntry, error) {
	var matchups []models.MatchupEntry
	endpoint := fmt.Sprintf("/league/%s/matchups/%d", a.leagueID, week)

	if err := a.client.Get(endpoint, &matchups); err != nil {
		return nil, fmt.Errorf("fetching week %d matchups: %w", week, err)
	}

	return matchups, nil
}

// FetchPlayers pulls the full NFL player directory. The response is
// already keyed by player ID, so it decodes straight into a map.
func (a *API) FetchPlayers() (map[string]models.Player, error) {
	var players map[string]models.Player

	if err := a.client.Get("/players/nfl", &players); err != nil {
		return nil, fmt.Errorf("fetching players: %w", err)
	}

	return players, nil
}
