package models

// Sleeper wire types. Fields the provider may omit or null out are
// modeled as pointers so absence survives decoding.

type User struct {
	UserID      string        `json:"user_id"`
	DisplayName string        `json:"display_name"`
	Metadata    *UserMetadata `json:"metadata"`
}

type UserMetadata struct {
	TeamName string `json:"team_name"`
}

type Roster struct {
	RosterID int    `json:"roster_id"`
	OwnerID  string `json:"owner_id"`
	LeagueID string `json:"league_id"`
}

type MatchupEntry struct {
	RosterID     int      `json:"roster_id"`
	MatchupID    int      `json:"matchup_id"`
	Points       float64  `json:"points"`
	CustomPoints *float64 `json:"custom_points"`
	Starters     []string `json:"starters"`
}

// Player IDs are strings: mostly numeric, but team defenses use
// abbreviations like "SF".
type Player struct {
	PlayerID  string `json:"player_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Team      string `json:"team"`
	Position  string `json:"position"`
}
