package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	TelegramBot TelegramBot
	Sleeper     Sleeper
}

type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN" required:"true"`
	ChatID int64  `envconfig:"CHAT_ID" required:"true"`
}

type Sleeper struct {
	LeagueID  string `envconfig:"SLEEPER_LEAGUE_ID"`
	StartWeek int    `envconfig:"SLEEPER_START_WEEK" default:"1"`
	EndWeek   int    `envconfig:"SLEEPER_END_WEEK" default:"18"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// NewSleeper loads only the Sleeper section, so the CLI works without
// any Telegram configuration present.
func NewSleeper() (*Sleeper, error) {
	var s Sleeper
	err := envconfig.Process("", &s)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
