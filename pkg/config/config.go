package config

import (
	"mealmax/internal/repository"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Repo     repository.Config `envPrefix:"REPO_"`
	HTTPPort string            `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string            `env:"LOGGER_LEVEL" envDefault:"debug"`

	// Battle randomness: when true the arena draws from random.org
	// instead of the local PRNG.
	UseRandomOrg bool `env:"USE_RANDOM_ORG" envDefault:"false"`

	SheetsCredentials string `env:"SHEETS_CREDENTIALS" envDefault:""`
	SpreadsheetID     string `env:"SPREADSHEET_ID" envDefault:""`
	GoogleOwnerEmail  string `env:"GOOGLE_OWNER_EMAIL" envDefault:""`
}

func ReadEnvConfig(cfg *Config) error {
	return env.Parse(cfg)
}
