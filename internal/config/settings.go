package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Settings holds runtime configuration resolved from the environment.
type Settings struct {
	// ContactEndpoint is the send collaborator URL. Empty means contact
	// submissions are accepted locally and logged instead of delivered.
	ContactEndpoint string        `env:"FOLIO_CONTACT_ENDPOINT"`
	ContactTimeout  time.Duration `env:"FOLIO_CONTACT_TIMEOUT" envDefault:"10s"`

	LogLevel string `env:"FOLIO_LOG_LEVEL" envDefault:"info"`
	LogPath  string `env:"FOLIO_LOG_FILE"`

	// EnvironmentPollInterval controls how often the terminal background
	// is re-queried for theme changes. Zero disables the watcher.
	EnvironmentPollInterval time.Duration `env:"FOLIO_ENV_POLL_INTERVAL" envDefault:"0"`
}

// Load reads a .env file when present and parses Settings from the
// environment.
func Load() (Settings, error) {
	// Missing .env files are expected outside development.
	_ = godotenv.Load()

	return env.ParseAs[Settings]()
}
