// Package config manages environment variables.
//
// It reads variables from the process environment (optionally seeded from a
// .env file), maps them into structured Go types, and validates that
// required values are present so the app fails fast on bad config.
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a .env file into the process environment
	// before any env var is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// Config is the root configuration object for the application.
//
// Env vars use the QUICKBITE_ prefix; a double underscore separates the
// config block from the key, e.g. QUICKBITE_DATABASE__MAX_OPEN_CONNS maps
// to database.max_open_conns.
type Config struct {
	Primary  Primary        `koanf:"primary" validate:"required"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime. Timeouts are
// seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`

	// RateLimit is the per-client request rate (requests/second) enforced
	// by the rate-limit middleware. Zero picks the default below.
	RateLimit float64 `koanf:"rate_limit"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns"`
	MaxIdleConns    int    `koanf:"max_idle_conns"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

const defaultRateLimit = 20

// IsDevelopment reports whether internal error details may be shown to
// clients.
func (c *Config) IsDevelopment() bool {
	return c.Primary.Env == "development" || c.Primary.Env == "local"
}

// New loads configuration from environment variables, validates it, and
// applies defaults.
func New() (*Config, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	k := koanf.New(".")

	err := k.Load(env.Provider("QUICKBITE_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "QUICKBITE_"))
		return strings.Replace(s, "__", ".", 1)
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not load env variables")
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("could not unmarshal config")
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("config validation failed")
	}

	if mainConfig.Logging.Level == "" {
		mainConfig.Logging.Level = "info"
	}
	if mainConfig.Logging.Format == "" {
		mainConfig.Logging.Format = "json"
	}
	if mainConfig.Server.RateLimit <= 0 {
		mainConfig.Server.RateLimit = defaultRateLimit
	}

	return mainConfig, nil
}
