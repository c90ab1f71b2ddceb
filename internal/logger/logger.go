// Package logger configures the application's structured logging.
//
// It builds the zerolog root logger from config (level and format) and
// provides the specialized logger the database package feeds into pgx's
// tracelog for SQL query logging.
package logger

import (
	"os"
	"time"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"

	"github.com/quickbite/api/internal/config"
)

// New constructs the root logger. Format "console" gives a human-friendly
// development output; anything else is line-delimited JSON.
func New(cfg *config.Config) *zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Logging.Format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	logger = logger.Level(level).With().
		Timestamp().
		Str("service", "quickbite-api").
		Str("env", cfg.Primary.Env).
		Logger()

	return &logger
}

// NewPgxLogger returns the logger handed to the pgx tracelog adapter.
// SQL logging is noisy, so it never goes below the global level.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).With().
		Timestamp().
		Str("component", "pgx").
		Logger()
}

// GetPgxTraceLogLevel maps the zerolog level onto pgx's tracelog levels.
func GetPgxTraceLogLevel(level zerolog.Level) tracelog.LogLevel {
	switch {
	case level <= zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case level == zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case level == zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	default:
		return tracelog.LogLevelError
	}
}
