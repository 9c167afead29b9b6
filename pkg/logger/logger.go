package logger

import (
	"io"
	"os"
	"time"

	"github.com/admin-dashboard/internal/config"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// New creates a zerolog logger writing to w. Every logger carries a session id
// so the lines of one dashboard run can be told apart in a shared log file.
func New(cfg config.LogConfig, w io.Writer) zerolog.Logger {
	// Configure zerolog
	zerolog.TimeFieldFormat = time.RFC3339

	var logLevel zerolog.Level
	switch cfg.Level {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	sessionID := uuid.NewString()

	// Use pretty console output in development
	if cfg.Format == "pretty" {
		return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}).
			Level(logLevel).
			With().
			Timestamp().
			Caller().
			Str("service", "admin-dashboard").
			Str("session_id", sessionID).
			Logger()
	}

	// JSON output otherwise
	return zerolog.New(w).
		Level(logLevel).
		With().
		Timestamp().
		Str("service", "admin-dashboard").
		Str("session_id", sessionID).
		Logger()
}

// OpenFile opens the log file named in cfg for appending. The terminal belongs
// to the dashboard, so an empty name discards logs instead of using stdout.
func OpenFile(cfg config.LogConfig) (io.WriteCloser, error) {
	if cfg.File == "" {
		return nopCloser{io.Discard}, nil
	}
	return os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
