package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/milk9111/portraitquest/config"
)

// Setup configures the global slog logger from cfg, writing to stderr.
func Setup(cfg *config.Config) *slog.Logger {
	return SetupTo(os.Stderr, cfg)
}

// SetupTo is Setup with an explicit destination.
func SetupTo(w io.Writer, cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	var handler slog.Handler
	if cfg.LogFormat == config.FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// WithSession adds the session id to logger context
func WithSession(logger *slog.Logger, sessionID string) *slog.Logger {
	return logger.With("session", sessionID)
}

// WithError adds error to logger context
func WithError(logger *slog.Logger, err error) *slog.Logger {
	return logger.With("error", err.Error())
}
