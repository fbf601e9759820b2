package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dawoodjaved5/soventure-project/internal/config"
)

// NewLogger builds the process logger from cfg, writes it to stderr and
// installs it as the slog default.
//
// Format "json" is meant for production; anything else gives the text
// handler with source locations. Unknown levels fall back to info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(cfg, os.Stderr)
	slog.SetDefault(logger)
	return logger
}

func newLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	jsonFormat := strings.EqualFold(cfg.Format, "json")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !jsonFormat,
	}

	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if jsonFormat {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler).With(slog.String("version", Version))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
