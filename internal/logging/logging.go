// Package logging configures the process-wide slog logger.
//
// dnsly writes lookup results to stdout, so all diagnostic logging goes to
// stderr. Verbose mode lowers the level to DEBUG; quiet mode raises it to
// ERROR regardless of the configured level.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Level string
	JSON  bool

	// Verbose forces DEBUG; Quiet forces ERROR. Quiet wins when both are set.
	Verbose bool
	Quiet   bool
}

func Configure(cfg Config) *slog.Logger {
	level := parseLevel(cfg.Level)
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	if cfg.Quiet {
		level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(s string) slog.Level {
	s = strings.ToUpper(strings.TrimSpace(s))
	switch s {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
