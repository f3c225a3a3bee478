// Package log builds the application logger: slog to stderr, with an
// optional rotating file via lumberjack when file logging is enabled.
package log

import (
	"io"
	"log/slog"
	"os"
	"strings"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger construction. Zero values mean info level,
// text format, no file output.
type Options struct {
	Level  string
	Format string // "text" or "json"
	File   string // optional path; enables rotation
}

// New builds a logger from Options and installs it as slog's default.
func New(opts Options) *slog.Logger {
	level := parseLevel(opts.Level)

	var w io.Writer = os.Stderr
	if strings.TrimSpace(opts.File) != "" {
		w = io.MultiWriter(os.Stderr, &lj.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
	}

	var handler slog.Handler
	if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
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
