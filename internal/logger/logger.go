package logger

import (
	"io"
	"log/slog"
	"os"
)

var log *slog.Logger

func init() {
	log = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func SetLogger(l *slog.Logger) {
	log = l
}

// New returns a text logger on w. Debug records are kept only when debug
// is set.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// FromEnv builds the process logger. Anything non-empty in
// CONVERT_GIF_DEBUG turns on debug output on stderr.
func FromEnv() *slog.Logger {
	if os.Getenv("CONVERT_GIF_DEBUG") == "" {
		return New(io.Discard, false)
	}
	return New(os.Stderr, true)
}

func Debug(msg string, args ...any) {
	log.Debug(msg, args...)
}

func Warn(msg string, args ...any) {
	log.Warn(msg, args...)
}
