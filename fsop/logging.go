package fsop

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// DefaultLogLevel is used whenever a configured log level string fails
// to parse.
const DefaultLogLevel = slog.LevelInfo

var errInvalidLogLevel = errors.New("fsop: log level not recognized")

// ParseLogLevel accepts the same vocabulary as the teacher CLI's
// --log-level flag: debug, info, warn/warning, error.
func ParseLogLevel(levelStr string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return DefaultLogLevel, errInvalidLogLevel
	}
}

// NewTintLogger builds a *slog.Logger writing to w, either as tinted
// (colorized) text or as JSON lines, matching (*program).logHandler
// in the teacher's cmd/mirrorshuttle/config.go.
func NewTintLogger(w io.Writer, level slog.Level, json bool) *slog.Logger {
	var handler slog.Handler

	if json {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	} else {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
		})
	}

	return slog.New(handler)
}
