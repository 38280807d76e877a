package pkg

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type Logger struct {
	logger *slog.Logger
}

// SetNewStderrLogger installs a JSON logger on stderr as the slog default.
// Stdout is left to rendered output.
func SetNewStderrLogger(level string) {
	logger := NewLogger(os.Stderr, ParseLevel(level))

	slog.SetDefault(logger.logger)
}

func NewLogger(out io.Writer, level slog.Level) *Logger {
	opts := &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	}

	return &Logger{
		logger: slog.New(slog.NewJSONHandler(out, opts)),
	}
}

func (l *Logger) Slog() *slog.Logger {
	return l.logger
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
