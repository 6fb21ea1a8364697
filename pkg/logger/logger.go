package logger

import (
	"log/slog"
	"os"
)

var log *slog.Logger

// Init configures the package-level logger. Safe to call more than once;
// the last call wins.
func Init() {
	log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(log)
}

func ensure() *slog.Logger {
	if log == nil {
		Init()
	}
	return log
}

func Info(msg string, args ...any) {
	ensure().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	ensure().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	ensure().Error(msg, args...)
}
