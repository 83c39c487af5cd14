package logger

import (
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Level string
}

type Logger struct {
	logger *slog.Logger
}

func NewLogger(cfg *Config) *Logger {
	opts := &slog.HandlerOptions{
		Level: getLoggerLevel(cfg.Level),
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, opts))
	return &Logger{
		logger: logger,
	}
}

func (l *Logger) Error(msg string, v ...interface{}) {
	l.logger.Error(msg, v...)
}
func (l *Logger) Warn(msg string, v ...interface{}) {
	l.logger.Warn(msg, v...)
}
func (l *Logger) Info(msg string, v ...interface{}) {
	l.logger.Info(msg, v...)
}
func (l *Logger) Debug(msg string, v ...interface{}) {
	l.logger.Debug(msg, v...)
}

func getLoggerLevel(logLevel string) slog.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
