package logger

import (
	"context"
	"strings"

	"github.com/gookit/slog"
	"github.com/gookit/slog/handler"
)

type implLogger struct {
	logger *slog.Logger
	level  string
}

// New creates a Logger writing to stdout. format is "json" or "text".
func New(level, format string) Logger {
	h := handler.NewConsoleHandler(slog.AllLevels)
	h.SetFormatter(newFormatter(format))

	return &implLogger{
		logger: slog.NewWithHandlers(h),
		level:  strings.ToLower(level),
	}
}

func newFormatter(format string) slog.Formatter {
	if strings.ToLower(format) == "json" {
		return slog.NewJSONFormatter(func(f *slog.JSONFormatter) {
			f.Fields = []string{
				slog.FieldKeyDatetime,
				slog.FieldKeyLevel,
				slog.FieldKeyMessage,
				slog.FieldKeyData,
			}
			f.Aliases = slog.StringMap{
				slog.FieldKeyDatetime: "datetime",
				slog.FieldKeyLevel:    "level",
				slog.FieldKeyMessage:  "message",
			}
			f.TimeFormat = "2006-01-02T15:04:05"
		})
	}

	return slog.NewTextFormatter()
}

func (l *implLogger) shouldLog(level string) bool {
	levels := map[string]int{
		"debug": 0,
		"info":  1,
		"warn":  2,
		"error": 3,
	}

	currentLevel, ok := levels[l.level]
	if !ok {
		currentLevel = 1
	}

	targetLevel, ok := levels[level]
	if !ok {
		return true
	}

	return targetLevel >= currentLevel
}

func (l *implLogger) record(ctx context.Context) *slog.Record {
	fields := slog.M{}
	if id := RequestIDFromContext(ctx); id != "" {
		fields["request_id"] = id
	}
	return l.logger.WithFields(fields)
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("debug") {
		l.record(ctx).Debugf(msg, args...)
	}
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("info") {
		l.record(ctx).Infof(msg, args...)
	}
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("warn") {
		l.record(ctx).Warnf(msg, args...)
	}
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("error") {
		l.record(ctx).Errorf(msg, args...)
	}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...interface{}) {}
func (nopLogger) Info(context.Context, string, ...interface{})  {}
func (nopLogger) Warn(context.Context, string, ...interface{})  {}
func (nopLogger) Error(context.Context, string, ...interface{}) {}
