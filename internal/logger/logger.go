package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

var levels = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

var slogLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

type implLogger struct {
	logger *log.Logger
	json   *slog.Logger
	level  string
}

// New creates a text Logger writing to stdout.
func New(level string) Logger {
	return NewWithWriter(level, FormatText, os.Stdout)
}

// NewWithWriter creates a Logger writing to w. format is "text" or "json";
// anything else falls back to text.
func NewWithWriter(level, format string, w io.Writer) Logger {
	l := &implLogger{level: strings.ToLower(level)}
	if strings.EqualFold(format, FormatJSON) {
		l.json = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
		return l
	}
	l.logger = log.New(w, "", log.LstdFlags)
	return l
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return NewWithWriter("error", FormatText, io.Discard)
}

func (l *implLogger) shouldLog(level string) bool {
	currentLevel, ok := levels[l.level]
	if !ok {
		currentLevel = 1 // default to info
	}

	targetLevel, ok := levels[level]
	if !ok {
		return true
	}

	return targetLevel >= currentLevel
}

func (l *implLogger) write(ctx context.Context, level, msg string, args ...interface{}) {
	if !l.shouldLog(level) {
		return
	}
	if l.json != nil {
		l.json.Log(ctx, slogLevels[level], fmt.Sprintf(msg, args...))
		return
	}
	l.logger.Printf("["+strings.ToUpper(level)+"] "+msg, args...)
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "debug", msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "info", msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "warn", msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.write(ctx, "error", msg, args...)
}
