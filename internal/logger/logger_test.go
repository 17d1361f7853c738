package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"invalid level", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.level)
			if log == nil {
				t.Error("New() returned nil")
			}
		})
	}
}

func TestLoggerLevels(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	log := NewWithWriter("info", FormatText, &buf)

	log.Debug(ctx, "debug message")
	log.Info(ctx, "info message")
	log.Warn(ctx, "warn message")
	log.Error(ctx, "error message")
	log.Info(ctx, "formatted message: %s %d", "test", 123)

	out := buf.String()
	if strings.Contains(out, "debug message") {
		t.Error("debug message should be filtered at info level")
	}
	for _, want := range []string{"[INFO] info message", "[WARN] warn message", "[ERROR] error message", "formatted message: test 123"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestShouldLog(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		logLevel    string
		shouldLog   bool
	}{
		{"debug logs at debug level", "debug", "debug", true},
		{"info logs at debug level", "debug", "info", true},
		{"debug doesn't log at info level", "info", "debug", false},
		{"info logs at info level", "info", "info", true},
		{"error always logs", "debug", "error", true},
		{"warn filtered at error level", "error", "warn", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.configLevel).(*implLogger)
			result := log.shouldLog(tt.logLevel)
			if result != tt.shouldLog {
				t.Errorf("shouldLog() = %v, want %v", result, tt.shouldLog)
			}
		})
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("debug", FormatJSON, &buf)
	log.Warn(context.Background(), "episode %s downloaded", "ep1")

	var entry map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "episode ep1 downloaded" {
		t.Errorf("msg = %v, want %q", entry["msg"], "episode ep1 downloaded")
	}
	if entry["level"] != "WARN" {
		t.Errorf("level = %v, want WARN", entry["level"])
	}
}
