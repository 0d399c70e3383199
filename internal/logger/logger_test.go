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
			log := New(tt.level, "text")
			if log == nil {
				t.Error("New() returned nil")
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		logLevel    int
		enabled     bool
	}{
		{"debug logs at debug level", "debug", levelDebug, true},
		{"info logs at debug level", "debug", levelInfo, true},
		{"debug doesn't log at info level", "info", levelDebug, false},
		{"info logs at info level", "info", levelInfo, true},
		{"warn doesn't log at error level", "error", levelWarn, false},
		{"error always logs", "debug", levelError, true},
		{"unknown level defaults to info", "bogus", levelDebug, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.configLevel, "text").(*implLogger)
			if got := log.enabled(tt.logLevel); got != tt.enabled {
				t.Errorf("enabled() = %v, want %v", got, tt.enabled)
			}
		})
	}
}

func TestTextOutput(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info", "text")

	log.Debug(ctx, "hidden")
	log.Info(ctx, "formatted message: %s %d", "test", 123)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug message should be filtered at info level")
	}
	if !strings.Contains(out, "[INFO] formatted message: test 123") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestJSONOutput(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info", "json")

	log.Warn(ctx, "disk at %d%%", 93)

	var entry map[string]string
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v (%q)", err, buf.String())
	}
	if entry["level"] != "warn" {
		t.Errorf("level = %q, want warn", entry["level"])
	}
	if entry["msg"] != "disk at 93%" {
		t.Errorf("msg = %q", entry["msg"])
	}
	if entry["time"] == "" {
		t.Error("missing time field")
	}
}
