package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  slog.Level
	}{
		{"info", "info", slog.LevelInfo},
		{"debug", "debug", slog.LevelDebug},
		{"trace", "trace", LevelTrace},
		{"uppercase DEBUG", "DEBUG", slog.LevelDebug},
		{"mixed case Trace", "Trace", LevelTrace},
		{"unknown defaults to info", "verbose", slog.LevelInfo},
		{"empty defaults to info", "", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLevel(tt.input)
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		name       string
		level      string
		logAtTrace bool
		logAtDebug bool
	}{
		{"info filters debug", "info", false, false},
		{"debug passes debug", "debug", false, true},
		{"trace passes trace", "trace", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(tt.level, &buf)

			Trace(logger, "round message")
			hasTrace := strings.Contains(buf.String(), "round message")
			if hasTrace != tt.logAtTrace {
				t.Errorf("trace message visible = %v, want %v (buf: %q)", hasTrace, tt.logAtTrace, buf.String())
			}
			if TraceEnabled(logger) != tt.logAtTrace {
				t.Errorf("TraceEnabled = %v, want %v", TraceEnabled(logger), tt.logAtTrace)
			}

			buf.Reset()
			logger.Debug("run message")
			hasDebug := strings.Contains(buf.String(), "run message")
			if hasDebug != tt.logAtDebug {
				t.Errorf("debug message visible = %v, want %v (buf: %q)", hasDebug, tt.logAtDebug, buf.String())
			}
		})
	}
}

func TestTraceLabel(t *testing.T) {
	var buf bytes.Buffer
	Trace(NewLogger("trace", &buf), "step")
	if !strings.Contains(buf.String(), "level=TRACE") {
		t.Errorf("expected TRACE level label, got %q", buf.String())
	}
}

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	NewJSONLogger("debug", &buf).Debug("run", "rounds", 3)

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("invalid JSON record %q: %v", buf.String(), err)
	}
	if rec["msg"] != "run" || rec["rounds"] != float64(3) {
		t.Errorf("unexpected record: %v", rec)
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("discard logger should not be enabled at error level")
	}
}
