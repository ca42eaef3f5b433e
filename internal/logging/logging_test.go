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
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{Level: "info", Format: "json"})

	logger.Debug("hidden")
	logger.Info("page rendered", "path", "/about")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 log line (debug filtered), got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "page rendered" {
		t.Errorf("msg = %v, want %q", entry["msg"], "page rendered")
	}
	if entry["path"] != "/about" {
		t.Errorf("path = %v, want %q", entry["path"], "/about")
	}
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{Level: "debug", Format: "text"})

	logger.Debug("menu toggled", "open", true)

	out := buf.String()
	if !strings.Contains(out, "msg=\"menu toggled\"") {
		t.Errorf("text output missing message: %q", out)
	}
	if !strings.Contains(out, "open=true") {
		t.Errorf("text output missing attribute: %q", out)
	}
}

func TestFrom(t *testing.T) {
	t.Run("falls back to default", func(t *testing.T) {
		if got := From(context.Background()); got != slog.Default() {
			t.Error("From() without a logger should return slog.Default()")
		}
	})

	t.Run("returns stored logger", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, Options{})
		ctx := WithLogger(context.Background(), l)
		if got := From(ctx); got != l {
			t.Error("From() should return the logger stored by WithLogger")
		}
	})
}
