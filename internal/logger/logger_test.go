package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/zapponejosh/lunar-calendar-api/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"loud", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{Env: config.EnvProduction, LogLevel: "info", LogFormat: "json"}
	log := New(cfg, &buf)

	log.Debug("hidden")
	log.Info("year computed", slog.Int("gregorian_year", 2023))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1 (debug filtered): %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "year computed" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["env"] != config.EnvProduction {
		t.Errorf("env = %v, want %q", entry["env"], config.EnvProduction)
	}
	if entry["gregorian_year"] != float64(2023) {
		t.Errorf("gregorian_year = %v", entry["gregorian_year"])
	}
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{Env: config.EnvDevelopment, LogLevel: "debug", LogFormat: "text"}
	New(cfg, &buf).Debug("cache miss", slog.Int("gregorian_year", 1984))

	out := buf.String()
	for _, want := range []string{"level=DEBUG", "msg=\"cache miss\"", "gregorian_year=1984", "env=development"} {
		if !strings.Contains(out, want) {
			t.Errorf("text log %q missing %q", out, want)
		}
	}
}

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	if got := RequestID(ctx); got != "" {
		t.Errorf("RequestID(empty) = %q, want empty", got)
	}

	ctx = WithRequestID(ctx, "abc-123")
	if got := RequestID(ctx); got != "abc-123" {
		t.Errorf("RequestID() = %q, want %q", got, "abc-123")
	}
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	ctx := WithRequestID(context.Background(), "req-42")
	Info(ctx, "handled")

	if !strings.Contains(buf.String(), "request_id=req-42") {
		t.Errorf("log %q missing request_id", buf.String())
	}
}
