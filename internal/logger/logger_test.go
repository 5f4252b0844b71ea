package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"loud":    zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v want %v", in, got, want)
		}
	}
}

func TestAdapterWritesStructuredJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(newSugared(zapcore.InfoLevel, &buf))

	log.DebugObj("hidden", "k", 1)
	log.InfoObj("place fetched", "place", map[string]any{"place_id": "abc", "status": "OK"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line below debug level, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["msg"] != "place fetched" || entry["level"] != "info" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("missing ts field: %v", entry)
	}
	place, ok := entry["place"].(map[string]any)
	if !ok || place["place_id"] != "abc" {
		t.Fatalf("place field = %v", entry["place"])
	}
	if caller, _ := entry["caller"].(string); !strings.Contains(caller, "logger_test.go") {
		t.Fatalf("caller should point at the call site, got %q", caller)
	}
}

func TestNewNilIsNop(t *testing.T) {
	if _, ok := New(nil).(NopLogger); !ok {
		t.Fatalf("New(nil) should return NopLogger")
	}
}

func TestPackageHelpersBeforeInit(t *testing.T) {
	S = nil
	InfoObj("ignored", "k", "v")
	if err := Close(); err != nil {
		t.Fatalf("Close without Init: %v", err)
	}
}
