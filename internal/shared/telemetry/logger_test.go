package telemetry

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestInfoWritesJSONFields(t *testing.T) {
	var buf bytes.Buffer
	restore := SetOutput(&buf)
	defer restore()

	Info("scan.complete", map[string]any{"scan_id": "abc", "duration_ms": 12})

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("decode log line: %v (%q)", err, buf.String())
	}
	if entry["message"] != "scan.complete" {
		t.Fatalf("unexpected message: %v", entry["message"])
	}
	if entry["level"] != "info" {
		t.Fatalf("unexpected level: %v", entry["level"])
	}
	if entry["scan_id"] != "abc" {
		t.Fatalf("missing scan_id: %v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Fatalf("missing timestamp: %v", entry)
	}
}

func TestErrorStringifiesErrors(t *testing.T) {
	var buf bytes.Buffer
	restore := SetOutput(&buf)
	defer restore()

	Error("store.failed", map[string]any{"err": errors.New("disk full")})

	if !strings.Contains(buf.String(), `"err":"disk full"`) {
		t.Fatalf("expected error string in log, got %q", buf.String())
	}
}

func TestConfigureLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	restore := SetOutput(&buf)
	defer restore()

	Configure(Options{Level: "warn", Writer: &buf})
	Info("hidden", nil)
	Warn("shown", nil)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestDebugOnlyAtDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	restore := SetOutput(&buf)
	defer restore()

	Configure(Options{Level: "info", Writer: &buf})
	Debug("quiet", nil)
	if buf.Len() != 0 {
		t.Fatalf("debug line should be filtered at info: %q", buf.String())
	}

	Configure(Options{Level: "debug", Writer: &buf})
	Debug("loud", map[string]any{"count": 2})
	if !strings.Contains(buf.String(), `"level":"debug"`) || !strings.Contains(buf.String(), `"count":2`) {
		t.Fatalf("expected debug line, got %q", buf.String())
	}
}
