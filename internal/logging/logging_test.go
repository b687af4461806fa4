package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, Config{Level: "debug", Format: "json"})
	logger.Debug().Str("tank", "30000L").Msg("reading")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, buf.String())
	}
	if entry["tank"] != "30000L" || entry["message"] != "reading" || entry["level"] != "debug" {
		t.Fatalf("unexpected entry %v", entry)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, Config{Level: "warn", Format: "json"})
	logger.Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn level: %s", buf.String())
	}

	buf.Reset()
	logger = NewLoggerTo(&buf, Config{Level: "nonsense", Format: "json"})
	logger.Info().Msg("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatal("unknown level should fall back to info")
	}
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, Config{Level: "info", Format: "console"})
	logger.Info().Msg("ledger cleared")
	out := buf.String()
	if strings.HasPrefix(out, "{") || !strings.Contains(out, "ledger cleared") {
		t.Fatalf("expected console output, got %q", out)
	}
}
