package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONLogger_WritesStructuredEntries(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	logger.Info("document built", DocumentID("doc-1"), Int("controls", 12))

	var e entry
	if err := json.Unmarshal(buf.Bytes(), &e); err != nil {
		t.Fatalf("Log line is not JSON: %v", err)
	}
	if e.Level != "INFO" || e.Message != "document built" {
		t.Errorf("entry = %+v", e)
	}
	if e.Fields["document_id"] != "doc-1" || e.Fields["controls"] != float64(12) {
		t.Errorf("fields = %v", e.Fields)
	}
}

func TestJSONLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, WarnLevel)

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("visible")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 || !strings.Contains(lines[0], "visible") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestJSONLogger_WithPresetFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel).With(Component("matcher"))

	logger.Info("scored request")

	var e entry
	if err := json.Unmarshal(buf.Bytes(), &e); err != nil {
		t.Fatal(err)
	}
	if e.Fields["component"] != "matcher" {
		t.Errorf("preset field missing: %v", e.Fields)
	}
}

func TestParseLevel(t *testing.T) {
	if ParseLevel("debug") != DebugLevel || ParseLevel("ERROR") != ErrorLevel {
		t.Error("ParseLevel mapping broken")
	}
	if ParseLevel("gibberish") != InfoLevel {
		t.Error("Unknown level should default to INFO")
	}
}
