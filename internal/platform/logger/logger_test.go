package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   Debug,
		"":        Info,
		"WARNING": Warn,
		"error":   Error,
		"bogus":   Info,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestJSONOutputIncludesFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "kitty-registry", Out: &buf})

	l.With(map[string]any{"op": "create"}).Info("committed", map[string]any{"kitty_id": 3})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if entry["msg"] != "committed" || entry["app"] != "kitty-registry" || entry["op"] != "create" {
		t.Fatalf("unexpected entry: %#v", entry)
	}
	if entry["kitty_id"] != float64(3) {
		t.Fatalf("expected kitty_id=3, got %#v", entry["kitty_id"])
	}
}

func TestLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Out: &buf})

	l.Debug("hidden", nil)
	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("debug entry should be filtered, got %q", buf.String())
	}
}
