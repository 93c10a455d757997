package cmdutil

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "warn", false)
	l.Info("hidden")
	l.Warn("shown", "records", 3)
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") || !strings.Contains(out, "records=3") {
		t.Fatalf("unexpected log output: %q", out)
	}
}

func TestNewLoggerQuiet(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "debug", true)
	l.Warn("suppressed")
	l.Error("kept")
	if strings.Contains(buf.String(), "suppressed") || !strings.Contains(buf.String(), "kept") {
		t.Fatalf("quiet logger output: %q", buf.String())
	}
}

func TestNewLoggerUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "chatty", false)
	l.Debug("debug line")
	l.Info("info line")
	if strings.Contains(buf.String(), "debug line") || !strings.Contains(buf.String(), "info line") {
		t.Fatalf("fallback level output: %q", buf.String())
	}
}
