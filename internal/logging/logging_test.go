package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_FiltersBelowLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New("warn", &buf)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	logger.Info().Msg("scan finished")
	logger.Warn().Int("stale_totals", 2).Msg("removed duplicate totals")

	out := buf.String()
	if strings.Contains(out, "scan finished") {
		t.Fatalf("info message should be filtered: %q", out)
	}
	if !strings.Contains(out, "removed duplicate totals") || !strings.Contains(out, "stale_totals=2") {
		t.Fatalf("expected warn message with field, got %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	for _, level := range []string{"", "debug", "INFO", "warn", "error"} {
		if _, err := ParseLevel(level); err != nil {
			t.Fatalf("ParseLevel(%q) returned error: %v", level, err)
		}
	}
	if _, err := ParseLevel("trace"); err == nil {
		t.Fatalf("expected error for unsupported level")
	}
}
