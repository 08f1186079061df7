// Package ledger parses, totals and rewrites plain-text worklog ledgers.
//
// A ledger is a markdown file made of an ignored preamble, a sequence of entries
// (each started by a header line carrying the entry prefix) and a derived Total
// Section that is recomputed on every run.
package ledger

import (
	"fmt"
	"strings"
	"time"

	"worktally/internal/timeutil"
)

const headerSeparator = " – "

// Layout holds the literal markers a ledger is written with.
type Layout struct {
	Title          string
	EntryPrefix    string
	TotalMarker    string
	DurationMarker string
}

func DefaultLayout() Layout {
	return Layout{
		Title:          "# Worklog",
		EntryPrefix:    "### 📌 ",
		TotalMarker:    "🔹 Totale",
		DurationMarker: "⏱",
	}
}

func (l Layout) Validate() error {
	if strings.TrimSpace(l.EntryPrefix) == "" {
		return fmt.Errorf("entry prefix must not be blank")
	}
	if strings.TrimSpace(l.TotalMarker) == "" {
		return fmt.Errorf("total marker must not be blank")
	}
	if strings.TrimSpace(l.DurationMarker) == "" {
		return fmt.Errorf("duration marker must not be blank")
	}
	if strings.HasPrefix(l.TotalMarker, strings.TrimSpace(l.EntryPrefix)) {
		return fmt.Errorf("total marker %q must be distinguishable from entry prefix %q", l.TotalMarker, l.EntryPrefix)
	}
	return nil
}

func (l Layout) IsEntryHeader(line string) bool {
	return strings.HasPrefix(line, l.EntryPrefix)
}

func (l Layout) IsTotalHeader(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), l.TotalMarker)
}

func (l Layout) IsDuration(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), l.DurationMarker)
}

// LineMinutes parses the duration carried by a duration line.
func (l Layout) LineMinutes(line string) int {
	return ParseDuration(strings.TrimPrefix(strings.TrimSpace(line), l.DurationMarker))
}

func (l Layout) DurationLine(minutes int) string {
	return l.DurationMarker + " " + FormatDuration(minutes)
}

// Header builds an entry header from its non-empty parts.
func (l Layout) Header(date time.Time, phase, title string) string {
	parts := make([]string, 0, 3)
	if !date.IsZero() {
		parts = append(parts, timeutil.FormatDay(date))
	}
	for _, part := range []string{phase, title} {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return l.EntryPrefix + strings.Join(parts, headerSeparator)
}

// ParseHeader splits an entry header into its date (zero when absent) and title.
func (l Layout) ParseHeader(line string) (time.Time, string) {
	rest := strings.TrimSpace(strings.TrimPrefix(line, l.EntryPrefix))
	parts := strings.Split(rest, headerSeparator)
	if date, err := timeutil.ParseDay(parts[0]); err == nil {
		return date, strings.TrimSpace(strings.Join(parts[1:], headerSeparator))
	}
	return time.Time{}, rest
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func bulletText(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "- ") {
		return "", false
	}
	return strings.TrimSpace(trimmed[2:]), true
}

func trimTrailingBlank(lines []string) []string {
	end := len(lines)
	for end > 0 && isBlank(lines[end-1]) {
		end--
	}
	return lines[:end]
}

func trimBlankEdges(lines []string) []string {
	start := 0
	for start < len(lines) && isBlank(lines[start]) {
		start++
	}
	return trimTrailingBlank(lines[start:])
}
