package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntries(t *testing.T) {
	t.Parallel()

	p := NewProcessor(DefaultLayout())
	lines := []string{
		"# Worklog",
		"",
		"### 📌 2025-09-20 – PL-1 – Setup",
		"- scaffold",
		"- ci",
		"⏱ 1h",
		"⏱ 15m",
		"",
		"### 📌 Planning",
		"⏱ 30m",
		"",
		"🔹 Totale",
		"",
		"⏱ 1h 45m",
	}

	entries := p.Entries(lines)

	require.Len(t, entries, 2)
	assert.Equal(t, 3, entries[0].Line)
	assert.True(t, entries[0].Date.Equal(time.Date(2025, 9, 20, 0, 0, 0, 0, time.Local)))
	assert.Equal(t, "PL-1 – Setup", entries[0].Title)
	assert.Equal(t, []string{"scaffold", "ci"}, entries[0].Bullets)
	assert.Equal(t, 75, entries[0].Minutes)
	assert.Equal(t, "2025-09-20", entries[0].Day())

	assert.Equal(t, 9, entries[1].Line)
	assert.True(t, entries[1].Date.IsZero())
	assert.Equal(t, "Planning", entries[1].Title)
	assert.Empty(t, entries[1].Bullets)
	assert.Equal(t, 30, entries[1].Minutes)
	assert.Equal(t, "", entries[1].Day())
}

func TestEntries_MatchUpdateTotalWithTrailingEntry(t *testing.T) {
	t.Parallel()

	p := NewProcessor(DefaultLayout())
	lines := []string{
		"### 📌 A",
		"⏱ 1h",
		"",
		"🔹 Totale",
		"",
		"⏱ 1h",
		"",
		"### 📌 B",
		"⏱ 30m",
	}

	entries := p.Entries(lines)
	require.Len(t, entries, 2)

	sum := 0
	for _, entry := range entries {
		sum += entry.Minutes
	}
	assert.Equal(t, p.Update(lines).TotalMinutes, sum)
	assert.Equal(t, 90, sum)
	assert.Equal(t, "B", entries[1].Title)
	assert.Equal(t, 4, entries[1].Line)
}
