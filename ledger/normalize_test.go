package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_MergesDurationsAtEntryEnd(t *testing.T) {
	t.Parallel()

	p := NewProcessor(DefaultLayout(), WithPolicy(PolicyFirst))
	lines := []string{
		"# Worklog",
		"",
		"### 📌 2025-09-20 – PL-1 – Setup",
		"⏱ 20m",
		"- scaffolded",
		"⏱ 10m",
		"",
		"",
		"### 📌 2025-09-21 – PL-2 – Notes",
		"- no time yet",
		"🔹 Totale",
		"",
		"⏱ 30m",
	}

	got := p.Normalize(lines)

	assert.Equal(t, []string{
		"# Worklog",
		"",
		"### 📌 2025-09-20 – PL-1 – Setup",
		"- scaffolded",
		"⏱ 30m",
		"",
		"### 📌 2025-09-21 – PL-2 – Notes",
		"- no time yet",
		"⏱ 0m",
		"",
		"🔹 Totale",
		"",
		"⏱ 30m",
	}, got)
	assert.Equal(t, got, p.Normalize(got))
}

func TestNormalize_NoEntries(t *testing.T) {
	t.Parallel()

	p := NewProcessor(DefaultLayout())
	lines := []string{"# Worklog", "", "notes"}

	got := p.Normalize(lines)
	got[0] = "changed"

	assert.Equal(t, "# Worklog", lines[0])
}
