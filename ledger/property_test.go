package ledger

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func randomLedger(rng *rand.Rand) []string {
	lines := []string{"# Worklog", ""}
	entries := rng.Intn(6)
	for i := 0; i < entries; i++ {
		lines = append(lines, fmt.Sprintf("### 📌 2025-09-%02d – PL-%d – task %d", i+1, i, i))
		bullets := rng.Intn(3)
		for b := 0; b < bullets; b++ {
			lines = append(lines, fmt.Sprintf("- bullet %d", b))
		}
		durations := rng.Intn(3)
		for d := 0; d < durations; d++ {
			lines = append(lines, "⏱ "+FormatDuration(rng.Intn(300)))
		}
		blanks := rng.Intn(3)
		for k := 0; k < blanks; k++ {
			lines = append(lines, "")
		}
	}
	if rng.Intn(2) == 0 {
		lines = append(lines, "🔹 Totale", "", "⏱ "+FormatDuration(rng.Intn(1000)))
		if rng.Intn(3) == 0 {
			lines = append(lines, "", "### 📌 2025-10-01 – PL-9 – late", "⏱ 5m")
		}
	}
	return lines
}

func entryBlocks(p *Processor, lines []string) [][]string {
	doc := p.Scan(lines)
	blocks := make([][]string, 0, len(doc.Entries))
	for _, section := range doc.Entries {
		blocks = append(blocks, lines[section.Header:section.End])
	}
	return blocks
}

func TestFormatParse_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for n := 0; n <= 2000; n++ {
		assert.Equal(t, n, ParseDuration(FormatDuration(n)), "round trip of %d", n)
	}
	for trial := 0; trial < 500; trial++ {
		n := rng.Intn(1 << 40)
		assert.Equal(t, n, ParseDuration(FormatDuration(n)), "round trip of %d", n)
	}
}

func TestParseDuration_TextWithoutTokensIsZero(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	alphabet := []rune("abcdefgijklnopqrstuvwxyz0123456789 ,.:;-_#⏱🔹")

	for trial := 0; trial < 500; trial++ {
		var b strings.Builder
		length := rng.Intn(40)
		for i := 0; i < length; i++ {
			b.WriteRune(alphabet[rng.Intn(len(alphabet))])
		}
		text := b.String()
		assert.Equal(t, 0, ParseDuration(text), "ParseDuration(%q)", text)
	}
}

func TestAggregate_InvariantUnderBlankLines(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	p := NewProcessor(DefaultLayout())

	for trial := 0; trial < 200; trial++ {
		lines := randomLedger(rng)
		want := p.Aggregate(p.Scan(lines))

		padded := append([]string(nil), lines...)
		inserts := rng.Intn(5) + 1
		for i := 0; i < inserts; i++ {
			at := rng.Intn(len(padded)) + 1
			padded = append(padded[:at], append([]string{""}, padded[at:]...)...)
		}

		assert.Equal(t, want, p.Aggregate(p.Scan(padded)), "trial %d", trial)
	}
}

func TestRewrite_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	p := NewProcessor(DefaultLayout())

	for trial := 0; trial < 300; trial++ {
		lines := randomLedger(rng)
		once := p.Rewrite(lines)
		twice := p.Rewrite(once)

		assert.Equal(t, once, twice, "trial %d", trial)
		assert.Equal(t, p.Aggregate(p.Scan(once)), p.Update(once).TotalMinutes, "trial %d", trial)
	}
}

func TestRewrite_PreservesEntries(t *testing.T) {
	rng := rand.New(rand.NewSource(123))
	p := NewProcessor(DefaultLayout())

	for trial := 0; trial < 300; trial++ {
		lines := randomLedger(rng)
		if len(p.Scan(lines).Trailing) > 0 {
			continue
		}

		assert.Equal(t, entryBlocks(p, lines), entryBlocks(p, p.Rewrite(lines)), "trial %d", trial)
	}
}
