package ledger

import (
	"strings"
	"time"
)

// Addition is a block of work to record in the ledger.
type Addition struct {
	Date    time.Time
	Phase   string
	Title   string
	Bullets []string
	Minutes int
}

// Upsert records an addition. A new entry is inserted before the Total Section;
// when an entry with the same header exists, missing bullets are appended and
// its duration lines are replaced by one line holding existing plus new minutes.
// The Total Section itself is left for Rewrite.
func (p *Processor) Upsert(lines []string, add Addition) []string {
	header := p.layout.Header(add.Date, add.Phase, add.Title)
	doc := p.Scan(lines)

	for _, section := range doc.Entries {
		if strings.TrimSpace(lines[section.Header]) == strings.TrimSpace(header) {
			return p.mergeInto(lines, section, add)
		}
	}

	cut := len(lines)
	if doc.HasTotal() {
		cut = doc.TotalStart
	}

	out := make([]string, 0, len(lines)+len(add.Bullets)+5)
	out = append(out, trimTrailingBlank(lines[:cut])...)
	if len(out) == 0 && p.layout.Title != "" {
		out = append(out, p.layout.Title)
	}
	if len(out) > 0 {
		out = append(out, "")
	}
	out = append(out, header)
	for _, bullet := range cleanBullets(add.Bullets) {
		out = append(out, "- "+bullet)
	}
	out = append(out, p.layout.DurationLine(add.Minutes), "")
	return append(out, lines[cut:]...)
}

func (p *Processor) mergeInto(lines []string, section Section, add Addition) []string {
	out := make([]string, 0, len(lines)+len(add.Bullets)+2)
	out = append(out, lines[:section.Header+1]...)

	seen := make(map[string]struct{})
	body := make([]string, 0, section.End-section.Header)
	existing := 0
	for i := section.Header + 1; i < section.End; i++ {
		line := lines[i]
		if p.layout.IsDuration(line) {
			existing += p.layout.LineMinutes(line)
			continue
		}
		if text, ok := bulletText(line); ok {
			seen[text] = struct{}{}
		}
		body = append(body, line)
	}
	body = trimTrailingBlank(body)
	for _, bullet := range cleanBullets(add.Bullets) {
		if _, ok := seen[bullet]; ok {
			continue
		}
		seen[bullet] = struct{}{}
		body = append(body, "- "+bullet)
	}

	out = append(out, body...)
	out = append(out, p.layout.DurationLine(existing+add.Minutes), "")

	rest := section.End
	for rest < len(lines) && isBlank(lines[rest]) {
		rest++
	}
	return append(out, lines[rest:]...)
}

func cleanBullets(bullets []string) []string {
	out := make([]string, 0, len(bullets))
	for _, bullet := range bullets {
		bullet = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(bullet), "- "))
		if bullet != "" {
			out = append(out, bullet)
		}
	}
	return out
}
