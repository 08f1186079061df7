package ledger

import "worktally/worklog"

// Entries returns one record per entry of the rewritten ledger, minutes applied
// under the policy, so the records always add up to the total Update writes.
// Entries found after a Total Section are included; their Line refers to the
// position they take once relocated above the new total.
func (p *Processor) Entries(lines []string) []worklog.Entry {
	lines = p.Update(lines).Lines
	doc := p.Scan(lines)
	entries := make([]worklog.Entry, 0, len(doc.Entries))
	for _, section := range doc.Entries {
		date, title := p.layout.ParseHeader(lines[section.Header])
		entry := worklog.Entry{
			Line:    section.Header + 1,
			Date:    date,
			Title:   title,
			Minutes: p.EntryMinutes(doc, section),
		}
		for i := section.Header + 1; i < section.End; i++ {
			if text, ok := bulletText(lines[i]); ok {
				entry.Bullets = append(entry.Bullets, text)
			}
		}
		entries = append(entries, entry)
	}
	return entries
}
