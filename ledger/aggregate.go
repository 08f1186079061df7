package ledger

// EntryMinutes sums the duration lines of one entry under the processor policy.
func (p *Processor) EntryMinutes(doc *Document, section Section) int {
	durations := section.Durations
	if p.policy == PolicyFirst && len(durations) > 1 {
		durations = durations[:1]
	}
	total := 0
	for _, idx := range durations {
		total += p.layout.LineMinutes(doc.Lines[idx])
	}
	return total
}

// Aggregate sums all entries. Total Section lines are never part of an entry.
func (p *Processor) Aggregate(doc *Document) int {
	total := 0
	for _, section := range doc.Entries {
		total += p.EntryMinutes(doc, section)
	}
	return total
}
