package ledger

// Normalize moves every duration line of an entry to its end, merged into a
// single line holding their sum ("0m" when none), and separates entries by
// exactly one blank line. The preamble and Total Section are copied unchanged.
// All duration lines are summed regardless of policy.
func (p *Processor) Normalize(lines []string) []string {
	doc := p.Scan(lines)
	if len(doc.Entries) == 0 {
		return append([]string(nil), lines...)
	}

	out := make([]string, 0, len(lines)+len(doc.Entries))
	out = append(out, lines[:doc.Entries[0].Header]...)

	for _, section := range doc.Entries {
		out = append(out, lines[section.Header])

		body := make([]string, 0, section.End-section.Header)
		total := 0
		for i := section.Header + 1; i < section.End; i++ {
			if p.layout.IsDuration(lines[i]) {
				total += p.layout.LineMinutes(lines[i])
				continue
			}
			body = append(body, lines[i])
		}
		out = append(out, trimTrailingBlank(body)...)
		out = append(out, p.layout.DurationLine(total), "")
	}

	if doc.HasTotal() {
		out = append(out, lines[doc.TotalStart:]...)
	}
	return out
}
