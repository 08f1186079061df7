package ledger

// Result describes one rewrite of the Total Section.
type Result struct {
	Lines        []string
	TotalMinutes int
	Entries      int
	// StaleTotals is the number of Total Section headers removed.
	StaleTotals int
	// Relocated is the number of trailing lines moved above the new Total Section.
	Relocated int
	Changed   bool
}

// Rewrite drops every existing Total Section and appends a freshly computed one.
func (p *Processor) Rewrite(lines []string) []string {
	return p.Update(lines).Lines
}

// Update is Rewrite with run statistics.
func (p *Processor) Update(lines []string) Result {
	doc := p.Scan(lines)

	body := lines
	var trailing []string
	if doc.HasTotal() {
		body = lines[:doc.TotalStart]
		for _, idx := range doc.Trailing {
			trailing = append(trailing, lines[idx])
		}
	}

	out := make([]string, 0, len(lines)+5)
	out = append(out, trimTrailingBlank(body)...)
	trailing = trimBlankEdges(trailing)
	if len(trailing) > 0 {
		if len(out) > 0 {
			out = append(out, "")
		}
		out = append(out, trailing...)
	}

	final := p.Scan(out)
	total := p.Aggregate(final)

	if len(out) > 0 {
		out = append(out, "")
	}
	out = append(out, p.layout.TotalMarker, "", p.layout.DurationLine(total), "")

	return Result{
		Lines:        out,
		TotalMinutes: total,
		Entries:      len(final.Entries),
		StaleTotals:  doc.Totals,
		Relocated:    len(trailing),
		Changed:      !equalLines(lines, out),
	}
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
