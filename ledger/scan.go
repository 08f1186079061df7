package ledger

// State is the scanner position while walking a ledger line by line.
type State int

const (
	StatePreamble State = iota
	StateInEntry
	StateInTotal
	StateDone
)

func (s State) String() string {
	switch s {
	case StatePreamble:
		return "preamble"
	case StateInEntry:
		return "in_entry"
	case StateInTotal:
		return "in_total"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Section is the span of one entry. Lines[Header:End] is the header plus its
// body without trailing blank lines; Durations holds the duration line indices.
type Section struct {
	Header    int
	End       int
	Durations []int
}

// Document is the scanned view of a ledger.
type Document struct {
	Lines   []string
	Entries []Section

	// TotalStart is the index of the first Total Section header, -1 when absent.
	TotalStart int
	// Totals counts Total Section headers, duplicates included.
	Totals int
	// Trailing lists lines after the first Total Section header that belong to
	// no Total Section block.
	Trailing []int
}

func (d *Document) HasTotal() bool {
	return d.TotalStart >= 0
}

// Scan walks lines with the PREAMBLE -> IN_ENTRY -> IN_TOTAL -> DONE state
// machine. Nothing after the first total marker is ever read as an entry.
func (p *Processor) Scan(lines []string) *Document {
	doc := &Document{Lines: lines, TotalStart: -1}

	state := StatePreamble
	move := func(line int, next State) {
		if p.onTransition != nil {
			p.onTransition(line, state, next)
		}
		state = next
	}

	var current Section
	closeEntry := func(end int) {
		for end > current.Header+1 && isBlank(lines[end-1]) {
			end--
		}
		current.End = end
		doc.Entries = append(doc.Entries, current)
	}

	inTotalBody := false
	for i, line := range lines {
		switch state {
		case StatePreamble, StateInEntry:
			switch {
			case p.layout.IsEntryHeader(line):
				if state == StateInEntry {
					closeEntry(i)
				}
				current = Section{Header: i}
				move(i, StateInEntry)
			case p.layout.IsTotalHeader(line):
				if state == StateInEntry {
					closeEntry(i)
				}
				doc.TotalStart = i
				doc.Totals++
				inTotalBody = true
				move(i, StateInTotal)
			case state == StateInEntry && p.layout.IsDuration(line):
				current.Durations = append(current.Durations, i)
			}
		case StateInTotal:
			switch {
			case p.layout.IsTotalHeader(line):
				doc.Totals++
				inTotalBody = true
			case inTotalBody && (isBlank(line) || p.layout.IsDuration(line)):
			default:
				inTotalBody = false
				doc.Trailing = append(doc.Trailing, i)
			}
		}
	}

	if state == StateInEntry {
		closeEntry(len(lines))
	}
	move(len(lines), StateDone)
	return doc
}
