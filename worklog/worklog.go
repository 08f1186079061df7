package worklog

import "time"

// Entry is one dated, titled ledger section as seen by importers, outputs and storage.
type Entry struct {
	Line    int
	Date    time.Time
	Title   string
	Bullets []string
	Minutes int
}

// Day returns the entry date as YYYY-MM-DD, or an empty string for undated entries.
func (e Entry) Day() string {
	if e.Date.IsZero() {
		return ""
	}
	return e.Date.Format("2006-01-02")
}
