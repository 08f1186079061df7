package importer

import (
	"fmt"
	"strings"

	"worktally/ledger"
)

// MapRecord turns one row into a ledger addition. Rows without a title are
// skipped (ok is false, err is nil); phase falls back to defaultPhase when the
// row has none.
func MapRecord(record Record, defaultPhase string) (ledger.Addition, bool, error) {
	title := record.Get("title", "titel", "description", "beschreibung")
	if title == "" {
		return ledger.Addition{}, false, nil
	}

	date, err := parseDate(record.Get("date", "datum", "day"))
	if err != nil {
		return ledger.Addition{}, false, fmt.Errorf("row %d: %w", record.RowNumber, err)
	}

	minutes, err := recordMinutes(record)
	if err != nil {
		return ledger.Addition{}, false, fmt.Errorf("row %d: %w", record.RowNumber, err)
	}

	return ledger.Addition{
		Date:    date,
		Phase:   firstNonEmpty(record.Get("phase", "ticket", "task"), defaultPhase),
		Title:   title,
		Bullets: splitBullets(record.Get("bullets", "notes", "notizen")),
		Minutes: minutes,
	}, true, nil
}

func recordMinutes(record Record) (int, error) {
	if raw := record.Get("duration", "dauer", "time"); raw != "" {
		return ledger.ParseInput(raw)
	}
	if raw := record.Get("hours", "stunden"); raw != "" {
		return parseGermanDecimalHoursToMinutes(raw)
	}
	return 0, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
