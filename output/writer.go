package output

import (
	"fmt"
	"strconv"
	"strings"

	"worktally/ledger"
	"worktally/worklog"
)

type Writer interface {
	Write(path string, entries []worklog.Entry) error
}

func WriterForFormat(format string) (Writer, error) {
	switch normalizeFormat(format) {
	case "csv":
		return &CSVWriter{}, nil
	case "excel", "xlsx":
		return &ExcelWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

var entryHeaders = []string{"Line", "Date", "Title", "Minutes", "Duration", "Bullets"}

func entryRow(entry worklog.Entry) []string {
	return []string{
		strconv.Itoa(entry.Line),
		entry.Day(),
		entry.Title,
		strconv.Itoa(entry.Minutes),
		ledger.FormatDuration(entry.Minutes),
		strings.Join(entry.Bullets, " | "),
	}
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}
