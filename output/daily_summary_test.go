package output

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"worktally/worklog"
)

func sampleEntries() []worklog.Entry {
	return []worklog.Entry{
		{Line: 3, Date: time.Date(2025, 9, 21, 0, 0, 0, 0, time.Local), Title: "PL-2 – Deploy", Minutes: 45},
		{Line: 8, Title: "Planning", Minutes: 15},
		{Line: 12, Date: time.Date(2025, 9, 20, 0, 0, 0, 0, time.Local), Title: "PL-1 – Setup", Minutes: 90, Bullets: []string{"scaffold", "ci"}},
		{Line: 17, Date: time.Date(2025, 9, 21, 0, 0, 0, 0, time.Local), Title: "PL-3 – Review", Minutes: 30},
	}
}

func TestBuildDailySummaries_GroupsByDayWithUndatedLast(t *testing.T) {
	summaries := BuildDailySummaries(sampleEntries())
	if len(summaries) != 3 {
		t.Fatalf("expected 3 summaries, got %d", len(summaries))
	}

	want := []DailySummary{
		{Date: "2025-09-20", Minutes: 90, Hours: 1.5, EntryCount: 1},
		{Date: "2025-09-21", Minutes: 75, Hours: 1.25, EntryCount: 2},
		{Date: UndatedDay, Minutes: 15, Hours: 0.25, EntryCount: 1},
	}
	for i := range want {
		if summaries[i] != want[i] {
			t.Fatalf("summary %d: expected %+v, got %+v", i, want[i], summaries[i])
		}
	}
}

func TestBuildDailySummaries_Empty(t *testing.T) {
	if got := BuildDailySummaries(nil); len(got) != 0 {
		t.Fatalf("expected no summaries, got %d", len(got))
	}
}

func TestWriteDailySummaries_CSV(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "daily.csv")
	if err := WriteDailySummaries(path, "csv", BuildDailySummaries(sampleEntries())); err != nil {
		t.Fatalf("write daily summaries: %v", err)
	}

	rows := readCSV(t, path)
	if len(rows) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d", len(rows))
	}
	if rows[2][0] != "2025-09-21" || rows[2][2] != "1h 15m" || rows[2][3] != "1.25" {
		t.Fatalf("unexpected row: %#v", rows[2])
	}
}

func TestWriteDailySummaries_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	if err := WriteDailySummaries(filepath.Join(t.TempDir(), "x"), "json", nil); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestWriters_CSVAndExcel(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	entries := sampleEntries()

	csvWriter, err := WriterForFormat("CSV")
	if err != nil {
		t.Fatalf("csv writer: %v", err)
	}
	csvPath := filepath.Join(dir, "entries.csv")
	if err := csvWriter.Write(csvPath, entries); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	rows := readCSV(t, csvPath)
	if len(rows) != 5 {
		t.Fatalf("expected header plus 4 rows, got %d", len(rows))
	}
	if rows[3][1] != "2025-09-20" || rows[3][4] != "1h 30m" || rows[3][5] != "scaffold | ci" {
		t.Fatalf("unexpected csv row: %#v", rows[3])
	}
	if rows[2][1] != "" {
		t.Fatalf("expected empty date for undated entry, got %q", rows[2][1])
	}

	excelWriter, err := WriterForFormat("excel")
	if err != nil {
		t.Fatalf("excel writer: %v", err)
	}
	excelPath := filepath.Join(dir, "entries.xlsx")
	if err := excelWriter.Write(excelPath, entries); err != nil {
		t.Fatalf("write excel: %v", err)
	}
	file, err := excelize.OpenFile(excelPath)
	if err != nil {
		t.Fatalf("open excel: %v", err)
	}
	defer file.Close()
	value, err := file.GetCellValue(file.GetSheetName(0), "C2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if value != "PL-2 – Deploy" {
		t.Fatalf("unexpected title cell: %q", value)
	}

	if _, err := WriterForFormat("json"); err == nil {
		t.Fatalf("expected error for unsupported writer format")
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open csv: %v", err)
	}
	defer file.Close()
	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	return rows
}
