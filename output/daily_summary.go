package output

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"worktally/ledger"
	"worktally/worklog"
)

// UndatedDay labels the summary of entries whose header carries no date.
const UndatedDay = "undated"

type DailySummary struct {
	Date       string
	Minutes    int
	Hours      float64
	EntryCount int
}

// BuildDailySummaries groups entries by day in ascending order; undated entries
// form one trailing group.
func BuildDailySummaries(entries []worklog.Entry) []DailySummary {
	if len(entries) == 0 {
		return []DailySummary{}
	}

	byDay := make(map[string]*DailySummary)
	for _, entry := range entries {
		day := entry.Day()
		if day == "" {
			day = UndatedDay
		}
		summary, ok := byDay[day]
		if !ok {
			summary = &DailySummary{Date: day}
			byDay[day] = summary
		}
		summary.Minutes += entry.Minutes
		summary.EntryCount++
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		if days[i] == UndatedDay || days[j] == UndatedDay {
			return days[j] == UndatedDay && days[i] != UndatedDay
		}
		return days[i] < days[j]
	})

	summaries := make([]DailySummary, 0, len(days))
	for _, day := range days {
		summary := *byDay[day]
		summary.Hours = roundHours(float64(summary.Minutes) / 60.0)
		summaries = append(summaries, summary)
	}

	return summaries
}

func roundHours(value float64) float64 {
	return math.Round(value*100) / 100
}

var dailySummaryHeaders = []string{"Date", "Minutes", "Duration", "Hours", "EntryCount"}

func dailySummaryRow(summary DailySummary) []string {
	return []string{
		summary.Date,
		strconv.Itoa(summary.Minutes),
		ledger.FormatDuration(summary.Minutes),
		fmt.Sprintf("%.2f", summary.Hours),
		strconv.Itoa(summary.EntryCount),
	}
}

func WriteDailySummaries(path, format string, summaries []DailySummary) error {
	rows := make([][]string, 0, len(summaries))
	for _, summary := range summaries {
		rows = append(rows, dailySummaryRow(summary))
	}

	switch normalizeFormat(format) {
	case "csv":
		return writeCSV(path, dailySummaryHeaders, rows)
	case "excel", "xlsx":
		return writeExcel(path, dailySummaryHeaders, rows)
	default:
		return fmt.Errorf("unsupported output format for daily summaries: %s", format)
	}
}
