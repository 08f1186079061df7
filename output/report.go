package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"worktally/ledger"
	"worktally/worklog"
)

var (
	colorHeader = lipgloss.Color("#fe8019")
	colorDim    = lipgloss.Color("#928374")
	colorTotal  = lipgloss.Color("#8ec07c")

	styleHeader = lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleTotal  = lipgloss.NewStyle().Foreground(colorTotal).Bold(true)
)

type Report struct {
	Ledger       string        `yaml:"ledger"`
	Policy       string        `yaml:"policy"`
	TotalMinutes int           `yaml:"total_minutes"`
	Total        string        `yaml:"total"`
	Entries      []ReportEntry `yaml:"entries"`
}

type ReportEntry struct {
	Line     int      `yaml:"line"`
	Date     string   `yaml:"date,omitempty"`
	Title    string   `yaml:"title"`
	Minutes  int      `yaml:"minutes"`
	Duration string   `yaml:"duration"`
	Bullets  []string `yaml:"bullets,omitempty"`
}

func NewReport(path string, policy ledger.Policy, entries []worklog.Entry) Report {
	report := Report{
		Ledger:  path,
		Policy:  string(policy),
		Entries: make([]ReportEntry, 0, len(entries)),
	}
	for _, entry := range entries {
		report.TotalMinutes += entry.Minutes
		report.Entries = append(report.Entries, ReportEntry{
			Line:     entry.Line,
			Date:     entry.Day(),
			Title:    entry.Title,
			Minutes:  entry.Minutes,
			Duration: ledger.FormatDuration(entry.Minutes),
			Bullets:  entry.Bullets,
		})
	}
	report.Total = ledger.FormatDuration(report.TotalMinutes)
	return report
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func WriteReport(w io.Writer, format string, report Report, styled bool) error {
	switch normalizeFormat(format) {
	case "", "text":
		_, err := io.WriteString(w, RenderText(report, styled))
		return err
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(report); err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unsupported report format: %s (supported: text, yaml)", format)
	}
}

// RenderText renders an aligned entry table followed by the total line.
func RenderText(report Report, styled bool) string {
	render := func(style lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return style.Render(text)
	}

	headers := []string{"LINE", "DATE", "TITLE", "DURATION"}
	rows := make([][]string, 0, len(report.Entries))
	for _, entry := range report.Entries {
		date := entry.Date
		if date == "" {
			date = "-"
		}
		rows = append(rows, []string{strconv.Itoa(entry.Line), date, entry.Title, entry.Duration})
	}

	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = lipgloss.Width(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	const colGap = 2
	var b strings.Builder
	writeRow := func(cells []string, style *lipgloss.Style) {
		for i, cell := range cells {
			text := cell
			if style != nil {
				text = render(*style, cell)
			}
			b.WriteString(text)
			if i < len(cells)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+colGap))
			}
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "%s\n", render(styleDim, report.Ledger))
	writeRow(headers, &styleHeader)
	separators := make([]string, len(widths))
	for i, w := range widths {
		separators[i] = strings.Repeat("─", w)
	}
	writeRow(separators, &styleDim)
	for _, row := range rows {
		writeRow(row, nil)
	}
	fmt.Fprintf(&b, "\n%s %s (%d entries, policy %s)\n",
		render(styleHeader, "Total:"),
		render(styleTotal, report.Total),
		len(report.Entries),
		report.Policy,
	)
	return b.String()
}
