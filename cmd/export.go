package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"worktally/ledger"
	"worktally/output"
)

var (
	exportFormat string
	exportMode   string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export [ledger]",
	Short: "Export ledger entries to CSV/Excel",
	Long: `Export the entries of the ledger.

Modes:
- raw: one row per entry (line, date, title, minutes, duration, bullets)
- daily: per-day aggregates (minutes, duration, hours, entry count); undated entries are grouped last

Output format can be selected explicitly via --format or inferred from --output extension.`,
	Example: `
  # Export entries to CSV
  worktally export --mode raw --output ./entries.csv

  # Export entries to Excel
  worktally export --mode raw --output ./entries.xlsx

  # Export daily summary to CSV
  worktally export --mode daily --output ./daily-summary.csv

  # Force Excel format independent of extension
  worktally export --mode daily --format excel --output ./daily-summary.out
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format := exportFormat
		if strings.TrimSpace(format) == "" {
			format = detectExportFormat(exportOutput)
		}

		a, err := loadApp()
		if err != nil {
			return err
		}
		path := a.ledgerFile(args)

		lines, err := ledger.ReadFile(path)
		if err != nil {
			return err
		}
		entries := a.processor.Entries(lines)

		mode := strings.TrimSpace(strings.ToLower(exportMode))
		switch mode {
		case "", "raw":
			writer, writerErr := output.WriterForFormat(format)
			if writerErr != nil {
				return writerErr
			}
			if err := writer.Write(exportOutput, entries); err != nil {
				return err
			}
			fmt.Printf("Export completed. Rows: %d, Mode: raw, Format: %s, File: %s\n", len(entries), format, exportOutput)
		case "daily":
			summaries := output.BuildDailySummaries(entries)
			if err := output.WriteDailySummaries(exportOutput, format, summaries); err != nil {
				return err
			}
			fmt.Printf("Export completed. Days: %d, Mode: daily, Format: %s, File: %s\n", len(summaries), format, exportOutput)
		default:
			return fmt.Errorf("unsupported export mode: %s (supported: raw, daily)", exportMode)
		}
		return nil
	},
}

func detectExportFormat(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "csv":
		return "csv"
	case "xlsx", "xlsm", "xls":
		return "excel"
	default:
		return "csv"
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportMode, "mode", "raw", "Export mode: raw|daily")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: csv|excel (optional, inferred from output extension)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")

	_ = exportCmd.MarkFlagRequired("output")
}
