package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"worktally/importer"
	"worktally/ledger"
)

var (
	importInputs []string
	importFormat string
	importDryRun bool
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import CSV/TSV/Excel rows as ledger entries",
	Long: `Read source files and record each row in the ledger, then update the total.

Recognized columns (header names are case-insensitive; "_", "-" and spaces are ignored):
- date (YYYY-MM-DD or DD.MM.YYYY, optional)
- phase (optional; falls back to the first config rule whose file_template matches the file)
- title (required, rows without one are skipped)
- duration (1h 30m | 45m | 1:30 | minutes) or hours (decimal hours, "1,5" allowed)
- bullets (separated by "|")

Rows with the same date, phase and title are merged into one entry.
When --format is omitted, format is inferred from each input file extension.`,
	Example: `
  # Import one CSV file
  worktally import -i ./hours.csv

  # Import several files and preview the ledger
  worktally import -i ./blog.xlsx -i ./export.tsv --dry-run

  # Import with custom config file
  worktally --configFile ./custom-worktally.yaml import -i ./source.csv
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		path := a.ledgerFile(nil)

		result, err := importer.Run(importInputs, importFormat, *a.cfg)
		if err != nil {
			return err
		}

		for _, skipped := range result.Untitled {
			a.logger.Warn().Str("file", skipped.Path).Int("row", skipped.Row).Msg("row without title skipped")
		}

		lines, err := readLedgerOrEmpty(path)
		if err != nil {
			return err
		}
		updated := importer.Apply(a.processor, lines, result.Additions)
		a.logResult(path, updated)

		fmt.Printf("Import completed. Files: %d, Rows read: %d, Rows mapped: %d, Rows skipped: %d, Total: %s\n",
			result.FilesProcessed,
			result.RowsRead,
			result.RowsMapped,
			result.RowsSkipped,
			ledger.FormatDuration(updated.TotalMinutes),
		)

		if importDryRun {
			fmt.Print(ledger.JoinLines(updated.Lines))
			return nil
		}
		if updated.Changed {
			if err := ledger.WriteFile(path, updated.Lines); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringArrayVarP(&importInputs, "input", "i", nil, "Input file path (repeatable)")
	importCmd.Flags().StringVarP(&importFormat, "format", "f", "", "Input format: csv|tsv|excel (optional, inferred from extension when omitted)")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Print the resulting ledger instead of writing it")

	_ = importCmd.MarkFlagRequired("input")
}
