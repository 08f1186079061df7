package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"worktally/ledger"
	"worktally/output"
)

var reportFormat string

var reportCmd = &cobra.Command{
	Use:     "report [ledger]",
	Aliases: []string{"sum"},
	Short:   "Print ledger entries and their total without writing.",
	Long: `Print every entry with its header line, date, title and duration, followed by
the aggregate under the configured policy. Nothing is written.

Text output is colored only when stdout is a terminal.`,
	Example: `
  # Table of entries
  worktally report

  # Machine readable
  worktally sum --format yaml
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		path := a.ledgerFile(args)

		lines, err := ledger.ReadFile(path)
		if err != nil {
			return err
		}

		report := output.NewReport(path, a.processor.Policy(), a.processor.Entries(lines))
		return output.WriteReport(os.Stdout, reportFormat, report, output.IsTerminal(os.Stdout))
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "text", "Output format: text|yaml")
}
