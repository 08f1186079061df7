package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"worktally/ledger"
)

var normalizeDryRun bool

var normalizeCmd = &cobra.Command{
	Use:   "normalize [ledger]",
	Short: "Merge each entry's duration lines into one line at its end.",
	Long: `Normalize every entry of the ledger: all duration lines of an entry are summed
into a single duration line placed after its bullets ("⏱ 0m" when the entry has
none), and entries are separated by exactly one blank line. The Total Section is
recomputed afterwards.

Every duration line is summed regardless of aggregate.policy.`,
	Example: `
  # Normalize ./worklog.md
  worktally normalize

  # Show the normalized ledger without writing
  worktally normalize --dry-run
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

		result := a.processor.Update(a.processor.Normalize(lines))
		result.Changed = ledger.JoinLines(lines) != ledger.JoinLines(result.Lines)
		a.logResult(path, result)

		if normalizeDryRun {
			fmt.Print(ledger.JoinLines(result.Lines))
			return nil
		}
		if result.Changed {
			if err := ledger.WriteFile(path, result.Lines); err != nil {
				return err
			}
		}

		fmt.Printf("Normalized %d entries. Total: %s - %s\n", result.Entries, ledger.FormatDuration(result.TotalMinutes), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(normalizeCmd)

	normalizeCmd.Flags().BoolVar(&normalizeDryRun, "dry-run", false, "Print the normalized ledger instead of writing it")
}
