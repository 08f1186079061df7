package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"worktally/ledger"
)

var updateCmd = &cobra.Command{
	Use:   "update [ledger]",
	Short: "Rewrite the Total Section of the ledger.",
	Long: `Read the ledger, sum the duration lines of all entries and replace any existing
Total Section with a freshly computed one. Same as running worktally without a
subcommand.

Lines found after an old Total Section are kept and moved above the new one.
The file is only written when its content changes.`,
	Example: `
  # Update ./worklog.md
  worktally update

  # Update a ledger elsewhere
  worktally update ~/notes/worklog.md
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUpdate(args)
	},
}

func runUpdate(args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	path := a.ledgerFile(args)

	lines, err := ledger.ReadFile(path)
	if err != nil {
		return err
	}

	result := a.processor.Update(lines)
	a.logResult(path, result)
	if result.Changed {
		if err := ledger.WriteFile(path, result.Lines); err != nil {
			return err
		}
	}

	status := "updated"
	if !result.Changed {
		status = "already up to date"
	}
	fmt.Printf("Total: %s (%d entries) - %s: %s\n", ledger.FormatDuration(result.TotalMinutes), result.Entries, status, path)
	return nil
}

func init() {
	rootCmd.AddCommand(updateCmd)
}
