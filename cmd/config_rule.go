package cmd

import "github.com/spf13/cobra"

var configRuleCmd = &cobra.Command{
	Use:   "rule",
	Short: "Manage import rules in config.",
	Long: `Manage import rules stored under config key rules.

A rule assigns a phase to rows of imported files whose name matches file_template
and that carry no phase column of their own.`,
}

func init() {
	configCmd.AddCommand(configRuleCmd)
}
