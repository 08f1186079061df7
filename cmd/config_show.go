package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"worktally/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values. Without a
config file the built-in defaults are shown.`,
	Example: `
  # Show active configuration
  worktally config show
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
		} else {
			fmt.Println("No config file loaded, using defaults.")
		}
		fmt.Println("Configuration:")
		fmt.Printf("%s: %s\n", config.KeyLedgerPath, cfg.Ledger.Path)
		fmt.Printf("%s: %s\n", config.KeyLedgerTitle, cfg.Ledger.Title)
		fmt.Printf("%s: %s\n", config.KeyLedgerEntryPrefix, cfg.Ledger.EntryPrefix)
		fmt.Printf("%s: %s\n", config.KeyLedgerTotalMarker, cfg.Ledger.TotalMarker)
		fmt.Printf("%s: %s\n", config.KeyLedgerDurationMarker, cfg.Ledger.DurationMarker)
		fmt.Printf("%s: %s\n", config.KeyAggregatePolicy, cfg.Aggregate.Policy)
		fmt.Printf("%s: %s\n", config.KeyTimerStateFile, cfg.Timer.StateFile)
		fmt.Printf("%s: %s\n", config.KeyLogLevel, cfg.Log.Level)
		fmt.Printf("rules: %d\n", len(cfg.Rules))
		for i, rule := range cfg.Rules {
			fmt.Printf("rules[%d].name: %s\n", i, rule.Name)
			fmt.Printf("rules[%d].file_template: %s\n", i, rule.FileTemplate)
			fmt.Printf("rules[%d].phase: %s\n", i, rule.Phase)
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
