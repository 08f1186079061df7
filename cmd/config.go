package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage worktally configuration file values.",
	Long: `Create, edit, display, and delete the worktally configuration file.

The configuration stores the ledger layout and import rules:
- ledger.path / ledger.title
- ledger.entry_prefix / ledger.total_marker / ledger.duration_marker
- aggregate.policy (all | first)
- timer.state_file
- log.level
- rules[].name / file_template / phase`,
	Example: `
  # Create default config in $HOME/.worktally.yaml
  worktally config create

  # Show active config and source file
  worktally config show

  # Open active config in editor (creates example if missing)
  worktally config edit

  # Add one import rule
  worktally config rule add --name blog --template "blog*.csv" --phase PL-7

  # Delete active config file
  worktally config delete
`,
}

var configCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Write the example configuration unless a config file already exists.",
	Example: `
  worktally config create
  worktally --configFile ./team.yaml config create
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return saveDefaultConfig()
	},
}

var configDeleteYes bool

var configDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the active configuration file.",
	Long: `Delete the configuration file currently loaded by worktally.
Asks for "Y" unless --yes is given.`,
	Example: `
  worktally config delete
  worktally --configFile ./team.yaml config delete --yes
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := viper.ConfigFileUsed()
		if configPath == "" {
			return fmt.Errorf("no configuration file found")
		}

		if !configDeleteYes {
			confirmed, err := confirmDeletePrompt(deletePromptInput, deletePromptOutput, configPath)
			if err != nil {
				return err
			}
			if !confirmed {
				return fmt.Errorf("delete aborted: confirmation was not 'Y'")
			}
		}

		if err := os.Remove(configPath); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("configuration file not found: %s", configPath)
			}
			return fmt.Errorf("delete configuration file: %w", err)
		}

		fmt.Printf("Configuration file deleted: %s\n", configPath)
		return nil
	},
}

func saveDefaultConfig() error {
	configPath, err := resolveConfigEditPath(cfgFile, viper.ConfigFileUsed())
	if err != nil {
		return err
	}

	created, err := ensureConfigFileWithTemplate(configPath)
	if err != nil {
		return err
	}
	if !created {
		fmt.Printf("Config file already exists at: %s\n", configPath)
		return nil
	}

	fmt.Printf("New config file created at: %s\n", configPath)
	return nil
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configCreateCmd)
	configCmd.AddCommand(configDeleteCmd)

	configDeleteCmd.Flags().BoolVarP(&configDeleteYes, "yes", "y", false, "Skip the confirmation prompt")
}
