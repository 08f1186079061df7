/*
Copyright © 2025 riad@rsworld.eu

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"github.com/spf13/viper"
	"os"

	"github.com/spf13/cobra"
	"worktally/config"
)

var (
	cfgFile       string
	ledgerPath    string
	logLevelValue string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "worktally [ledger]",
	Short: "Recompute the total of a markdown worklog ledger.",
	Long: `
**********************************************
*              WORK TALLY                    *
**********************************************

Reads a worklog ledger, sums every duration line of every entry, and rewrites
the Total Section at the end of the file. Entries are never modified.

Without arguments the ledger configured in ledger.path (default: worklog.md in
the working directory) is updated.
`,
	Example: `
  # Recompute the total of ./worklog.md
  worktally

  # Recompute the total of another ledger
  worktally ./notes/worklog.md

  # Log 45 minutes of work and update the total
  worktally log --phase PL-7 --title "Blog layout" --time 45m --bullet "hero section"

  # Print entries and the total without writing
  worktally report

  # Keep the total current while editing
  worktally watch
`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUpdate(args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.worktally.yaml, then ./.worktally.yaml)")
	rootCmd.PersistentFlags().StringVarP(&ledgerPath, "ledger", "l", "", "Ledger file (overrides ledger.path)")
	rootCmd.PersistentFlags().StringVar(&logLevelValue, "log-level", "", "Log level: debug|info|warn|error (overrides log.level)")

	_ = viper.BindPFlag(config.KeyLedgerPath, rootCmd.PersistentFlags().Lookup("ledger"))
	_ = viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig reads in the config file if one is found. Environment variables are not consulted.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".worktally" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".worktally")
	}

	// A missing config file is fine: defaults apply.
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			fmt.Fprintln(os.Stderr, "Config file could not be read:", err)
		}
	}
}
