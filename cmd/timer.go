package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"worktally/config"
	"worktally/internal/timer"
	"worktally/ledger"
)

var timerCmd = &cobra.Command{
	Use:   "timer",
	Short: "Track elapsed work time for \"worktally log --use-timer\"",
	Long: `A single work timer stored in timer.state_file (default .worktally-timer.toml).

Start it before working, then log with "worktally log --title ... --use-timer",
which records the elapsed minutes and clears the timer.`,
}

var timerStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the work timer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := timerStore()
		if err != nil {
			return err
		}
		state, err := store.Start()
		if err != nil {
			return err
		}
		fmt.Printf("Timer started at %s (%s)\n", state.StartedAt.Local().Format("15:04:05"), store.Path())
		return nil
	},
}

var timerStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show elapsed time of the running timer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := timerStore()
		if err != nil {
			return err
		}
		state, minutes, err := store.Status()
		if err != nil {
			return err
		}
		fmt.Printf("Timer running since %s: %s\n", state.StartedAt.Local().Format("2006-01-02 15:04:05"), ledger.FormatDuration(minutes))
		return nil
	},
}

var timerStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the timer and print the elapsed time without logging it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := timerStore()
		if err != nil {
			return err
		}
		minutes, err := store.Stop()
		if err != nil {
			return err
		}
		fmt.Printf("Timer stopped after %s\n", ledger.FormatDuration(minutes))
		return nil
	},
}

var timerCancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Discard the running timer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := timerStore()
		if err != nil {
			return err
		}
		if err := store.Cancel(); err != nil {
			return err
		}
		fmt.Println("Timer cancelled.")
		return nil
	},
}

func timerStore() (*timer.Store, error) {
	cfg, err := config.LoadAndValidate()
	if err != nil {
		return nil, err
	}
	return timer.NewStore(cfg.Timer.StateFile), nil
}

func init() {
	rootCmd.AddCommand(timerCmd)
	timerCmd.AddCommand(timerStartCmd)
	timerCmd.AddCommand(timerStatusCmd)
	timerCmd.AddCommand(timerStopCmd)
	timerCmd.AddCommand(timerCancelCmd)
}
