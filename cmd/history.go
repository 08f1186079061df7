package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"worktally/internal/timeutil"
	"worktally/ledger"
	"worktally/storage"
)

var (
	historyDBPath string
	historyLimit  int
	historyID     string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored ledger snapshots",
	Long: `List snapshots written by "worktally sync", newest first.
With --id the entries of a single snapshot are printed instead.`,
	Example: `
  # Last 10 snapshots
  worktally history

  # Entries of one snapshot
  worktally history --id 3f6c2a0e-5b8e-4b43-9a59-0bb1c8a1f0d2
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.OpenSQLite(historyDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		if strings.TrimSpace(historyID) != "" {
			entries, err := store.SnapshotEntries(strings.TrimSpace(historyID))
			if err != nil {
				return err
			}
			for _, entry := range entries {
				day := "-"
				if !entry.Date.IsZero() {
					day = timeutil.FormatDay(entry.Date)
				}
				fmt.Printf("%-5d %-10s %-8s %s\n", entry.Line, day, ledger.FormatDuration(entry.Minutes), entry.Title)
			}
			return nil
		}

		snapshots, err := store.ListSnapshots(historyLimit)
		if err != nil {
			return err
		}
		if len(snapshots) == 0 {
			fmt.Println("No snapshots stored.")
			return nil
		}
		for _, snapshot := range snapshots {
			fmt.Printf("%s  %s  %-8s %3d entries  %s\n",
				snapshot.ID,
				snapshot.TakenAt.Local().Format(time.RFC3339),
				ledger.FormatDuration(snapshot.TotalMinutes),
				snapshot.EntryCount,
				snapshot.Ledger,
			)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().StringVar(&historyDBPath, "db", defaultDBPath, "Path to the snapshot database")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Maximum number of snapshots (0 for all)")
	historyCmd.Flags().StringVar(&historyID, "id", "", "Print the entries of this snapshot")
}
