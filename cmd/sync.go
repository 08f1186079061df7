package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"worktally/ledger"
	"worktally/storage"
)

const defaultDBPath = "./worktally.db"

var syncDBPath string

var syncCmd = &cobra.Command{
	Use:   "sync [ledger]",
	Short: "Store a snapshot of the ledger entries in SQLite",
	Long: `Read the ledger and store its entries, total and entry count as one snapshot
in the local SQLite database. The ledger itself is not modified.

Use "worktally history" to list stored snapshots.`,
	Example: `
  # Snapshot ./worklog.md into ./worktally.db
  worktally sync

  # Use another database
  worktally sync notes/worklog.md --db ~/tally.db
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
		entries := a.processor.Entries(lines)

		store, err := storage.OpenSQLite(syncDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		snapshot, err := store.InsertSnapshot(path, time.Now(), entries)
		if err != nil {
			return err
		}
		a.logger.Debug().Str("snapshot", snapshot.ID).Str("db", syncDBPath).Msg("snapshot stored")

		fmt.Printf("Snapshot %s stored. Entries: %d, Total: %s, DB: %s\n",
			snapshot.ID,
			snapshot.EntryCount,
			ledger.FormatDuration(snapshot.TotalMinutes),
			syncDBPath,
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.Flags().StringVar(&syncDBPath, "db", defaultDBPath, "Path to the snapshot database")
}
