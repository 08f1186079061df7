package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	deleteDBPath string
	deleteYes    bool
)

var (
	deletePromptInput  io.Reader = os.Stdin
	deletePromptOutput io.Writer = os.Stdout
)

// sqliteSidecars are files SQLite may keep next to the database.
var sqliteSidecars = []string{"-wal", "-shm", "-journal"}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the snapshot database file",
	Long: `Delete the snapshot database written by "worktally sync", including SQLite
journal files next to it. The ledger is not touched.

Asks for "Y" unless --yes is given.`,
	Example: `
  # Delete ./worktally.db (requires confirmation)
  worktally delete

  # Delete another database without asking
  worktally delete --db ~/tally.db --yes
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !deleteYes {
			confirmed, err := confirmDeletePrompt(deletePromptInput, deletePromptOutput, deleteDBPath)
			if err != nil {
				return err
			}
			if !confirmed {
				return fmt.Errorf("delete aborted: confirmation was not 'Y'")
			}
		}

		removed, err := removeDatabaseFile(deleteDBPath)
		if err != nil {
			return err
		}
		fmt.Printf("Deleted snapshot database: %s (%d files)\n", deleteDBPath, removed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().StringVar(&deleteDBPath, "db", defaultDBPath, "Path to the snapshot database")
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}

func confirmDeletePrompt(input io.Reader, output io.Writer, path string) (bool, error) {
	if input == nil {
		return false, fmt.Errorf("delete confirmation input is not available")
	}
	if output == nil {
		output = io.Discard
	}

	if _, err := fmt.Fprintf(output, "Delete %q? Type Y to confirm: ", path); err != nil {
		return false, fmt.Errorf("write delete confirmation prompt: %w", err)
	}

	line, err := bufio.NewReader(input).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read delete confirmation: %w", err)
	}
	return strings.TrimSpace(line) == "Y", nil
}

// removeDatabaseFile deletes the database and any sidecar files, returning how
// many files were removed.
func removeDatabaseFile(path string) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, fmt.Errorf("database file not found: %s", path)
		}
		return 0, fmt.Errorf("stat database file: %w", err)
	}
	if info.IsDir() {
		return 0, fmt.Errorf("database path is a directory: %s", path)
	}
	if err := os.Remove(path); err != nil {
		return 0, fmt.Errorf("delete database file: %w", err)
	}

	removed := 1
	for _, suffix := range sqliteSidecars {
		err := os.Remove(path + suffix)
		switch {
		case err == nil:
			removed++
		case !errors.Is(err, os.ErrNotExist):
			return removed, fmt.Errorf("delete %s: %w", path+suffix, err)
		}
	}
	return removed, nil
}
