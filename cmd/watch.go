package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"worktally/watch"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [ledger]",
	Short: "Keep the ledger total current while the file is edited",
	Long: `Watch the ledger and rewrite its Total Section every time the file is saved.
Writes are debounced; the file is only written when the total block changes.
Stop with Ctrl+C.`,
	Example: `
  worktally watch
  worktally watch notes/worklog.md --debounce 500ms
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		path := a.ledgerFile(args)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		watcher := watch.New(path, a.processor,
			watch.WithLogger(a.logger),
			watch.WithDebounce(watchDebounce),
		)

		fmt.Printf("Watching %s (Ctrl+C to stop)\n", path)
		return watcher.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "Delay between the last change and the rewrite")
}
