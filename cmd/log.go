package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"worktally/internal/timer"
	"worktally/internal/timeutil"
	"worktally/ledger"
)

var (
	logTitle    string
	logPhase    string
	logDate     string
	logTime     string
	logUseTimer bool
	logBullets  []string
	logDryRun   bool
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Add a block of work to the ledger and update the total.",
	Long: `Record work in the ledger. The entry header is built from date, phase and title:

  ### 📌 2025-09-20 – PL-6h – Gitignore integration

When an entry with the same header already exists, missing bullets are appended
and its duration is increased. Otherwise a new entry is inserted before the Total
Section. The ledger is created when it does not exist yet.

Durations accept "1h 30m", "45m", "1:30" or plain minutes. With --use-timer the
minutes elapsed since "worktally timer start" are used and the timer is cleared.`,
	Example: `
  # Log 45 minutes for today
  worktally log --phase PL-7 --title "Blog layout" --time 45m --bullet "hero section" --bullet "footer"

  # Log the running timer
  worktally log --title "Code review" --use-timer

  # Preview the resulting ledger without writing
  worktally log --title "Planning" --time 1:15 --date 2025-09-20 --dry-run
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		path := a.ledgerFile(nil)

		date := timeutil.StartOfDay(time.Now())
		if strings.TrimSpace(logDate) != "" {
			date, err = timeutil.ParseDay(logDate)
			if err != nil {
				return err
			}
		}

		var (
			stopwatch *timer.Store
			minutes   int
		)
		switch {
		case logUseTimer:
			stopwatch = timer.NewStore(a.cfg.Timer.StateFile)
			_, minutes, err = stopwatch.Status()
			if err != nil {
				return fmt.Errorf("read timer: %w", err)
			}
		case strings.TrimSpace(logTime) != "":
			minutes, err = ledger.ParseInput(logTime)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("either --time or --use-timer is required")
		}

		lines, err := readLedgerOrEmpty(path)
		if err != nil {
			return err
		}

		lines = a.processor.Upsert(lines, ledger.Addition{
			Date:    date,
			Phase:   logPhase,
			Title:   logTitle,
			Bullets: logBullets,
			Minutes: minutes,
		})
		result := a.processor.Update(lines)
		a.logResult(path, result)

		if logDryRun {
			fmt.Print(ledger.JoinLines(result.Lines))
			return nil
		}
		if err := ledger.WriteFile(path, result.Lines); err != nil {
			return err
		}
		if stopwatch != nil {
			if err := stopwatch.Cancel(); err != nil && !errors.Is(err, timer.ErrTimerNotRunning) {
				return err
			}
		}

		fmt.Printf("Logged %s for %q. Total: %s (%d entries) - %s\n",
			ledger.FormatDuration(minutes),
			logTitle,
			ledger.FormatDuration(result.TotalMinutes),
			result.Entries,
			path,
		)
		return nil
	},
}

// readLedgerOrEmpty treats a missing ledger as an empty one.
func readLedgerOrEmpty(path string) ([]string, error) {
	lines, err := ledger.ReadFile(path)
	if err != nil {
		if errors.Is(err, ledger.ErrLedgerNotFound) {
			fmt.Fprintf(os.Stderr, "Ledger %s not found, creating it.\n", path)
			return []string{}, nil
		}
		return nil, err
	}
	return lines, nil
}

func init() {
	rootCmd.AddCommand(logCmd)

	logCmd.Flags().StringVarP(&logTitle, "title", "t", "", "Entry title")
	logCmd.Flags().StringVarP(&logPhase, "phase", "p", "", "Phase or ticket placed between date and title")
	logCmd.Flags().StringVarP(&logDate, "date", "d", "", "Entry date YYYY-MM-DD (default: today)")
	logCmd.Flags().StringVar(&logTime, "time", "", "Duration: 1h 30m | 45m | 1:30 | minutes")
	logCmd.Flags().BoolVar(&logUseTimer, "use-timer", false, "Use the minutes elapsed on the running timer")
	logCmd.Flags().StringArrayVarP(&logBullets, "bullet", "b", nil, "Bullet line (repeatable)")
	logCmd.Flags().BoolVar(&logDryRun, "dry-run", false, "Print the resulting ledger instead of writing it")

	_ = logCmd.MarkFlagRequired("title")
	logCmd.MarkFlagsMutuallyExclusive("time", "use-timer")
}
