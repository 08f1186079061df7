package cmd

import (
	"os"
	"strings"

	"github.com/rs/zerolog"

	"worktally/config"
	"worktally/internal/logging"
	"worktally/ledger"
)

// app bundles what every ledger command needs.
type app struct {
	cfg       *config.Config
	processor *ledger.Processor
	logger    zerolog.Logger
}

func loadApp() (*app, error) {
	cfg, err := config.LoadAndValidate()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log.Level, os.Stderr)
	if err != nil {
		return nil, err
	}

	processor, err := cfg.Processor(ledger.WithTransitionHook(func(line int, from, to ledger.State) {
		logger.Debug().Int("line", line+1).Stringer("from", from).Stringer("to", to).Msg("scanner transition")
	}))
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, processor: processor, logger: logger}, nil
}

// ledgerFile returns the positional ledger argument when given, else ledger.path.
func (a *app) ledgerFile(args []string) string {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return args[0]
	}
	return a.cfg.Ledger.Path
}

func (a *app) logResult(path string, result ledger.Result) {
	event := a.logger.Debug()
	if result.StaleTotals > 1 || result.Relocated > 0 {
		event = a.logger.Warn()
	}
	event.
		Str("ledger", path).
		Int("entries", result.Entries).
		Int("total_minutes", result.TotalMinutes).
		Int("stale_totals", result.StaleTotals).
		Int("relocated_lines", result.Relocated).
		Bool("changed", result.Changed).
		Msg("ledger processed")
}
