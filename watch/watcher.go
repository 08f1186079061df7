// Package watch keeps a ledger's Total Section current while the file is edited.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"worktally/ledger"
)

const DefaultDebounce = 200 * time.Millisecond

// Watcher rewrites the ledger after every settled change. The rewrite is
// skipped when the content already holds a current total, so its own write
// does not trigger another one.
type Watcher struct {
	path      string
	processor *ledger.Processor
	logger    zerolog.Logger
	debounce  time.Duration

	mu      sync.Mutex
	pending *time.Timer
	stopped bool
	updates chan ledger.Result

	// refreshMu serializes rewrites of the ledger file.
	refreshMu sync.Mutex
}

type Option func(*Watcher)

func WithDebounce(delay time.Duration) Option {
	return func(w *Watcher) {
		if delay > 0 {
			w.debounce = delay
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// WithUpdates receives the result of every rewrite that changed the file.
func WithUpdates(updates chan ledger.Result) Option {
	return func(w *Watcher) {
		w.updates = updates
	}
}

func New(path string, processor *ledger.Processor, opts ...Option) *Watcher {
	w := &Watcher{
		path:      path,
		processor: processor,
		logger:    zerolog.Nop(),
		debounce:  DefaultDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run refreshes the ledger once, then watches its directory until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()
	defer w.stop()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	if _, err := w.Refresh(); err != nil {
		return err
	}
	w.logger.Info().Str("ledger", w.path).Dur("debounce", w.debounce).Msg("watching ledger")

	target := filepath.Clean(w.path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.logger.Debug().Str("op", event.Op.String()).Msg("ledger changed")
			w.schedule()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Msg("watcher error")
		}
	}
}

// Refresh rewrites the ledger once and writes it only when the content changed.
func (w *Watcher) Refresh() (ledger.Result, error) {
	w.refreshMu.Lock()
	defer w.refreshMu.Unlock()
	return w.refresh()
}

func (w *Watcher) refresh() (ledger.Result, error) {
	lines, err := ledger.ReadFile(w.path)
	if err != nil {
		return ledger.Result{}, err
	}

	result := w.processor.Update(lines)
	if !result.Changed {
		return result, nil
	}
	if err := ledger.WriteFile(w.path, result.Lines); err != nil {
		return result, err
	}

	w.logger.Info().
		Str("total", ledger.FormatDuration(result.TotalMinutes)).
		Int("entries", result.Entries).
		Int("relocated", result.Relocated).
		Msg("ledger total updated")
	if w.updates != nil {
		select {
		case w.updates <- result:
		default:
		}
	}
	return result, nil
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending != nil {
		w.pending.Stop()
	}
	if w.stopped {
		return
	}
	w.pending = time.AfterFunc(w.debounce, func() {
		w.refreshMu.Lock()
		defer w.refreshMu.Unlock()
		if w.isStopped() {
			return
		}
		if _, err := w.refresh(); err != nil {
			if errors.Is(err, ledger.ErrLedgerNotFound) {
				w.logger.Debug().Str("ledger", w.path).Msg("ledger missing, waiting for it to come back")
				return
			}
			w.logger.Error().Err(err).Msg("refresh ledger")
		}
	})
}

func (w *Watcher) isStopped() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stopped
}

// stop cancels a pending rewrite and waits for a running one to finish.
func (w *Watcher) stop() {
	w.mu.Lock()
	w.stopped = true
	if w.pending != nil {
		w.pending.Stop()
	}
	w.mu.Unlock()

	w.refreshMu.Lock()
	w.refreshMu.Unlock()
}
