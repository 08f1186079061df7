// Package timer keeps a single running work timer in a small TOML state file.
package timer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"worktally/internal/timeutil"
)

var (
	ErrTimerRunning    = errors.New("timer already running")
	ErrTimerNotRunning = errors.New("no timer running")
)

type State struct {
	StartedAt time.Time `toml:"started_at"`
}

type Store struct {
	path string
	now  func() time.Time
}

type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func NewStore(path string, opts ...Option) *Store {
	s := &Store{path: path, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Path() string {
	return s.path
}

// Start records the current time. It fails with ErrTimerRunning when a timer exists.
func (s *Store) Start() (State, error) {
	if _, err := s.load(); err == nil {
		return State{}, ErrTimerRunning
	} else if !errors.Is(err, ErrTimerNotRunning) {
		return State{}, err
	}

	state := State{StartedAt: s.now().Truncate(time.Second)}
	content, err := toml.Marshal(state)
	if err != nil {
		return State{}, fmt.Errorf("encode timer state: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return State{}, fmt.Errorf("create timer directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, content, 0o600); err != nil {
		return State{}, fmt.Errorf("write timer state %s: %w", s.path, err)
	}
	return state, nil
}

// Status returns the running timer and the whole minutes elapsed since it started.
func (s *Store) Status() (State, int, error) {
	state, err := s.load()
	if err != nil {
		return State{}, 0, err
	}
	return state, timeutil.ElapsedMinutes(state.StartedAt, s.now()), nil
}

// Stop ends the running timer and returns its elapsed whole minutes.
func (s *Store) Stop() (int, error) {
	_, minutes, err := s.Status()
	if err != nil {
		return 0, err
	}
	if err := s.Cancel(); err != nil {
		return 0, err
	}
	return minutes, nil
}

// Cancel discards the running timer.
func (s *Store) Cancel() error {
	if err := os.Remove(s.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrTimerNotRunning
		}
		return fmt.Errorf("remove timer state %s: %w", s.path, err)
	}
	return nil
}

func (s *Store) load() (State, error) {
	var state State
	content, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return state, ErrTimerNotRunning
		}
		return state, fmt.Errorf("read timer state %s: %w", s.path, err)
	}
	if err := toml.Unmarshal(content, &state); err != nil {
		return state, fmt.Errorf("parse timer state %s: %w", s.path, err)
	}
	if state.StartedAt.IsZero() {
		return state, fmt.Errorf("parse timer state %s: started_at is missing", s.path)
	}
	return state, nil
}
