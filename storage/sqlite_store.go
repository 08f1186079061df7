package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"worktally/internal/timeutil"
	"worktally/worklog"
)

type SQLiteStore struct {
	db *sql.DB
}

var ErrSnapshotNotFound = errors.New("snapshot not found")

// Snapshot is one stored run over a ledger.
type Snapshot struct {
	ID           string
	TakenAt      time.Time
	Ledger       string
	TotalMinutes int
	EntryCount   int
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	id TEXT PRIMARY KEY,
	taken_at TEXT NOT NULL,
	ledger TEXT NOT NULL,
	total_minutes INTEGER NOT NULL CHECK(total_minutes >= 0),
	entry_count INTEGER NOT NULL CHECK(entry_count >= 0)
);
CREATE TABLE IF NOT EXISTS snapshot_entries (
	snapshot_id TEXT NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	line INTEGER NOT NULL,
	day TEXT NOT NULL,
	title TEXT NOT NULL,
	minutes INTEGER NOT NULL CHECK(minutes >= 0),
	bullets TEXT NOT NULL,
	PRIMARY KEY(snapshot_id, position)
);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// InsertSnapshot stores the entries of one ledger run in a single transaction.
func (s *SQLiteStore) InsertSnapshot(ledgerPath string, takenAt time.Time, entries []worklog.Entry) (Snapshot, error) {
	snapshot := Snapshot{
		ID:         uuid.NewString(),
		TakenAt:    takenAt.Truncate(time.Second),
		Ledger:     ledgerPath,
		EntryCount: len(entries),
	}
	for _, entry := range entries {
		snapshot.TotalMinutes += entry.Minutes
	}

	tx, err := s.db.Begin()
	if err != nil {
		return Snapshot{}, fmt.Errorf("begin transaction: %w", err)
	}

	if _, err := tx.Exec(
		`INSERT INTO snapshots (id, taken_at, ledger, total_minutes, entry_count) VALUES (?, ?, ?, ?, ?);`,
		snapshot.ID,
		snapshot.TakenAt.Format(time.RFC3339),
		snapshot.Ledger,
		snapshot.TotalMinutes,
		snapshot.EntryCount,
	); err != nil {
		_ = tx.Rollback()
		return Snapshot{}, fmt.Errorf("insert snapshot: %w", err)
	}

	const insertStmt = `
INSERT INTO snapshot_entries (
	snapshot_id,
	position,
	line,
	day,
	title,
	minutes,
	bullets
) VALUES (?, ?, ?, ?, ?, ?, ?);`

	stmt, err := tx.Prepare(insertStmt)
	if err != nil {
		_ = tx.Rollback()
		return Snapshot{}, fmt.Errorf("prepare insert statement: %w", err)
	}
	defer stmt.Close()

	for i, entry := range entries {
		if _, err := stmt.Exec(
			snapshot.ID,
			i,
			entry.Line,
			entry.Day(),
			entry.Title,
			entry.Minutes,
			strings.Join(entry.Bullets, "\n"),
		); err != nil {
			_ = tx.Rollback()
			return Snapshot{}, fmt.Errorf("insert snapshot entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Snapshot{}, fmt.Errorf("commit transaction: %w", err)
	}

	return snapshot, nil
}

// ListSnapshots returns the newest snapshots first; limit <= 0 returns all.
func (s *SQLiteStore) ListSnapshots(limit int) ([]Snapshot, error) {
	query := `
SELECT id, taken_at, ledger, total_minutes, entry_count
FROM snapshots
ORDER BY taken_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query+";", args...)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	defer rows.Close()

	snapshots := make([]Snapshot, 0, 16)
	for rows.Next() {
		var (
			snapshot Snapshot
			takenRaw string
		)
		if err := rows.Scan(&snapshot.ID, &takenRaw, &snapshot.Ledger, &snapshot.TotalMinutes, &snapshot.EntryCount); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		snapshot.TakenAt, err = time.Parse(time.RFC3339, takenRaw)
		if err != nil {
			return nil, fmt.Errorf("parse snapshot time %q: %w", takenRaw, err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snapshots: %w", err)
	}

	return snapshots, nil
}

// SnapshotEntries returns the entries stored with one snapshot, in ledger order.
func (s *SQLiteStore) SnapshotEntries(id string) ([]worklog.Entry, error) {
	var exists int
	err := s.db.QueryRow(`SELECT 1 FROM snapshots WHERE id = ?;`, id).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, id)
		}
		return nil, fmt.Errorf("query snapshot %s: %w", id, err)
	}

	const query = `
SELECT line, day, title, minutes, bullets
FROM snapshot_entries
WHERE snapshot_id = ?
ORDER BY position;
`
	rows, err := s.db.Query(query, id)
	if err != nil {
		return nil, fmt.Errorf("query snapshot entries: %w", err)
	}
	defer rows.Close()

	entries := make([]worklog.Entry, 0, 32)
	for rows.Next() {
		var (
			entry      worklog.Entry
			dayRaw     string
			bulletsRaw string
		)
		if err := rows.Scan(&entry.Line, &dayRaw, &entry.Title, &entry.Minutes, &bulletsRaw); err != nil {
			return nil, fmt.Errorf("scan snapshot entry: %w", err)
		}
		if dayRaw != "" {
			entry.Date, err = timeutil.ParseDay(dayRaw)
			if err != nil {
				return nil, fmt.Errorf("parse snapshot entry day: %w", err)
			}
		}
		if bulletsRaw != "" {
			entry.Bullets = strings.Split(bulletsRaw, "\n")
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snapshot entries: %w", err)
	}

	return entries, nil
}
