package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"worktally/worklog"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "worktally_test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_InsertAndReadSnapshot(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	entries := []worklog.Entry{
		{Line: 3, Date: time.Date(2025, 9, 20, 0, 0, 0, 0, time.Local), Title: "PL-1 – Setup", Minutes: 90, Bullets: []string{"scaffold", "ci"}},
		{Line: 9, Title: "Planning", Minutes: 15},
	}
	takenAt := time.Date(2025, 9, 20, 18, 30, 12, 500, time.UTC)

	snapshot, err := store.InsertSnapshot("worklog.md", takenAt, entries)
	if err != nil {
		t.Fatalf("insert snapshot: %v", err)
	}
	if snapshot.ID == "" || snapshot.TotalMinutes != 105 || snapshot.EntryCount != 2 {
		t.Fatalf("unexpected snapshot: %+v", snapshot)
	}

	stored, err := store.SnapshotEntries(snapshot.ID)
	if err != nil {
		t.Fatalf("snapshot entries: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(stored))
	}
	if stored[0].Day() != "2025-09-20" || stored[0].Title != "PL-1 – Setup" || len(stored[0].Bullets) != 2 {
		t.Fatalf("unexpected first entry: %+v", stored[0])
	}
	if !stored[1].Date.IsZero() || stored[1].Bullets != nil || stored[1].Line != 9 {
		t.Fatalf("unexpected second entry: %+v", stored[1])
	}
}

func TestSQLiteStore_ListSnapshotsNewestFirst(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	base := time.Date(2025, 9, 20, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		entries := []worklog.Entry{{Line: 1, Title: "x", Minutes: (i + 1) * 10}}
		if _, err := store.InsertSnapshot("worklog.md", base.Add(time.Duration(i)*time.Hour), entries); err != nil {
			t.Fatalf("insert snapshot %d: %v", i, err)
		}
	}

	all, err := store.ListSnapshots(0)
	if err != nil {
		t.Fatalf("list snapshots: %v", err)
	}
	if len(all) != 3 || all[0].TotalMinutes != 30 || all[2].TotalMinutes != 10 {
		t.Fatalf("unexpected snapshot order: %+v", all)
	}
	if !all[0].TakenAt.Equal(base.Add(2 * time.Hour)) {
		t.Fatalf("unexpected taken_at: %s", all[0].TakenAt)
	}

	limited, err := store.ListSnapshots(2)
	if err != nil {
		t.Fatalf("list limited snapshots: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(limited))
	}
}

func TestSQLiteStore_SnapshotEntriesUnknownID(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	if _, err := store.SnapshotEntries("missing"); !errors.Is(err, ErrSnapshotNotFound) {
		t.Fatalf("expected ErrSnapshotNotFound, got %v", err)
	}
}
