package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestRecordAttempt(t *testing.T) {
	store := openTestStore(t)

	// Never played yet
	e, err := store.Progress("01-first-steps")
	if err != nil {
		t.Fatalf("Progress() failed: %v", err)
	}
	if e != nil {
		t.Errorf("Expected nil progress for unplayed level, got %+v", e)
	}

	for i := 0; i < 3; i++ {
		if err := store.RecordAttempt("01-first-steps"); err != nil {
			t.Fatalf("RecordAttempt() failed: %v", err)
		}
	}

	e, err = store.Progress("01-first-steps")
	if err != nil {
		t.Fatalf("Progress() failed: %v", err)
	}
	if e == nil || e.Attempts != 3 {
		t.Errorf("Expected 3 attempts, got %+v", e)
	}
	if e.Completed {
		t.Error("Attempts alone must not mark a level completed")
	}
	if e.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestMarkCompletedIsSticky(t *testing.T) {
	store := openTestStore(t)

	store.RecordAttempt("02-long-way")
	if err := store.MarkCompleted("02-long-way"); err != nil {
		t.Fatalf("MarkCompleted() failed: %v", err)
	}

	// A later failed attempt must not unmark completion.
	store.RecordAttempt("02-long-way")

	e, err := store.Progress("02-long-way")
	if err != nil {
		t.Fatalf("Progress() failed: %v", err)
	}
	if e == nil || !e.Completed {
		t.Errorf("Expected completed level, got %+v", e)
	}
	if e.Attempts != 2 {
		t.Errorf("Expected 2 attempts, got %d", e.Attempts)
	}
}

func TestMarkCompletedWithoutAttempt(t *testing.T) {
	store := openTestStore(t)

	if err := store.MarkCompleted("03-leap-of-faith"); err != nil {
		t.Fatalf("MarkCompleted() failed: %v", err)
	}

	e, err := store.Progress("03-leap-of-faith")
	if err != nil {
		t.Fatalf("Progress() failed: %v", err)
	}
	if e == nil || !e.Completed {
		t.Errorf("Expected completed level, got %+v", e)
	}
}

func TestAllProgressOrdered(t *testing.T) {
	store := openTestStore(t)

	store.RecordAttempt("b-level")
	store.RecordAttempt("a-level")
	store.RecordAttempt("c-level")

	entries, err := store.AllProgress()
	if err != nil {
		t.Fatalf("AllProgress() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	if entries[0].LevelID != "a-level" || entries[2].LevelID != "c-level" {
		t.Errorf("Entries not ordered by level ID: %v", entries)
	}
}

func TestCompletedIDs(t *testing.T) {
	store := openTestStore(t)

	store.RecordAttempt("played")
	store.MarkCompleted("done")

	ids, err := store.CompletedIDs()
	if err != nil {
		t.Fatalf("CompletedIDs() failed: %v", err)
	}
	if !ids["done"] {
		t.Error("Completed level missing from CompletedIDs")
	}
	if ids["played"] {
		t.Error("Incomplete level reported as completed")
	}
}

func TestClearProgress(t *testing.T) {
	store := openTestStore(t)

	store.RecordAttempt("keep")
	store.MarkCompleted("drop")

	if err := store.ClearProgress("drop"); err != nil {
		t.Fatalf("ClearProgress() failed: %v", err)
	}

	e, _ := store.Progress("drop")
	if e != nil {
		t.Errorf("Expected cleared progress, got %+v", e)
	}
	e, _ = store.Progress("keep")
	if e == nil {
		t.Error("ClearProgress must not affect other levels")
	}
}
