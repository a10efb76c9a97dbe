package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/replay"
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

func sampleRecording(seed int64) replay.Recording {
	return replay.Recording{
		GameID: "snake",
		Seed:   seed,
		Ticks:  12,
		Events: []replay.InputEvent{
			{Tick: 3, Action: core.ActionDown},
			{Tick: 7, Action: core.ActionLeft},
			{Tick: 7, Action: core.ActionUp},
		},
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	id, err := store.SaveReplay(sampleRecording(1))
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if _, err := store.LoadReplay(id); err != nil {
		t.Errorf("LoadReplay() after reopen failed: %v", err)
	}
}

func TestStoreSaveAndLoad(t *testing.T) {
	store := openTestStore(t)

	rec := sampleRecording(42)
	rec.CreatedAt = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

	id, err := store.SaveReplay(rec)
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	if id == "" {
		t.Fatal("SaveReplay() should assign an ID")
	}

	got, err := store.LoadReplay(id)
	if err != nil {
		t.Fatalf("LoadReplay() failed: %v", err)
	}

	if got.ID != id || got.GameID != "snake" || got.Seed != 42 || got.Ticks != 12 {
		t.Errorf("LoadReplay() header = %+v", got)
	}
	if !got.CreatedAt.Equal(rec.CreatedAt) {
		t.Errorf("CreatedAt = %v, expected %v", got.CreatedAt, rec.CreatedAt)
	}
	if len(got.Events) != len(rec.Events) {
		t.Fatalf("Expected %d events, got %d", len(rec.Events), len(got.Events))
	}
	for i := range rec.Events {
		if got.Events[i] != rec.Events[i] {
			t.Errorf("Event %d = %+v, expected %+v", i, got.Events[i], rec.Events[i])
		}
	}
}

func TestStoreSaveKeepsGivenID(t *testing.T) {
	store := openTestStore(t)

	rec := sampleRecording(1)
	rec.ID = "fixed-id"
	id, err := store.SaveReplay(rec)
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	if id != "fixed-id" {
		t.Errorf("SaveReplay() id = %q, expected fixed-id", id)
	}

	if _, err := store.SaveReplay(rec); err == nil {
		t.Error("Saving a duplicate ID should fail")
	}
}

func TestStoreRejectsInvalidRecording(t *testing.T) {
	store := openTestStore(t)

	rec := sampleRecording(1)
	rec.Events = append(rec.Events, replay.InputEvent{Tick: 1, Action: core.ActionRight})

	if _, err := store.SaveReplay(rec); err == nil {
		t.Error("SaveReplay should reject out-of-order events")
	}

	list, err := store.Replays(10)
	if err != nil {
		t.Fatalf("Replays() failed: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("Rejected recording should not be stored, got %d rows", len(list))
	}
}

func TestStoreReplaysOrder(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := range 3 {
		rec := sampleRecording(int64(i))
		rec.ID = []string{"aaa", "bbb", "ccc"}[i]
		rec.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if _, err := store.SaveReplay(rec); err != nil {
			t.Fatalf("SaveReplay() failed: %v", err)
		}
	}

	list, err := store.Replays(10)
	if err != nil {
		t.Fatalf("Replays() failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("Expected 3 replays, got %d", len(list))
	}
	if list[0].ID != "ccc" || list[2].ID != "aaa" {
		t.Errorf("Replays should be newest first, got %s, %s, %s", list[0].ID, list[1].ID, list[2].ID)
	}
	if list[0].Inputs != 3 {
		t.Errorf("Inputs = %d, expected 3", list[0].Inputs)
	}
	if list[0].Ticks != 12 {
		t.Errorf("Ticks = %d, expected 12", list[0].Ticks)
	}

	limited, err := store.Replays(2)
	if err != nil {
		t.Fatalf("Replays() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Limit should be respected, got %d", len(limited))
	}
}

func TestStoreLoadByPrefix(t *testing.T) {
	store := openTestStore(t)

	for _, id := range []string{"abc123", "abd456", "abc", "x%y"} {
		rec := sampleRecording(1)
		rec.ID = id
		if _, err := store.SaveReplay(rec); err != nil {
			t.Fatalf("SaveReplay(%s) failed: %v", id, err)
		}
	}

	tests := []struct {
		prefix  string
		wantID  string
		wantErr error
	}{
		{"abd", "abd456", nil},
		{"abc123", "abc123", nil},
		{"abc", "abc", nil}, // exact match wins over prefix
		{"ab", "", ErrAmbiguousID},
		{"zzz", "", ErrReplayNotFound},
		{"", "", ErrReplayNotFound},
		{"x%", "x%y", nil}, // wildcard characters are literal
		{"%", "", ErrReplayNotFound},
		{"_", "", ErrReplayNotFound},
		{"a_c", "", ErrReplayNotFound},
		{"ab%", "", ErrReplayNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.prefix, func(t *testing.T) {
			rec, err := store.LoadReplay(tc.prefix)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Errorf("LoadReplay(%q) error = %v, expected %v", tc.prefix, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadReplay(%q) failed: %v", tc.prefix, err)
			}
			if rec.ID != tc.wantID {
				t.Errorf("LoadReplay(%q) = %s, expected %s", tc.prefix, rec.ID, tc.wantID)
			}
		})
	}
}

func TestStoreDeleteReplay(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveReplay(sampleRecording(7))
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}

	if err := store.DeleteReplay(id); err != nil {
		t.Fatalf("DeleteReplay() failed: %v", err)
	}
	if _, err := store.LoadReplay(id); !errors.Is(err, ErrReplayNotFound) {
		t.Errorf("LoadReplay after delete: error = %v, expected ErrReplayNotFound", err)
	}
	if err := store.DeleteReplay(id); !errors.Is(err, ErrReplayNotFound) {
		t.Errorf("Second DeleteReplay: error = %v, expected ErrReplayNotFound", err)
	}

	var orphans int
	if err := store.db.QueryRow("SELECT COUNT(*) FROM replay_events WHERE replay_id = ?", id).Scan(&orphans); err != nil {
		t.Fatalf("count events: %v", err)
	}
	if orphans != 0 {
		t.Errorf("Events should be deleted with the replay, %d left", orphans)
	}
}
