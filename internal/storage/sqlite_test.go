package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mkovalev/tui-runner/internal/core"
	"github.com/mkovalev/tui-runner/internal/replay"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRecording(seed int64, score int) replay.Recording {
	return replay.Recording{
		Seed:     seed,
		TickRate: 60,
		Score:    score,
		Frames:   uint64(score + 40),
		Events: []replay.Event{
			{Frame: 10, Action: core.ActionJump},
			{Frame: 90, Action: core.ActionJump},
		},
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRecording(sampleRecording(12345, 850))
	if err != nil {
		t.Fatalf("SaveRecording() failed: %v", err)
	}
	if id == 0 {
		t.Fatal("SaveRecording() returned zero ID")
	}

	rec, err := store.RecordingByID(id)
	if err != nil {
		t.Fatalf("RecordingByID() failed: %v", err)
	}
	if rec == nil {
		t.Fatal("RecordingByID() returned nil for an existing recording")
	}

	if rec.Seed != 12345 || rec.Score != 850 || rec.TickRate != 60 {
		t.Errorf("round trip mismatch: %+v", rec)
	}
	if len(rec.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(rec.Events))
	}
	if rec.Events[0].Frame != 10 || rec.Events[0].Action != core.ActionJump {
		t.Errorf("event round trip mismatch: %+v", rec.Events[0])
	}
	if rec.CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStoreRecordingsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveRecording(sampleRecording(int64(i), 100*i)); err != nil {
			t.Fatalf("SaveRecording() failed: %v", err)
		}
	}

	recordings, err := store.Recordings(3)
	if err != nil {
		t.Fatalf("Recordings() failed: %v", err)
	}
	if len(recordings) != 3 {
		t.Fatalf("expected 3 recordings, got %d", len(recordings))
	}

	// Newest first: the last insert comes back on top.
	if recordings[0].Seed != 4 {
		t.Errorf("expected newest recording first, got seed %d", recordings[0].Seed)
	}
}

func TestStoreRecordingByIDMissing(t *testing.T) {
	store := openTestStore(t)

	rec, err := store.RecordingByID(999)
	if err != nil {
		t.Fatalf("RecordingByID() failed: %v", err)
	}
	if rec != nil {
		t.Error("RecordingByID() should return nil for a missing recording")
	}
}

func TestStoreDeleteRecording(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRecording(sampleRecording(1, 50))
	if err != nil {
		t.Fatalf("SaveRecording() failed: %v", err)
	}

	if err := store.DeleteRecording(id); err != nil {
		t.Fatalf("DeleteRecording() failed: %v", err)
	}

	rec, err := store.RecordingByID(id)
	if err != nil {
		t.Fatalf("RecordingByID() failed: %v", err)
	}
	if rec != nil {
		t.Error("recording should be gone after delete")
	}
}
