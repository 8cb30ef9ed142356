package storage

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/muhasaba/muhasaba/internal/constants"
	"github.com/muhasaba/muhasaba/internal/models"
)

func newTestSQLiteStore(t *testing.T) (Provider, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "muhasaba.db")
	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() returned unexpected error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, path
}

func TestSQLiteStoreLoadUninitialized(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := store.Load(); err == nil || !strings.Contains(err.Error(), "not initialized") {
		t.Errorf("Load() = %v, want not-initialized error", err)
	}
}

func TestSQLiteStoreEmptyState(t *testing.T) {
	store, _ := newTestSQLiteStore(t)

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if len(got.Activities) != 0 {
		t.Errorf("fresh store has %d activities, want 0", len(got.Activities))
	}
	if got.Journal == nil || got.SavedDuas == nil || got.ReadSurahs == nil || got.Goals == nil {
		t.Error("fresh store returned nil collections")
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store, path := newTestSQLiteStore(t)
	want := sampleState()
	want.Settings.RamadanStart = "2026-02-18"

	if err := store.Save(want); err != nil {
		t.Fatalf("Save() returned unexpected error: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if len(got.Activities) != constants.RamadanDays {
		t.Fatalf("got %d activities, want %d", len(got.Activities), constants.RamadanDays)
	}
	if !got.Activities[0].Fasting || got.Activities[0].Quran != "50" {
		t.Errorf("day 1 = %+v", got.Activities[0])
	}
	if got.Stats != want.Stats {
		t.Errorf("stats = %+v, want %+v", got.Stats, want.Stats)
	}
	if len(got.Goals) != 1 || got.Goals[0].Text != "Finish juz 1" || got.Goals[0].Category != models.GoalQuran {
		t.Errorf("goals = %+v", got.Goals)
	}
	if entry := got.Journal[3]; entry.Achievements != "Prayed taraweeh" || entry.Mood != models.MoodPeaceful {
		t.Errorf("journal day 3 = %+v", entry)
	}
	if got.Settings.RamadanStart != "2026-02-18" {
		t.Errorf("settings = %+v", got.Settings)
	}

	// A save replaces the previous snapshot wholesale.
	want.SavedDuas = nil
	want.Goals = nil
	if err := store.Save(want); err != nil {
		t.Fatalf("second Save() returned unexpected error: %v", err)
	}
	got, err = store.Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if len(got.SavedDuas) != 0 || len(got.Goals) != 0 {
		t.Errorf("stale rows survived the replace: duas=%v goals=%v", got.SavedDuas, got.Goals)
	}

	// Reopening the file sees the same snapshot.
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}
	reopened := NewSQLiteStore(path)
	defer reopened.Close()
	got, err = reopened.Load()
	if err != nil {
		t.Fatalf("Load() after reopen returned unexpected error: %v", err)
	}
	if len(got.Activities) != constants.RamadanDays {
		t.Errorf("reopened store has %d activities, want %d", len(got.Activities), constants.RamadanDays)
	}
}

func TestSQLiteStoreGoalOrder(t *testing.T) {
	store, _ := newTestSQLiteStore(t)

	state := models.DefaultState()
	state.Goals = []models.Goal{
		{ID: "a", Text: "first", Category: models.GoalPersonal},
		{ID: "b", Text: "second", Category: models.GoalPrayer},
		{ID: "c", Text: "third", Category: models.GoalOther},
	}
	if err := store.Save(state); err != nil {
		t.Fatal(err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range []string{"a", "b", "c"} {
		if got.Goals[i].ID != want {
			t.Fatalf("goal order not preserved: %+v", got.Goals)
		}
	}
}
