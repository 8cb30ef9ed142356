package tracker

import (
	"errors"
	"testing"

	"github.com/muhasaba/muhasaba/internal/constants"
	"github.com/muhasaba/muhasaba/internal/models"
	"github.com/muhasaba/muhasaba/internal/storage"
)

func newTestTracker(t *testing.T) (*Tracker, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	trk, err := New(store)
	if err != nil {
		t.Fatalf("New() returned unexpected error: %v", err)
	}
	if err := trk.InitializeData(); err != nil {
		t.Fatalf("InitializeData() returned unexpected error: %v", err)
	}
	return trk, store
}

func TestInitializeData(t *testing.T) {
	trk, store := newTestTracker(t)

	activities := trk.Activities()
	if len(activities) != constants.RamadanDays {
		t.Fatalf("got %d activity records, want %d", len(activities), constants.RamadanDays)
	}
	for i, a := range activities {
		if a.Day != i+1 {
			t.Errorf("record %d has day %d, want %d", i, a.Day, i+1)
		}
		if a.Quran != "0" || a.DhikrMorning != "0" || a.DhikrEvening != "0" {
			t.Errorf("day %d counters not defaulted: %+v", a.Day, a)
		}
		if a.Fasting || a.Qiyam || a.Duha || a.Rawatib || a.Charity || a.FamilyVisit || a.Happiness || a.Feeding {
			t.Errorf("day %d has flags set on a fresh log", a.Day)
		}
	}
	if trk.Stats() != (models.Stats{}) {
		t.Errorf("fresh log stats = %+v, want zero", trk.Stats())
	}

	// A second call must not touch an existing log.
	saves := store.Saves
	if err := trk.UpdateActivity(3, models.FieldFasting, true); err != nil {
		t.Fatalf("UpdateActivity() returned unexpected error: %v", err)
	}
	if err := trk.InitializeData(); err != nil {
		t.Fatalf("second InitializeData() returned unexpected error: %v", err)
	}
	if store.Saves != saves+1 {
		t.Errorf("second InitializeData() wrote to the store")
	}
	if a, _ := trk.Activity(3); !a.Fasting {
		t.Error("second InitializeData() reset existing data")
	}
}

func TestUpdateActivity(t *testing.T) {
	trk, store := newTestTracker(t)

	if err := trk.UpdateActivity(1, models.FieldFasting, true); err != nil {
		t.Fatalf("UpdateActivity() returned unexpected error: %v", err)
	}
	a, ok := trk.Activity(1)
	if !ok || !a.Fasting {
		t.Fatalf("day 1 fasting not set: %+v", a)
	}
	// 1 of 120 prayer checks is 0.83%, rounded to 1
	if trk.Stats().Prayers != 1 {
		t.Errorf("Prayers = %d, want 1", trk.Stats().Prayers)
	}

	// Unknown day is a silent no-op.
	saves := store.Saves
	if err := trk.UpdateActivity(31, models.FieldFasting, true); err != nil {
		t.Fatalf("UpdateActivity(31) returned unexpected error: %v", err)
	}
	if store.Saves != saves {
		t.Error("UpdateActivity on a missing day wrote to the store")
	}

	// Unknown field is an error and changes nothing.
	if err := trk.UpdateActivity(1, models.BoolField("taraweeh-count"), true); err == nil {
		t.Error("UpdateActivity with unknown field did not error")
	}
	if store.Saves != saves {
		t.Error("UpdateActivity with unknown field wrote to the store")
	}
}

func TestUpdateQuranCount(t *testing.T) {
	trk, _ := newTestTracker(t)

	if err := trk.UpdateQuranCount(1, "150"); err != nil {
		t.Fatalf("UpdateQuranCount() returned unexpected error: %v", err)
	}
	a, _ := trk.Activity(1)
	if a.Quran != "150" {
		t.Errorf("Quran = %q, want %q", a.Quran, "150")
	}
	// 150 of 6236 verses is 2.4%, rounded to 2
	if trk.Stats().Quran != 2 {
		t.Errorf("stats Quran = %d, want 2", trk.Stats().Quran)
	}

	// Malformed text is stored verbatim and aggregates as zero.
	if err := trk.UpdateQuranCount(1, "not-a-number"); err != nil {
		t.Fatalf("UpdateQuranCount() returned unexpected error: %v", err)
	}
	a, _ = trk.Activity(1)
	if a.Quran != "not-a-number" {
		t.Errorf("Quran = %q, want malformed text stored as-is", a.Quran)
	}
	if trk.Stats().Quran != 0 {
		t.Errorf("stats Quran = %d, want 0 after malformed counter", trk.Stats().Quran)
	}
}

func TestUpdateDhikr(t *testing.T) {
	trk, store := newTestTracker(t)

	if err := trk.UpdateDhikr(5, models.DhikrMorning, "3"); err != nil {
		t.Fatalf("UpdateDhikr() returned unexpected error: %v", err)
	}
	a, _ := trk.Activity(5)
	if a.DhikrMorning != "3" {
		t.Errorf("DhikrMorning = %q, want %q", a.DhikrMorning, "3")
	}
	// 1 of 60 sessions is 1.67%, rounded to 2
	if trk.Stats().Dhikr != 2 {
		t.Errorf("stats Dhikr = %d, want 2", trk.Stats().Dhikr)
	}

	saves := store.Saves
	if err := trk.UpdateDhikr(5, models.DhikrSlot("dhikrNoon"), "1"); err == nil {
		t.Error("UpdateDhikr with unknown slot did not error")
	}
	if store.Saves != saves {
		t.Error("UpdateDhikr with unknown slot wrote to the store")
	}
}

func TestSetActivity(t *testing.T) {
	trk, _ := newTestTracker(t)

	record := models.DailyActivity{
		Day:          99, // forced back to the target day
		Fasting:      true,
		Qiyam:        true,
		Quran:        "20",
		DhikrMorning: "1",
		DhikrEvening: "0",
	}
	if err := trk.SetActivity(7, record); err != nil {
		t.Fatalf("SetActivity() returned unexpected error: %v", err)
	}
	a, ok := trk.Activity(7)
	if !ok {
		t.Fatal("day 7 record missing after SetActivity")
	}
	if a.Day != 7 {
		t.Errorf("Day = %d, want 7", a.Day)
	}
	if !a.Fasting || !a.Qiyam || a.Quran != "20" {
		t.Errorf("record not replaced: %+v", a)
	}
	if trk.Stats().Prayers == 0 || trk.Stats().Quran == 0 {
		t.Errorf("stats not recomputed: %+v", trk.Stats())
	}
}

func TestStatsBoundsUnderPathologicalInput(t *testing.T) {
	trk, _ := newTestTracker(t)

	inputs := []string{"999999999", "-5", "", "NaN", "12.5", "0x20"}
	for day := 1; day <= len(inputs); day++ {
		if err := trk.UpdateQuranCount(day, inputs[day-1]); err != nil {
			t.Fatalf("UpdateQuranCount(%d, %q) returned unexpected error: %v", day, inputs[day-1], err)
		}
		s := trk.Stats()
		for name, v := range map[string]int{
			"quran": s.Quran, "prayers": s.Prayers, "dhikr": s.Dhikr,
			"goodDeeds": s.GoodDeeds, "overall": s.Overall,
		} {
			if v < 0 || v > 100 {
				t.Errorf("%s = %d after input %q, want within [0,100]", name, v, inputs[day-1])
			}
		}
	}
}

func TestGoals(t *testing.T) {
	trk, store := newTestTracker(t)

	goal, err := trk.AddGoal("Finish the Qur'an", models.GoalQuran)
	if err != nil {
		t.Fatalf("AddGoal() returned unexpected error: %v", err)
	}
	if goal.ID == "" {
		t.Error("AddGoal() returned goal without an id")
	}
	if goal.Completed {
		t.Error("new goal is already completed")
	}

	other, err := trk.AddGoal("Pray taraweeh nightly", models.GoalPrayer)
	if err != nil {
		t.Fatalf("AddGoal() returned unexpected error: %v", err)
	}
	if other.ID == goal.ID {
		t.Error("AddGoal() generated duplicate ids")
	}

	if _, err := trk.AddGoal("", models.GoalOther); err == nil {
		t.Error("AddGoal with empty text did not error")
	}
	if _, err := trk.AddGoal("x", models.GoalCategory("nonsense")); err == nil {
		t.Error("AddGoal with unknown category did not error")
	}

	if err := trk.ToggleGoal(goal.ID); err != nil {
		t.Fatalf("ToggleGoal() returned unexpected error: %v", err)
	}
	if g := trk.Goals()[0]; !g.Completed {
		t.Error("ToggleGoal did not complete the goal")
	}
	if err := trk.ToggleGoal(goal.ID); err != nil {
		t.Fatalf("ToggleGoal() returned unexpected error: %v", err)
	}
	if g := trk.Goals()[0]; g.Completed {
		t.Error("second ToggleGoal did not uncomplete the goal")
	}

	saves := store.Saves
	if err := trk.ToggleGoal("missing-id"); err != nil {
		t.Fatalf("ToggleGoal(missing) returned unexpected error: %v", err)
	}
	if store.Saves != saves {
		t.Error("ToggleGoal on a missing id wrote to the store")
	}

	if err := trk.RemoveGoal(goal.ID); err != nil {
		t.Fatalf("RemoveGoal() returned unexpected error: %v", err)
	}
	if got := trk.Goals(); len(got) != 1 || got[0].ID != other.ID {
		t.Errorf("goals after removal = %+v, want only %q", got, other.ID)
	}
	if err := trk.RemoveGoal(goal.ID); err != nil {
		t.Fatalf("second RemoveGoal() returned unexpected error: %v", err)
	}
}

func TestJournal(t *testing.T) {
	trk, store := newTestTracker(t)

	achievements := "Completed juz 10"
	mood := models.MoodHappy
	err := trk.UpdateJournalEntry(10, models.JournalPatch{
		Achievements: &achievements,
		Mood:         &mood,
	})
	if err != nil {
		t.Fatalf("UpdateJournalEntry() returned unexpected error: %v", err)
	}

	entry, ok := trk.JournalEntry(10)
	if !ok {
		t.Fatal("journal entry for day 10 missing")
	}
	if entry.Day != 10 || entry.Achievements != achievements || entry.Mood != models.MoodHappy {
		t.Errorf("entry = %+v", entry)
	}

	// Patching one field leaves the others intact.
	memories := "Iftar with family"
	if err := trk.UpdateJournalEntry(10, models.JournalPatch{Memories: &memories}); err != nil {
		t.Fatalf("UpdateJournalEntry() returned unexpected error: %v", err)
	}
	entry, _ = trk.JournalEntry(10)
	if entry.Achievements != achievements || entry.Memories != memories || entry.Mood != models.MoodHappy {
		t.Errorf("patched entry = %+v", entry)
	}

	// Days outside the cycle are a no-op.
	saves := store.Saves
	if err := trk.UpdateJournalEntry(0, models.JournalPatch{Memories: &memories}); err != nil {
		t.Fatalf("UpdateJournalEntry(0) returned unexpected error: %v", err)
	}
	if err := trk.UpdateJournalEntry(31, models.JournalPatch{Memories: &memories}); err != nil {
		t.Fatalf("UpdateJournalEntry(31) returned unexpected error: %v", err)
	}
	if store.Saves != saves {
		t.Error("out-of-cycle journal update wrote to the store")
	}

	badMood := models.Mood("ecstatic")
	if err := trk.UpdateJournalEntry(10, models.JournalPatch{Mood: &badMood}); err == nil {
		t.Error("UpdateJournalEntry with unknown mood did not error")
	}
}

func TestDuas(t *testing.T) {
	trk, store := newTestTracker(t)

	if err := trk.AddDua("Rabbana atina fid-dunya hasanah"); err != nil {
		t.Fatalf("AddDua() returned unexpected error: %v", err)
	}
	if err := trk.AddDua("Allahumma innaka afuwwun"); err != nil {
		t.Fatalf("AddDua() returned unexpected error: %v", err)
	}

	saves := store.Saves
	if err := trk.AddDua("   "); err != nil {
		t.Fatalf("AddDua(blank) returned unexpected error: %v", err)
	}
	if store.Saves != saves {
		t.Error("AddDua with blank text wrote to the store")
	}

	duas := trk.SavedDuas()
	if len(duas) != 2 || duas[0] != "Rabbana atina fid-dunya hasanah" {
		t.Errorf("SavedDuas() = %+v", duas)
	}

	if err := trk.RemoveDua(0); err != nil {
		t.Fatalf("RemoveDua() returned unexpected error: %v", err)
	}
	duas = trk.SavedDuas()
	if len(duas) != 1 || duas[0] != "Allahumma innaka afuwwun" {
		t.Errorf("SavedDuas() after removal = %+v", duas)
	}

	saves = store.Saves
	if err := trk.RemoveDua(5); err != nil {
		t.Fatalf("RemoveDua(5) returned unexpected error: %v", err)
	}
	if err := trk.RemoveDua(-1); err != nil {
		t.Fatalf("RemoveDua(-1) returned unexpected error: %v", err)
	}
	if store.Saves != saves {
		t.Error("out-of-range RemoveDua wrote to the store")
	}
}

func TestToggleSurahRead(t *testing.T) {
	trk, store := newTestTracker(t)
	before := trk.Stats()

	if err := trk.ToggleSurahRead(1); err != nil {
		t.Fatalf("ToggleSurahRead() returned unexpected error: %v", err)
	}
	if !trk.IsSurahRead(1) {
		t.Error("surah 1 not marked read")
	}
	// Al-Fatihah has 7 verses.
	if got := trk.KhatmahVerses(); got != 7 {
		t.Errorf("KhatmahVerses() = %d, want 7", got)
	}
	if trk.Stats() != before {
		t.Errorf("ToggleSurahRead changed stats: %+v", trk.Stats())
	}

	if err := trk.ToggleSurahRead(1); err != nil {
		t.Fatalf("ToggleSurahRead() returned unexpected error: %v", err)
	}
	if trk.IsSurahRead(1) {
		t.Error("second toggle did not unmark surah 1")
	}

	saves := store.Saves
	if err := trk.ToggleSurahRead(115); err != nil {
		t.Fatalf("ToggleSurahRead(115) returned unexpected error: %v", err)
	}
	if err := trk.ToggleSurahRead(0); err != nil {
		t.Fatalf("ToggleSurahRead(0) returned unexpected error: %v", err)
	}
	if store.Saves != saves {
		t.Error("out-of-catalog toggle wrote to the store")
	}
}

// failingStore wraps a Provider and fails every Save.
type failingStore struct {
	*storage.MemoryStore
}

func (s *failingStore) Save(models.State) error {
	return errors.New("disk full")
}

func TestFailedSaveLeavesStateIntact(t *testing.T) {
	trk, _ := newTestTracker(t)
	snapshot := trk.State()

	// Rebuild the tracker over a store that rejects writes but holds the
	// same snapshot.
	mem := storage.NewMemoryStore()
	if err := mem.Save(snapshot); err != nil {
		t.Fatal(err)
	}
	trk, err := New(&failingStore{MemoryStore: mem})
	if err != nil {
		t.Fatalf("New() returned unexpected error: %v", err)
	}

	if err := trk.UpdateActivity(1, models.FieldFasting, true); err == nil {
		t.Fatal("commit against a failing store did not error")
	}
	if a, _ := trk.Activity(1); a.Fasting {
		t.Error("failed commit mutated in-memory state")
	}
	if trk.Stats() != snapshot.Stats {
		t.Error("failed commit mutated stats")
	}
}

func TestSubscribe(t *testing.T) {
	trk, _ := newTestTracker(t)

	var got []models.State
	trk.Subscribe(func(s models.State) {
		got = append(got, s)
	})

	if err := trk.UpdateActivity(2, models.FieldCharity, true); err != nil {
		t.Fatalf("UpdateActivity() returned unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("subscriber called %d times, want 1", len(got))
	}
	if !got[0].Activities[1].Charity {
		t.Error("subscriber snapshot missing the committed change")
	}

	// The delivered snapshot is a private copy.
	got[0].Activities[1].Charity = false
	if a, _ := trk.Activity(2); !a.Charity {
		t.Error("mutating the subscriber snapshot leaked into tracker state")
	}
}

func TestStateIsolation(t *testing.T) {
	trk, _ := newTestTracker(t)

	state := trk.State()
	state.Activities[0].Fasting = true
	state.SavedDuas = append(state.SavedDuas, "injected")
	state.Journal[1] = models.JournalEntry{Day: 1, Achievements: "injected"}

	if a, _ := trk.Activity(1); a.Fasting {
		t.Error("mutating a State() copy leaked into the activity log")
	}
	if len(trk.SavedDuas()) != 0 {
		t.Error("mutating a State() copy leaked into saved duas")
	}
	if _, ok := trk.JournalEntry(1); ok {
		t.Error("mutating a State() copy leaked into the journal")
	}
}

func TestRoundTripThroughStore(t *testing.T) {
	trk, store := newTestTracker(t)

	if err := trk.UpdateActivity(9, models.FieldFeeding, true); err != nil {
		t.Fatal(err)
	}
	if err := trk.UpdateQuranCount(9, "42"); err != nil {
		t.Fatal(err)
	}
	if err := trk.AddDua("dua"); err != nil {
		t.Fatal(err)
	}
	if err := trk.ToggleSurahRead(36); err != nil {
		t.Fatal(err)
	}

	// A second tracker over the same store sees the identical snapshot.
	reloaded, err := New(store)
	if err != nil {
		t.Fatalf("New() returned unexpected error: %v", err)
	}
	if reloaded.Stats() != trk.Stats() {
		t.Errorf("reloaded stats = %+v, want %+v", reloaded.Stats(), trk.Stats())
	}
	a, _ := reloaded.Activity(9)
	if !a.Feeding || a.Quran != "42" {
		t.Errorf("reloaded day 9 = %+v", a)
	}
	if !reloaded.IsSurahRead(36) {
		t.Error("reloaded tracker lost read-surah marker")
	}
}

func TestRecover(t *testing.T) {
	store := storage.NewMemoryStore()
	trk := Recover(&loadFailStore{MemoryStore: store})
	if len(trk.Activities()) != 0 {
		t.Error("Recover over a broken store did not fall back to the default state")
	}
	if trk.Stats() != (models.Stats{}) {
		t.Errorf("Recover stats = %+v, want zero", trk.Stats())
	}
}

type loadFailStore struct {
	*storage.MemoryStore
}

func (s *loadFailStore) Load() (models.State, error) {
	return models.State{}, errors.New("corrupt store")
}

func TestCalculateStats(t *testing.T) {
	// A snapshot whose stored stats disagree with its log, as a legacy or
	// hand-edited store might hold.
	stale := models.DefaultState()
	for day := 1; day <= constants.RamadanDays; day++ {
		stale.Activities = append(stale.Activities, models.NewDailyActivity(day))
	}
	stale.Activities[0].Quran = "6236"
	stale.Stats = models.Stats{Quran: 1, Prayers: 1, Dhikr: 1, GoodDeeds: 1, Overall: 1}

	store := storage.NewMemoryStore()
	if err := store.Save(stale); err != nil {
		t.Fatal(err)
	}
	trk, err := New(store)
	if err != nil {
		t.Fatalf("New() returned unexpected error: %v", err)
	}

	if err := trk.CalculateStats(); err != nil {
		t.Fatalf("CalculateStats() returned unexpected error: %v", err)
	}
	want := models.Stats{Quran: 100, Overall: 25}
	if trk.Stats() != want {
		t.Errorf("Stats() = %+v, want %+v", trk.Stats(), want)
	}

	// The corrected snapshot was persisted.
	persisted, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if persisted.Stats != want {
		t.Errorf("persisted stats = %+v, want %+v", persisted.Stats, want)
	}
}

func TestUpdateSettings(t *testing.T) {
	trk, _ := newTestTracker(t)

	if err := trk.UpdateSettings(models.Settings{RamadanStart: "2026-02-18", DailyVerseTarget: 100}); err != nil {
		t.Fatalf("UpdateSettings() returned unexpected error: %v", err)
	}
	if got := trk.Settings(); got.RamadanStart != "2026-02-18" || got.DailyVerseTarget != 100 {
		t.Errorf("Settings() = %+v", got)
	}

	if err := trk.UpdateSettings(models.Settings{RamadanStart: "18/02/2026"}); err == nil {
		t.Error("UpdateSettings with malformed date did not error")
	}

	// Non-positive verse targets fall back to the default.
	if err := trk.UpdateSettings(models.Settings{DailyVerseTarget: 0}); err != nil {
		t.Fatalf("UpdateSettings() returned unexpected error: %v", err)
	}
	if got := trk.Settings().DailyVerseTarget; got != models.DefaultSettings().DailyVerseTarget {
		t.Errorf("DailyVerseTarget = %d, want default", got)
	}
}
