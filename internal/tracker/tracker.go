// Package tracker owns all user-generated Ramadan state: the 30-day
// activity log, the derived stats snapshot, and the side stores (goals,
// journal, saved duas, read-surah markers). Every mutation applies
// atomically — the new snapshot is persisted through the injected storage
// provider before it becomes visible, so a failed save leaves prior state
// intact — and activity-log mutations recompute the stats snapshot in
// full before committing.
//
// A Tracker is not safe for concurrent use. There is exactly one logical
// writer: the UI loop or CLI command that owns it.
package tracker

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/muhasaba/muhasaba/internal/constants"
	"github.com/muhasaba/muhasaba/internal/logger"
	"github.com/muhasaba/muhasaba/internal/models"
	"github.com/muhasaba/muhasaba/internal/quran"
	"github.com/muhasaba/muhasaba/internal/stats"
	"github.com/muhasaba/muhasaba/internal/storage"
)

// Subscriber receives the full state snapshot after every committed
// mutation. The snapshot is a private copy; subscribers may keep it.
type Subscriber func(models.State)

type Tracker struct {
	store storage.Provider
	state models.State
	subs  []Subscriber
}

// New loads the persisted snapshot and returns a tracker over it.
func New(store storage.Provider) (*Tracker, error) {
	state, err := store.Load()
	if err != nil {
		return nil, err
	}
	state.Normalize()
	return &Tracker{store: store, state: state}, nil
}

// Recover is New with the spec'd degradation: a missing or unreadable
// snapshot falls back to the empty default state instead of failing.
func Recover(store storage.Provider) *Tracker {
	t, err := New(store)
	if err != nil {
		logger.Warn("Falling back to empty state", "error", err)
		return &Tracker{store: store, state: models.DefaultState()}
	}
	return t
}

// Subscribe registers a state-change observer.
func (t *Tracker) Subscribe(fn Subscriber) {
	t.subs = append(t.subs, fn)
}

// State returns a copy of the full snapshot.
func (t *Tracker) State() models.State {
	return t.state.Clone()
}

// Stats returns the current derived snapshot.
func (t *Tracker) Stats() models.Stats {
	return t.state.Stats
}

// Activities returns a copy of the activity log.
func (t *Tracker) Activities() []models.DailyActivity {
	return append([]models.DailyActivity(nil), t.state.Activities...)
}

// Activity returns the record for a cycle day, if it exists.
func (t *Tracker) Activity(day int) (models.DailyActivity, bool) {
	for _, a := range t.state.Activities {
		if a.Day == day {
			return a, true
		}
	}
	return models.DailyActivity{}, false
}

// Goals returns a copy of the goal list in insertion order.
func (t *Tracker) Goals() []models.Goal {
	return append([]models.Goal(nil), t.state.Goals...)
}

// JournalEntry returns the entry for a day, if the user wrote one.
func (t *Tracker) JournalEntry(day int) (models.JournalEntry, bool) {
	e, ok := t.state.Journal[day]
	return e, ok
}

// SavedDuas returns a copy of the saved supplication list.
func (t *Tracker) SavedDuas() []string {
	return append([]string(nil), t.state.SavedDuas...)
}

// ReadSurahs returns a copy of the read-chapter marker set.
func (t *Tracker) ReadSurahs() []int {
	return append([]int(nil), t.state.ReadSurahs...)
}

// IsSurahRead reports whether a chapter is marked fully read.
func (t *Tracker) IsSurahRead(number int) bool {
	for _, n := range t.state.ReadSurahs {
		if n == number {
			return true
		}
	}
	return false
}

// KhatmahVerses returns how many of the 6236 verses the marked chapters
// cover. Display-only; the stats snapshot does not use the marker set.
func (t *Tracker) KhatmahVerses() int {
	return quran.VerseSum(t.state.ReadSurahs)
}

// Settings returns the persisted user settings.
func (t *Tracker) Settings() models.Settings {
	return t.state.Settings
}

// CurrentDay resolves "today" to a cycle day (1..30).
func (t *Tracker) CurrentDay() int {
	return t.state.Settings.CurrentDay(time.Now())
}

// InitializeData populates the activity log with the 30 default records if
// and only if the log is empty. Idempotent; restored logs are untouched.
// Stats are not recomputed here — zero stats over a zero log are already
// correct.
func (t *Tracker) InitializeData() error {
	if len(t.state.Activities) > 0 {
		return nil
	}

	next := t.state.Clone()
	next.Activities = make([]models.DailyActivity, 0, constants.RamadanDays)
	for day := 1; day <= constants.RamadanDays; day++ {
		next.Activities = append(next.Activities, models.NewDailyActivity(day))
	}
	return t.commit(next)
}

// UpdateActivity sets a checkbox field on the record for the given day.
// An unknown day is a no-op. Stats are recomputed before the commit.
func (t *Tracker) UpdateActivity(day int, field models.BoolField, value bool) error {
	return t.updateDay(day, func(a models.DailyActivity) (models.DailyActivity, error) {
		updated, ok := a.WithFlag(field, value)
		if !ok {
			return a, fmt.Errorf("unknown activity field: %q", field)
		}
		return updated, nil
	})
}

// UpdateQuranCount sets the verses-read counter for the given day. The
// value is stored as-is; malformed text is tolerated and counts as zero
// during aggregation. An unknown day is a no-op.
func (t *Tracker) UpdateQuranCount(day int, value string) error {
	return t.updateDay(day, func(a models.DailyActivity) (models.DailyActivity, error) {
		a.Quran = value
		return a, nil
	})
}

// UpdateDhikr sets a dhikr session counter for the given day. Same
// tolerance rules as UpdateQuranCount.
func (t *Tracker) UpdateDhikr(day int, slot models.DhikrSlot, value string) error {
	return t.updateDay(day, func(a models.DailyActivity) (models.DailyActivity, error) {
		updated, ok := a.WithDhikr(slot, value)
		if !ok {
			return a, fmt.Errorf("unknown dhikr slot: %q", slot)
		}
		return updated, nil
	})
}

// SetActivity replaces the whole record for a day in one commit. The Day
// field of the replacement is forced to match; an unknown day is a no-op.
// Used by the day editor form, which edits every field at once.
func (t *Tracker) SetActivity(day int, a models.DailyActivity) error {
	return t.updateDay(day, func(existing models.DailyActivity) (models.DailyActivity, error) {
		a.Day = existing.Day
		return a, nil
	})
}

// updateDay replaces the single matching record with the result of apply,
// recomputes stats, and commits. A day with no record is a silent no-op.
func (t *Tracker) updateDay(day int, apply func(models.DailyActivity) (models.DailyActivity, error)) error {
	idx := -1
	for i, a := range t.state.Activities {
		if a.Day == day {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	updated, err := apply(t.state.Activities[idx])
	if err != nil {
		return err
	}

	next := t.state.Clone()
	next.Activities[idx] = updated
	next.Stats = stats.Compute(next.Activities)
	return t.commit(next)
}

// ToggleSurahRead toggles a chapter's membership in the read-marker set.
// Chapter numbers outside the catalog are a no-op. The activity log and
// stats are unaffected.
func (t *Tracker) ToggleSurahRead(number int) error {
	if _, ok := quran.ByNumber(number); !ok {
		return nil
	}

	next := t.state.Clone()
	for i, n := range next.ReadSurahs {
		if n == number {
			next.ReadSurahs = append(next.ReadSurahs[:i], next.ReadSurahs[i+1:]...)
			return t.commit(next)
		}
	}
	next.ReadSurahs = append(next.ReadSurahs, number)
	return t.commit(next)
}

// AddDua appends a supplication. Text that is empty after trimming is a
// no-op; otherwise the text is stored as given. Duplicates are permitted
// and order is insertion order.
func (t *Tracker) AddDua(text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	next := t.state.Clone()
	next.SavedDuas = append(next.SavedDuas, text)
	return t.commit(next)
}

// RemoveDua removes the supplication at the given position. Out-of-range
// indices are a no-op.
func (t *Tracker) RemoveDua(index int) error {
	if index < 0 || index >= len(t.state.SavedDuas) {
		return nil
	}

	next := t.state.Clone()
	next.SavedDuas = append(next.SavedDuas[:index], next.SavedDuas[index+1:]...)
	return t.commit(next)
}

// AddGoal creates a goal with a generated unique id and returns it.
func (t *Tracker) AddGoal(text string, category models.GoalCategory) (models.Goal, error) {
	goal := models.Goal{
		ID:        uuid.New().String(),
		Text:      text,
		Category:  category,
		CreatedAt: time.Now(),
	}
	if err := goal.Validate(); err != nil {
		return models.Goal{}, err
	}

	next := t.state.Clone()
	next.Goals = append(next.Goals, goal)
	if err := t.commit(next); err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}

// ToggleGoal flips a goal's completed flag. A missing id is a no-op.
func (t *Tracker) ToggleGoal(id string) error {
	for i, g := range t.state.Goals {
		if g.ID == id {
			next := t.state.Clone()
			next.Goals[i].Completed = !next.Goals[i].Completed
			return t.commit(next)
		}
	}
	return nil
}

// RemoveGoal deletes a goal. Idempotent on a missing id.
func (t *Tracker) RemoveGoal(id string) error {
	for i, g := range t.state.Goals {
		if g.ID == id {
			next := t.state.Clone()
			next.Goals = append(next.Goals[:i], next.Goals[i+1:]...)
			return t.commit(next)
		}
	}
	return nil
}

// UpdateJournalEntry upserts the entry for a day: the patch is merged onto
// the existing entry, or onto an empty-default entry if none exists yet.
// Days outside the cycle are a no-op.
func (t *Tracker) UpdateJournalEntry(day int, patch models.JournalPatch) error {
	if day < 1 || day > constants.RamadanDays {
		return nil
	}
	if err := patch.Validate(); err != nil {
		return err
	}

	next := t.state.Clone()
	entry, ok := next.Journal[day]
	if !ok {
		entry = models.JournalEntry{Day: day}
	}
	next.Journal[day] = patch.Apply(entry)
	return t.commit(next)
}

// UpdateSettings replaces the persisted settings.
func (t *Tracker) UpdateSettings(settings models.Settings) error {
	if settings.RamadanStart != "" {
		if _, err := time.Parse(constants.DateFormat, settings.RamadanStart); err != nil {
			return fmt.Errorf("invalid start date: %s (expected YYYY-MM-DD)", settings.RamadanStart)
		}
	}
	if settings.DailyVerseTarget <= 0 {
		settings.DailyVerseTarget = models.DefaultSettings().DailyVerseTarget
	}

	next := t.state.Clone()
	next.Settings = settings
	return t.commit(next)
}

// CalculateStats recomputes the stats snapshot from the current log and
// commits it. Safe to call at any time; the result is a pure function of
// the log.
func (t *Tracker) CalculateStats() error {
	next := t.state.Clone()
	next.Stats = stats.Compute(next.Activities)
	return t.commit(next)
}

func (t *Tracker) commit(next models.State) error {
	if err := t.store.Save(next); err != nil {
		return err
	}
	t.state = next
	t.notify()
	return nil
}

func (t *Tracker) notify() {
	for _, fn := range t.subs {
		fn(t.state.Clone())
	}
}
