package models

// State is the full user-generated dataset owned by the tracker: the
// activity log, the derived stats snapshot, and the side stores. It is the
// unit of persistence — serialized wholesale on every change.
type State struct {
	Activities []DailyActivity      `json:"activities"`
	Stats      Stats                `json:"stats"`
	SavedDuas  []string             `json:"savedDuas"`
	ReadSurahs []int                `json:"readSurahs"`
	Goals      []Goal               `json:"goals"`
	Journal    map[int]JournalEntry `json:"journalEntries"`
	Settings   Settings             `json:"settings"`
}

// DefaultState returns the empty state a store starts from when no prior
// snapshot exists. The activity log stays empty until InitializeData runs.
func DefaultState() State {
	return State{
		SavedDuas:  []string{},
		ReadSurahs: []int{},
		Goals:      []Goal{},
		Journal:    make(map[int]JournalEntry),
		Settings:   DefaultSettings(),
	}
}

// Clone returns a deep copy of the state. The tracker hands clones to
// subscribers and stores so no caller can alias its internal snapshot.
func (s State) Clone() State {
	out := s
	out.Activities = append([]DailyActivity(nil), s.Activities...)
	out.SavedDuas = append([]string(nil), s.SavedDuas...)
	out.ReadSurahs = append([]int(nil), s.ReadSurahs...)
	out.Goals = append([]Goal(nil), s.Goals...)
	out.Journal = make(map[int]JournalEntry, len(s.Journal))
	for day, entry := range s.Journal {
		out.Journal[day] = entry
	}
	return out
}

// Normalize initializes any nil collections after deserialization so the
// rest of the code never needs nil checks.
func (s *State) Normalize() {
	if s.SavedDuas == nil {
		s.SavedDuas = []string{}
	}
	if s.ReadSurahs == nil {
		s.ReadSurahs = []int{}
	}
	if s.Goals == nil {
		s.Goals = []Goal{}
	}
	if s.Journal == nil {
		s.Journal = make(map[int]JournalEntry)
	}
	if s.Settings.DailyVerseTarget == 0 {
		s.Settings.DailyVerseTarget = DefaultSettings().DailyVerseTarget
	}
}
