package models

import "fmt"

// Mood is one of the closed set of journal mood tags. The empty mood means
// no mood was recorded.
type Mood string

const (
	MoodNone       Mood = ""
	MoodHappy      Mood = "happy"
	MoodSpiritual  Mood = "spiritual"
	MoodPeaceful   Mood = "peaceful"
	MoodDetermined Mood = "determined"
	MoodTired      Mood = "tired"
)

// Moods lists the selectable mood tags.
var Moods = []Mood{MoodHappy, MoodSpiritual, MoodPeaceful, MoodDetermined, MoodTired}

// ValidMood reports whether m is the empty mood or a known tag.
func ValidMood(m Mood) bool {
	if m == MoodNone {
		return true
	}
	for _, known := range Moods {
		if m == known {
			return true
		}
	}
	return false
}

// JournalEntry is a free-form per-day reflection. Entries live in a sparse
// map keyed by day; only days the user wrote to exist.
type JournalEntry struct {
	Day          int    `json:"day"`
	Achievements string `json:"achievements"`
	Memories     string `json:"memories"`
	Mood         Mood   `json:"mood"`
}

// JournalPatch is a partial update merged onto an entry. Nil fields are
// left untouched.
type JournalPatch struct {
	Achievements *string
	Memories     *string
	Mood         *Mood
}

func (p JournalPatch) Validate() error {
	if p.Mood != nil && !ValidMood(*p.Mood) {
		return fmt.Errorf("invalid mood: %q", *p.Mood)
	}
	return nil
}

// Apply merges the patch onto the entry and returns the result.
func (p JournalPatch) Apply(entry JournalEntry) JournalEntry {
	if p.Achievements != nil {
		entry.Achievements = *p.Achievements
	}
	if p.Memories != nil {
		entry.Memories = *p.Memories
	}
	if p.Mood != nil {
		entry.Mood = *p.Mood
	}
	return entry
}
