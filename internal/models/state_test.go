package models

import (
	"testing"
	"time"
)

func TestCloneIsDeep(t *testing.T) {
	s := DefaultState()
	s.Activities = []DailyActivity{NewDailyActivity(1)}
	s.SavedDuas = []string{"dua"}
	s.ReadSurahs = []int{1}
	s.Goals = []Goal{{ID: "g", Text: "goal", Category: GoalOther}}
	s.Journal[5] = JournalEntry{Day: 5, Memories: "original"}

	c := s.Clone()
	c.Activities[0].Fasting = true
	c.SavedDuas[0] = "changed"
	c.ReadSurahs[0] = 99
	c.Goals[0].Completed = true
	c.Journal[5] = JournalEntry{Day: 5, Memories: "changed"}

	if s.Activities[0].Fasting {
		t.Error("clone shares the activity slice")
	}
	if s.SavedDuas[0] != "dua" {
		t.Error("clone shares the dua slice")
	}
	if s.ReadSurahs[0] != 1 {
		t.Error("clone shares the read-surah slice")
	}
	if s.Goals[0].Completed {
		t.Error("clone shares the goal slice")
	}
	if s.Journal[5].Memories != "original" {
		t.Error("clone shares the journal map")
	}
}

func TestNormalize(t *testing.T) {
	var s State
	s.Normalize()

	if s.SavedDuas == nil || s.ReadSurahs == nil || s.Goals == nil || s.Journal == nil {
		t.Errorf("Normalize left nil collections: %+v", s)
	}
	if s.Settings.DailyVerseTarget != DefaultSettings().DailyVerseTarget {
		t.Errorf("DailyVerseTarget = %d, want default", s.Settings.DailyVerseTarget)
	}

	// Existing data is untouched.
	s.SavedDuas = []string{"keep"}
	s.Settings.DailyVerseTarget = 40
	s.Normalize()
	if len(s.SavedDuas) != 1 || s.Settings.DailyVerseTarget != 40 {
		t.Errorf("Normalize clobbered existing data: %+v", s)
	}
}

func TestSettingsCurrentDay(t *testing.T) {
	at := func(date string) time.Time {
		ts, err := time.Parse("2006-01-02", date)
		if err != nil {
			t.Fatal(err)
		}
		return ts
	}

	cases := []struct {
		name  string
		start string
		now   string
		want  int
	}{
		{"unanchored", "", "2026-03-01", 1},
		{"unparseable start", "01/03/2026", "2026-03-01", 1},
		{"first day", "2026-02-18", "2026-02-18", 1},
		{"mid cycle", "2026-02-18", "2026-02-27", 10},
		{"last day", "2026-02-18", "2026-03-19", 30},
		{"before start", "2026-02-18", "2026-02-01", 1},
		{"after cycle", "2026-02-18", "2026-04-10", 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Settings{RamadanStart: tc.start}
			if got := s.CurrentDay(at(tc.now)); got != tc.want {
				t.Errorf("CurrentDay(%s with start %q) = %d, want %d", tc.now, tc.start, got, tc.want)
			}
		})
	}
}
