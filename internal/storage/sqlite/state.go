package sqlite

import (
	"database/sql"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/muhasaba/muhasaba/internal/models"
)

const (
	settingRamadanStart     = "ramadan_start"
	settingDailyVerseTarget = "daily_verse_target"
)

// Load reads the full state snapshot out of the database.
func (s *Store) Load() (models.State, error) {
	if err := s.open(); err != nil {
		return models.State{}, err
	}

	state := models.DefaultState()

	if err := s.loadActivities(&state); err != nil {
		return models.State{}, err
	}
	if err := s.loadStats(&state); err != nil {
		return models.State{}, err
	}
	if err := s.loadGoals(&state); err != nil {
		return models.State{}, err
	}
	if err := s.loadJournal(&state); err != nil {
		return models.State{}, err
	}
	if err := s.loadDuas(&state); err != nil {
		return models.State{}, err
	}
	if err := s.loadReadSurahs(&state); err != nil {
		return models.State{}, err
	}
	if err := s.loadSettings(&state); err != nil {
		return models.State{}, err
	}

	state.Normalize()
	return state, nil
}

// Save replaces the persisted snapshot inside a single transaction, so a
// failed save leaves the previous snapshot intact.
func (s *Store) Save(state models.State) error {
	if err := s.open(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin save transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"activities", "goals", "journal_entries", "saved_duas", "read_surahs", "settings", "stats"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, a := range state.Activities {
		_, err := tx.Exec(`
			INSERT INTO activities (day, fasting, qiyam, duha, rawatib, quran, dhikr_morning, dhikr_evening, charity, family_visit, happiness, feeding)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			a.Day, boolToInt(a.Fasting), boolToInt(a.Qiyam), boolToInt(a.Duha), boolToInt(a.Rawatib),
			a.Quran, a.DhikrMorning, a.DhikrEvening,
			boolToInt(a.Charity), boolToInt(a.FamilyVisit), boolToInt(a.Happiness), boolToInt(a.Feeding))
		if err != nil {
			return fmt.Errorf("failed to save activity for day %d: %w", a.Day, err)
		}
	}

	_, err = tx.Exec(`
		INSERT INTO stats (id, quran, prayers, dhikr, good_deeds, overall)
		VALUES (1, ?, ?, ?, ?, ?)`,
		state.Stats.Quran, state.Stats.Prayers, state.Stats.Dhikr, state.Stats.GoodDeeds, state.Stats.Overall)
	if err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}

	for i, g := range state.Goals {
		_, err := tx.Exec(`
			INSERT INTO goals (id, text, category, completed, created_at, position)
			VALUES (?, ?, ?, ?, ?, ?)`,
			g.ID, g.Text, string(g.Category), boolToInt(g.Completed), g.CreatedAt.UTC().Format(time.RFC3339), i)
		if err != nil {
			return fmt.Errorf("failed to save goal %s: %w", g.ID, err)
		}
	}

	for day, entry := range state.Journal {
		_, err := tx.Exec(`
			INSERT INTO journal_entries (day, achievements, memories, mood)
			VALUES (?, ?, ?, ?)`,
			day, entry.Achievements, entry.Memories, string(entry.Mood))
		if err != nil {
			return fmt.Errorf("failed to save journal entry for day %d: %w", day, err)
		}
	}

	for i, dua := range state.SavedDuas {
		if _, err := tx.Exec("INSERT INTO saved_duas (position, text) VALUES (?, ?)", i, dua); err != nil {
			return fmt.Errorf("failed to save dua: %w", err)
		}
	}

	for _, surah := range state.ReadSurahs {
		if _, err := tx.Exec("INSERT INTO read_surahs (surah) VALUES (?)", surah); err != nil {
			return fmt.Errorf("failed to save read surah marker: %w", err)
		}
	}

	settings := map[string]string{
		settingRamadanStart:     state.Settings.RamadanStart,
		settingDailyVerseTarget: strconv.Itoa(state.Settings.DailyVerseTarget),
	}
	for key, value := range settings {
		if _, err := tx.Exec("INSERT INTO settings (key, value) VALUES (?, ?)", key, value); err != nil {
			return fmt.Errorf("failed to save setting %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit save transaction: %w", err)
	}
	return nil
}

func (s *Store) loadActivities(state *models.State) error {
	rows, err := s.db.Query(`
		SELECT day, fasting, qiyam, duha, rawatib, quran, dhikr_morning, dhikr_evening, charity, family_visit, happiness, feeding
		FROM activities ORDER BY day`)
	if err != nil {
		return fmt.Errorf("failed to load activities: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a models.DailyActivity
		var fasting, qiyam, duha, rawatib, charity, familyVisit, happiness, feeding int
		if err := rows.Scan(&a.Day, &fasting, &qiyam, &duha, &rawatib, &a.Quran, &a.DhikrMorning, &a.DhikrEvening,
			&charity, &familyVisit, &happiness, &feeding); err != nil {
			return fmt.Errorf("failed to scan activity: %w", err)
		}
		a.Fasting = fasting != 0
		a.Qiyam = qiyam != 0
		a.Duha = duha != 0
		a.Rawatib = rawatib != 0
		a.Charity = charity != 0
		a.FamilyVisit = familyVisit != 0
		a.Happiness = happiness != 0
		a.Feeding = feeding != 0
		state.Activities = append(state.Activities, a)
	}
	return rows.Err()
}

func (s *Store) loadStats(state *models.State) error {
	row := s.db.QueryRow("SELECT quran, prayers, dhikr, good_deeds, overall FROM stats WHERE id = 1")
	err := row.Scan(&state.Stats.Quran, &state.Stats.Prayers, &state.Stats.Dhikr, &state.Stats.GoodDeeds, &state.Stats.Overall)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load stats: %w", err)
	}
	return nil
}

func (s *Store) loadGoals(state *models.State) error {
	rows, err := s.db.Query("SELECT id, text, category, completed, created_at FROM goals ORDER BY position")
	if err != nil {
		return fmt.Errorf("failed to load goals: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var g models.Goal
		var completed int
		var createdAt string
		if err := rows.Scan(&g.ID, &g.Text, &g.Category, &completed, &createdAt); err != nil {
			return fmt.Errorf("failed to scan goal: %w", err)
		}
		g.Completed = completed != 0
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			g.CreatedAt = t
		}
		state.Goals = append(state.Goals, g)
	}
	return rows.Err()
}

func (s *Store) loadJournal(state *models.State) error {
	rows, err := s.db.Query("SELECT day, achievements, memories, mood FROM journal_entries")
	if err != nil {
		return fmt.Errorf("failed to load journal entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e models.JournalEntry
		if err := rows.Scan(&e.Day, &e.Achievements, &e.Memories, &e.Mood); err != nil {
			return fmt.Errorf("failed to scan journal entry: %w", err)
		}
		state.Journal[e.Day] = e
	}
	return rows.Err()
}

func (s *Store) loadDuas(state *models.State) error {
	rows, err := s.db.Query("SELECT text FROM saved_duas ORDER BY position")
	if err != nil {
		return fmt.Errorf("failed to load saved duas: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var dua string
		if err := rows.Scan(&dua); err != nil {
			return fmt.Errorf("failed to scan dua: %w", err)
		}
		state.SavedDuas = append(state.SavedDuas, dua)
	}
	return rows.Err()
}

func (s *Store) loadReadSurahs(state *models.State) error {
	rows, err := s.db.Query("SELECT surah FROM read_surahs")
	if err != nil {
		return fmt.Errorf("failed to load read surah markers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var surah int
		if err := rows.Scan(&surah); err != nil {
			return fmt.Errorf("failed to scan read surah marker: %w", err)
		}
		state.ReadSurahs = append(state.ReadSurahs, surah)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	sort.Ints(state.ReadSurahs)
	return nil
}

func (s *Store) loadSettings(state *models.State) error {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return fmt.Errorf("failed to scan setting: %w", err)
		}
		switch key {
		case settingRamadanStart:
			state.Settings.RamadanStart = value
		case settingDailyVerseTarget:
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				state.Settings.DailyVerseTarget = n
			}
		}
	}
	return rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
