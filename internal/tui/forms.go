package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/muhasaba/muhasaba/internal/models"
)

// validateCount accepts empty or a non-negative integer. Stored counters are
// free-form text, but the form keeps obvious typos out.
func validateCount(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if i < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

// NewDayForm creates the full-record editor for one cycle day.
func NewDayForm(fm *DayFormModel, day int) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title(fmt.Sprintf("Day %d", day)),
			huh.NewConfirm().
				Title("Fasting").
				Value(&fm.Fasting),
			huh.NewConfirm().
				Title("Qiyam").
				Value(&fm.Qiyam),
			huh.NewConfirm().
				Title("Duha").
				Value(&fm.Duha),
			huh.NewConfirm().
				Title("Rawatib").
				Value(&fm.Rawatib),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Qur'an verses read").
				Value(&fm.Quran).
				Validate(validateCount),
			huh.NewInput().
				Title("Morning dhikr sessions").
				Value(&fm.DhikrMorning).
				Validate(validateCount),
			huh.NewInput().
				Title("Evening dhikr sessions").
				Value(&fm.DhikrEvening).
				Validate(validateCount),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Charity").
				Value(&fm.Charity),
			huh.NewConfirm().
				Title("Family visit").
				Value(&fm.FamilyVisit),
			huh.NewConfirm().
				Title("Brought someone happiness").
				Value(&fm.Happiness),
			huh.NewConfirm().
				Title("Fed a fasting person").
				Value(&fm.Feeding),
		),
	)
}

// NewGoalForm creates the add-goal form.
func NewGoalForm(fm *GoalFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Goal").
				Value(&fm.Text).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("goal text is required")
					}
					return nil
				}),
			huh.NewSelect[models.GoalCategory]().
				Title("Category").
				Options(
					huh.NewOption("Qur'an", models.GoalQuran),
					huh.NewOption("Prayer", models.GoalPrayer),
					huh.NewOption("Charity", models.GoalCharity),
					huh.NewOption("Personal", models.GoalPersonal),
					huh.NewOption("Other", models.GoalOther),
				).
				Value(&fm.Category),
		),
	)
}

// NewJournalForm creates the journal editor for one day.
func NewJournalForm(fm *JournalFormModel, day int) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title(fmt.Sprintf("Journal · Day %d", day)),
			huh.NewText().
				Title("Achievements").
				Value(&fm.Achievements),
			huh.NewText().
				Title("Memories").
				Value(&fm.Memories),
			huh.NewSelect[models.Mood]().
				Title("Mood").
				Options(
					huh.NewOption("—", models.MoodNone),
					huh.NewOption("Happy", models.MoodHappy),
					huh.NewOption("Spiritual", models.MoodSpiritual),
					huh.NewOption("Peaceful", models.MoodPeaceful),
					huh.NewOption("Determined", models.MoodDetermined),
					huh.NewOption("Tired", models.MoodTired),
				).
				Value(&fm.Mood),
		),
	)
}

// NewDuaForm creates the add-dua form.
func NewDuaForm(fm *DuaFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Dua").
				Value(&fm.Text).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("dua text is required")
					}
					return nil
				}),
		),
	)
}
