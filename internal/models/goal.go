package models

import (
	"fmt"
	"strings"
	"time"
)

// GoalCategory classifies a Ramadan goal.
type GoalCategory string

const (
	GoalQuran    GoalCategory = "quran"
	GoalPrayer   GoalCategory = "prayer"
	GoalCharity  GoalCategory = "charity"
	GoalPersonal GoalCategory = "personal"
	GoalOther    GoalCategory = "other"
)

// GoalCategories lists the closed set of valid categories.
var GoalCategories = []GoalCategory{GoalQuran, GoalPrayer, GoalCharity, GoalPersonal, GoalOther}

// Goal is a user-created intention for the month. Goals have no implicit
// lifecycle tied to the day cycle.
type Goal struct {
	ID        string       `json:"id"`
	Text      string       `json:"text"`
	Category  GoalCategory `json:"category"`
	Completed bool         `json:"completed"`
	CreatedAt time.Time    `json:"created_at"`
}

func (g *Goal) Validate() error {
	if strings.TrimSpace(g.Text) == "" {
		return fmt.Errorf("goal text cannot be empty")
	}
	if _, err := ParseGoalCategory(string(g.Category)); err != nil {
		return err
	}
	return nil
}

// ParseGoalCategory parses a category string, case-insensitively.
func ParseGoalCategory(s string) (GoalCategory, error) {
	c := GoalCategory(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range GoalCategories {
		if c == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("invalid goal category: %q (expected one of quran, prayer, charity, personal, other)", s)
}
