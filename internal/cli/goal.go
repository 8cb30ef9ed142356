package cli

import (
	"fmt"
	"strings"

	"github.com/muhasaba/muhasaba/internal/models"
)

type GoalCmd struct {
	Add    GoalAddCmd    `cmd:"" help:"Add a goal for the month."`
	List   GoalListCmd   `cmd:"" help:"List goals."`
	Toggle GoalToggleCmd `cmd:"" help:"Toggle a goal's completion."`
	Remove GoalRemoveCmd `cmd:"" help:"Remove a goal."`
}

type GoalAddCmd struct {
	Text     []string `arg:"" help:"Goal text."`
	Category string   `help:"Category: quran, prayer, charity, personal, other." default:"personal" short:"c"`
}

func (c *GoalAddCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	category, err := models.ParseGoalCategory(c.Category)
	if err != nil {
		return err
	}

	goal, err := t.AddGoal(strings.Join(c.Text, " "), category)
	if err != nil {
		return err
	}

	fmt.Printf("Added goal [%s]: %s\n", shortID(goal.ID), goal.Text)
	return nil
}

type GoalListCmd struct{}

func (c *GoalListCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	goals := t.Goals()
	if len(goals) == 0 {
		fmt.Println("No goals yet.")
		return nil
	}

	for _, goal := range goals {
		marker := " "
		if goal.Completed {
			marker = "x"
		}
		fmt.Printf("[%s] %s  %s (%s)\n", marker, shortID(goal.ID), goal.Text, goal.Category)
	}
	return nil
}

type GoalToggleCmd struct {
	ID string `arg:"" help:"Goal id (or unique prefix)."`
}

func (c *GoalToggleCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	goal, err := findGoal(t.Goals(), c.ID)
	if err != nil {
		return err
	}

	if err := t.ToggleGoal(goal.ID); err != nil {
		return err
	}

	if !goal.Completed {
		fmt.Printf("Completed goal: %s\n", goal.Text)
	} else {
		fmt.Printf("Reopened goal: %s\n", goal.Text)
	}
	return nil
}

type GoalRemoveCmd struct {
	ID string `arg:"" help:"Goal id (or unique prefix)."`
}

func (c *GoalRemoveCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	goal, err := findGoal(t.Goals(), c.ID)
	if err != nil {
		return err
	}

	if err := t.RemoveGoal(goal.ID); err != nil {
		return err
	}

	fmt.Printf("Removed goal: %s\n", goal.Text)
	return nil
}

// findGoal resolves an id or unique id prefix against the goal list.
func findGoal(goals []models.Goal, id string) (models.Goal, error) {
	var matches []models.Goal
	for _, g := range goals {
		if g.ID == id {
			return g, nil
		}
		if strings.HasPrefix(g.ID, id) {
			matches = append(matches, g)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Goal{}, fmt.Errorf("goal not found: %s", id)
	default:
		return models.Goal{}, fmt.Errorf("goal id prefix %q is ambiguous (%d matches)", id, len(matches))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
