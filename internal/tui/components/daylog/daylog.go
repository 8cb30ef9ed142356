package daylog

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muhasaba/muhasaba/internal/models"
)

// EditDayMsg asks the parent to open the full day editor form.
type EditDayMsg struct {
	Day int
}

// ToggleFastingMsg asks the parent to flip the fasting flag for a day.
type ToggleFastingMsg struct {
	Day int
	On  bool
}

type Item struct {
	Activity models.DailyActivity
	IsToday  bool
}

func (i Item) Title() string {
	title := fmt.Sprintf("Day %d", i.Activity.Day)
	if i.IsToday {
		title += " · today"
	}
	return title
}

func (i Item) Description() string {
	var parts []string
	if i.Activity.Fasting {
		parts = append(parts, "fasting ✓")
	}
	prayers := 0
	for _, f := range []models.BoolField{models.FieldQiyam, models.FieldDuha, models.FieldRawatib} {
		if i.Activity.Flag(f) {
			prayers++
		}
	}
	if prayers > 0 {
		parts = append(parts, fmt.Sprintf("prayers %d/3", prayers))
	}
	if models.DhikrPerformed(i.Activity.DhikrMorning) || models.DhikrPerformed(i.Activity.DhikrEvening) {
		parts = append(parts, "dhikr ✓")
	}
	if i.Activity.Quran != "" && i.Activity.Quran != "0" {
		parts = append(parts, fmt.Sprintf("%s verses", i.Activity.Quran))
	}
	deeds := 0
	for _, f := range models.DeedFields {
		if i.Activity.Flag(f) {
			deeds++
		}
	}
	if deeds > 0 {
		parts = append(parts, fmt.Sprintf("deeds %d/4", deeds))
	}
	if len(parts) == 0 {
		return "nothing recorded"
	}
	return strings.Join(parts, " · ")
}

func (i Item) FilterValue() string { return i.Title() }

type KeyMap struct {
	Edit key.Binding
	Fast key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Edit: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter", "edit day"),
		),
		Fast: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "toggle fasting"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(activities []models.DailyActivity, today, width, height int) Model {
	l := list.New(toItems(activities, today), list.NewDefaultDelegate(), width, height)
	l.Title = "Tracker"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Edit, keys.Fast}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Edit, keys.Fast}
	}

	m := Model{list: l, keys: keys}
	m.SelectDay(today)
	return m
}

func toItems(activities []models.DailyActivity, today int) []list.Item {
	items := make([]list.Item, len(activities))
	for i, a := range activities {
		items[i] = Item{Activity: a, IsToday: a.Day == today}
	}
	return items
}

// SetActivities replaces the rendered log, keeping the cursor in place.
func (m *Model) SetActivities(activities []models.DailyActivity, today int) {
	m.list.SetItems(toItems(activities, today))
}

// SelectDay moves the cursor to the given cycle day, if present.
func (m *Model) SelectDay(day int) {
	for i, it := range m.list.Items() {
		if item, ok := it.(Item); ok && item.Activity.Day == day {
			m.list.Select(i)
			return
		}
	}
}

// SelectedDay returns the cycle day under the cursor, or 0.
func (m Model) SelectedDay() int {
	if i, ok := m.list.SelectedItem().(Item); ok {
		return i.Activity.Day
	}
	return 0
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Edit):
			if i, ok := m.list.SelectedItem().(Item); ok {
				day := i.Activity.Day
				return m, func() tea.Msg { return EditDayMsg{Day: day} }
			}
		case key.Matches(msg, m.keys.Fast):
			if i, ok := m.list.SelectedItem().(Item); ok {
				day := i.Activity.Day
				on := !i.Activity.Fasting
				return m, func() tea.Msg { return ToggleFastingMsg{Day: day, On: on} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
