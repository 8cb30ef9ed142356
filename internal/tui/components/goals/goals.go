package goals

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muhasaba/muhasaba/internal/models"
)

type AddGoalMsg struct{}

type ToggleGoalMsg struct {
	ID string
}

type RemoveGoalMsg struct {
	ID string
}

type Item struct {
	Goal models.Goal
}

func (i Item) Title() string {
	if i.Goal.Completed {
		return "✓ " + i.Goal.Text
	}
	return "○ " + i.Goal.Text
}

func (i Item) Description() string {
	return string(i.Goal.Category)
}

func (i Item) FilterValue() string { return i.Goal.Text }

type KeyMap struct {
	Add    key.Binding
	Toggle key.Binding
	Remove key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle done"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "remove"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(goals []models.Goal, width, height int) Model {
	l := list.New(toItems(goals), list.NewDefaultDelegate(), width, height)
	l.Title = "Goals"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Remove}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Remove}
	}

	return Model{list: l, keys: keys}
}

func toItems(goals []models.Goal) []list.Item {
	items := make([]list.Item, len(goals))
	for i, g := range goals {
		items[i] = Item{Goal: g}
	}
	return items
}

func (m *Model) SetGoals(goals []models.Goal) {
	m.list.SetItems(toItems(goals))
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
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddGoalMsg{} }
		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.list.SelectedItem().(Item); ok {
				id := i.Goal.ID
				return m, func() tea.Msg { return ToggleGoalMsg{ID: id} }
			}
		case key.Matches(msg, m.keys.Remove):
			if i, ok := m.list.SelectedItem().(Item); ok {
				id := i.Goal.ID
				return m, func() tea.Msg { return RemoveGoalMsg{ID: id} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
