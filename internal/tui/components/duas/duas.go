package duas

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muhasaba/muhasaba/internal/constants"
)

type AddDuaMsg struct{}

// RemoveDuaMsg carries the zero-based position of the dua to remove.
type RemoveDuaMsg struct {
	Index int
}

type Item struct {
	Index int
	Text  string
}

func (i Item) Title() string       { return i.Text }
func (i Item) Description() string { return fmt.Sprintf("dua %d", i.Index+1) }
func (i Item) FilterValue() string { return i.Text }

type KeyMap struct {
	Add    key.Binding
	Remove key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "remove"),
		),
	}
}

var (
	motivationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Italic(true).
			PaddingTop(1)

	sourceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

type Model struct {
	list       list.Model
	keys       KeyMap
	motivation constants.Motivation
}

func New(savedDuas []string, width, height int) Model {
	l := list.New(toItems(savedDuas), list.NewDefaultDelegate(), width, height)
	l.Title = "Duas"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Remove}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Remove}
	}

	return Model{
		list:       l,
		keys:       keys,
		motivation: motivationOfTheDay(time.Now()),
	}
}

// motivationOfTheDay rotates through the built-in texts, one per day.
func motivationOfTheDay(now time.Time) constants.Motivation {
	return constants.Motivations[now.YearDay()%len(constants.Motivations)]
}

func toItems(savedDuas []string) []list.Item {
	items := make([]list.Item, len(savedDuas))
	for i, text := range savedDuas {
		items[i] = Item{Index: i, Text: text}
	}
	return items
}

func (m *Model) SetDuas(savedDuas []string) {
	m.list.SetItems(toItems(savedDuas))
}

func (m *Model) SetSize(width, height int) {
	// Reserve rows for the motivation footer.
	if height > 5 {
		height -= 4
	}
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
			return m, func() tea.Msg { return AddDuaMsg{} }
		case key.Matches(msg, m.keys.Remove):
			if i, ok := m.list.SelectedItem().(Item); ok {
				idx := i.Index
				return m, func() tea.Msg { return RemoveDuaMsg{Index: idx} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	footer := motivationStyle.Render("“"+m.motivation.Content+"”") + "\n" +
		sourceStyle.Render("— "+m.motivation.Source)
	return m.list.View() + "\n" + footer
}
