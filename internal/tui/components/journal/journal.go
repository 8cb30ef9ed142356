package journal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muhasaba/muhasaba/internal/constants"
	"github.com/muhasaba/muhasaba/internal/models"
)

// EditEntryMsg asks the parent to open the journal editor for a day.
type EditEntryMsg struct {
	Day int
}

type KeyMap struct {
	PrevDay key.Binding
	NextDay key.Binding
	Edit    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevDay: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "previous day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "next day"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter", "write"),
		),
	}
}

var (
	dayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	moodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("43")).
			Italic(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

type Model struct {
	entries map[int]models.JournalEntry
	day     int
	keys    KeyMap
	width   int
	height  int
}

func New(entries map[int]models.JournalEntry, day, width, height int) Model {
	if day < 1 {
		day = 1
	}
	if day > constants.RamadanDays {
		day = constants.RamadanDays
	}
	return Model{entries: entries, day: day, keys: DefaultKeyMap(), width: width, height: height}
}

// SetEntries replaces the rendered entries, keeping the selected day.
func (m *Model) SetEntries(entries map[int]models.JournalEntry) {
	m.entries = entries
}

// Day returns the currently selected cycle day.
func (m Model) Day() int {
	return m.day
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.PrevDay):
			if m.day > 1 {
				m.day--
			}
		case key.Matches(msg, m.keys.NextDay):
			if m.day < constants.RamadanDays {
				m.day++
			}
		case key.Matches(msg, m.keys.Edit):
			day := m.day
			return m, func() tea.Msg { return EditEntryMsg{Day: day} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(dayStyle.Render(fmt.Sprintf("Journal · Day %d of %d", m.day, constants.RamadanDays)))
	b.WriteString("\n\n")

	entry, ok := m.entries[m.day]
	if !ok || (entry.Achievements == "" && entry.Memories == "" && entry.Mood == models.MoodNone) {
		b.WriteString(emptyStyle.Render("No entry yet. Press enter to write one."))
		return b.String()
	}

	if entry.Mood != models.MoodNone {
		b.WriteString(moodStyle.Render("Feeling " + string(entry.Mood)))
		b.WriteString("\n\n")
	}
	if entry.Achievements != "" {
		b.WriteString(headingStyle.Render("Achievements"))
		b.WriteString("\n" + entry.Achievements + "\n\n")
	}
	if entry.Memories != "" {
		b.WriteString(headingStyle.Render("Memories"))
		b.WriteString("\n" + entry.Memories + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
