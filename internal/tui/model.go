package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/muhasaba/muhasaba/internal/constants"
	"github.com/muhasaba/muhasaba/internal/models"
	"github.com/muhasaba/muhasaba/internal/tracker"
	"github.com/muhasaba/muhasaba/internal/tui/components/daylog"
	"github.com/muhasaba/muhasaba/internal/tui/components/duas"
	"github.com/muhasaba/muhasaba/internal/tui/components/goals"
	"github.com/muhasaba/muhasaba/internal/tui/components/journal"
	"github.com/muhasaba/muhasaba/internal/tui/components/statspanel"
)

// DayFormModel backs the full day editor form.
type DayFormModel struct {
	Fasting      bool
	Qiyam        bool
	Duha         bool
	Rawatib      bool
	Charity      bool
	FamilyVisit  bool
	Happiness    bool
	Feeding      bool
	Quran        string
	DhikrMorning string
	DhikrEvening string
}

type GoalFormModel struct {
	Text     string
	Category models.GoalCategory
}

type JournalFormModel struct {
	Achievements string
	Memories     string
	Mood         models.Mood
}

type DuaFormModel struct {
	Text string
}

type KeyMap struct {
	Tab      key.Binding
	ShiftTab key.Binding
	Quit     key.Binding
	Help     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

type Model struct {
	trk           *tracker.Tracker
	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model

	dayLog       daylog.Model
	statsPanel   statspanel.Model
	goalList     goals.Model
	journalPanel journal.Model
	duaList      duas.Model

	form        *huh.Form
	dayForm     *DayFormModel
	goalForm    *GoalFormModel
	journalForm *JournalFormModel
	duaForm     *DuaFormModel

	editingDay     int
	goalToRemoveID string
	duaToRemove    int
	formError      string

	quitting bool
	width    int
	height   int
}

func NewModel(trk *tracker.Tracker) Model {
	today := trk.CurrentDay()

	return Model{
		trk:          trk,
		state:        constants.StateTracker,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		dayLog:       daylog.New(trk.Activities(), today, 0, 0),
		statsPanel:   statspanel.New(trk.Stats(), trk.KhatmahVerses(), 0, 0),
		goalList:     goals.New(trk.Goals(), 0, 0),
		journalPanel: journal.New(trk.State().Journal, today, 0, 0),
		duaList:      duas.New(trk.SavedDuas(), 0, 0),
	}
}

// refresh re-reads every panel's data from the tracker after a mutation.
func (m *Model) refresh() {
	today := m.trk.CurrentDay()
	m.dayLog.SetActivities(m.trk.Activities(), today)
	m.statsPanel.SetStats(m.trk.Stats(), m.trk.KhatmahVerses())
	m.goalList.SetGoals(m.trk.Goals())
	m.journalPanel.SetEntries(m.trk.State().Journal)
	m.duaList.SetDuas(m.trk.SavedDuas())
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab},
		{m.keys.Quit, m.keys.Help},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}
