package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/muhasaba/muhasaba/internal/constants"
	"github.com/muhasaba/muhasaba/internal/models"
	"github.com/muhasaba/muhasaba/internal/tui/components/daylog"
	"github.com/muhasaba/muhasaba/internal/tui/components/duas"
	"github.com/muhasaba/muhasaba/internal/tui/components/goals"
	"github.com/muhasaba/muhasaba/internal/tui/components/journal"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle Edit Day State
	if m.state == constants.StateEditDay {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.formError = ""
			m.state = constants.StateTracker
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			record := models.DailyActivity{
				Day:          m.editingDay,
				Fasting:      m.dayForm.Fasting,
				Qiyam:        m.dayForm.Qiyam,
				Duha:         m.dayForm.Duha,
				Rawatib:      m.dayForm.Rawatib,
				Quran:        normalizeCount(m.dayForm.Quran),
				DhikrMorning: normalizeCount(m.dayForm.DhikrMorning),
				DhikrEvening: normalizeCount(m.dayForm.DhikrEvening),
				Charity:      m.dayForm.Charity,
				FamilyVisit:  m.dayForm.FamilyVisit,
				Happiness:    m.dayForm.Happiness,
				Feeding:      m.dayForm.Feeding,
			}
			if err := m.trk.SetActivity(m.editingDay, record); err != nil {
				// Stay in form state to allow retry
				m.formError = fmt.Sprintf("Failed to save day: %v", err)
				m.form.State = huh.StateNormal
				return m, tea.Batch(cmds...)
			}
			m.formError = ""
			m.refresh()
			m.state = constants.StateTracker
		case huh.StateAborted:
			m.formError = ""
			m.state = constants.StateTracker
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Add Goal State
	if m.state == constants.StateAddGoal {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.formError = ""
			m.state = constants.StateGoals
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			if _, err := m.trk.AddGoal(strings.TrimSpace(m.goalForm.Text), m.goalForm.Category); err != nil {
				m.formError = fmt.Sprintf("Failed to add goal: %v", err)
				m.form.State = huh.StateNormal
				return m, tea.Batch(cmds...)
			}
			m.formError = ""
			m.refresh()
			m.state = constants.StateGoals
		case huh.StateAborted:
			m.formError = ""
			m.state = constants.StateGoals
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Edit Journal State
	if m.state == constants.StateEditJournal {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.formError = ""
			m.state = constants.StateJournal
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			patch := models.JournalPatch{
				Achievements: &m.journalForm.Achievements,
				Memories:     &m.journalForm.Memories,
				Mood:         &m.journalForm.Mood,
			}
			if err := m.trk.UpdateJournalEntry(m.editingDay, patch); err != nil {
				m.formError = fmt.Sprintf("Failed to save entry: %v", err)
				m.form.State = huh.StateNormal
				return m, tea.Batch(cmds...)
			}
			m.formError = ""
			m.refresh()
			m.state = constants.StateJournal
		case huh.StateAborted:
			m.formError = ""
			m.state = constants.StateJournal
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Add Dua State
	if m.state == constants.StateAddDua {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.formError = ""
			m.state = constants.StateDuas
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			if err := m.trk.AddDua(m.duaForm.Text); err != nil {
				m.formError = fmt.Sprintf("Failed to add dua: %v", err)
				m.form.State = huh.StateNormal
				return m, tea.Batch(cmds...)
			}
			m.formError = ""
			m.refresh()
			m.state = constants.StateDuas
		case huh.StateAborted:
			m.formError = ""
			m.state = constants.StateDuas
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Confirm Remove Goal State
	if m.state == constants.StateConfirmRemoveGoal {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				if err := m.trk.RemoveGoal(m.goalToRemoveID); err == nil {
					m.refresh()
				}
				m.state = constants.StateGoals
				m.goalToRemoveID = ""
			case "n", "N", "esc", "q":
				m.state = constants.StateGoals
				m.goalToRemoveID = ""
			}
		}
		return m, nil
	}

	// Handle Confirm Remove Dua State
	if m.state == constants.StateConfirmRemoveDua {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				if err := m.trk.RemoveDua(m.duaToRemove); err == nil {
					m.refresh()
				}
				m.state = constants.StateDuas
				m.duaToRemove = -1
			case "n", "N", "esc", "q":
				m.state = constants.StateDuas
				m.duaToRemove = -1
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		// Adjust height for tabs and help
		listHeight := msg.Height - 4

		h, v := docStyle.GetFrameSize()
		m.dayLog.SetSize(msg.Width-h, listHeight-v)
		m.statsPanel.SetSize(msg.Width-h, listHeight-v)
		m.goalList.SetSize(msg.Width-h, listHeight-v)
		m.journalPanel.SetSize(msg.Width-h, listHeight-v)
		m.duaList.SetSize(msg.Width-h, listHeight-v)

	case daylog.EditDayMsg:
		activity, ok := m.trk.Activity(msg.Day)
		if !ok {
			return m, nil
		}
		m.editingDay = msg.Day
		m.dayForm = &DayFormModel{
			Fasting:      activity.Fasting,
			Qiyam:        activity.Qiyam,
			Duha:         activity.Duha,
			Rawatib:      activity.Rawatib,
			Charity:      activity.Charity,
			FamilyVisit:  activity.FamilyVisit,
			Happiness:    activity.Happiness,
			Feeding:      activity.Feeding,
			Quran:        activity.Quran,
			DhikrMorning: activity.DhikrMorning,
			DhikrEvening: activity.DhikrEvening,
		}
		m.form = NewDayForm(m.dayForm, msg.Day)
		m.state = constants.StateEditDay
		return m, m.form.Init()

	case daylog.ToggleFastingMsg:
		if err := m.trk.UpdateActivity(msg.Day, models.FieldFasting, msg.On); err == nil {
			m.refresh()
		}
		return m, nil

	case goals.AddGoalMsg:
		m.goalForm = &GoalFormModel{Category: models.GoalPersonal}
		m.form = NewGoalForm(m.goalForm)
		m.state = constants.StateAddGoal
		return m, m.form.Init()

	case goals.ToggleGoalMsg:
		if err := m.trk.ToggleGoal(msg.ID); err == nil {
			m.refresh()
		}
		return m, nil

	case goals.RemoveGoalMsg:
		m.goalToRemoveID = msg.ID
		m.state = constants.StateConfirmRemoveGoal
		return m, nil

	case journal.EditEntryMsg:
		entry, _ := m.trk.JournalEntry(msg.Day)
		m.editingDay = msg.Day
		m.journalForm = &JournalFormModel{
			Achievements: entry.Achievements,
			Memories:     entry.Memories,
			Mood:         entry.Mood,
		}
		m.form = NewJournalForm(m.journalForm, msg.Day)
		m.state = constants.StateEditJournal
		return m, m.form.Init()

	case duas.AddDuaMsg:
		m.duaForm = &DuaFormModel{}
		m.form = NewDuaForm(m.duaForm)
		m.state = constants.StateAddDua
		return m, m.form.Init()

	case duas.RemoveDuaMsg:
		m.duaToRemove = msg.Index
		m.state = constants.StateConfirmRemoveDua
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % constants.NumMainTabs
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + constants.NumMainTabs) % constants.NumMainTabs
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case constants.StateTracker:
		m.dayLog, cmd = m.dayLog.Update(msg)
		cmds = append(cmds, cmd)
	case constants.StateStats:
		m.statsPanel, cmd = m.statsPanel.Update(msg)
		cmds = append(cmds, cmd)
	case constants.StateGoals:
		m.goalList, cmd = m.goalList.Update(msg)
		cmds = append(cmds, cmd)
	case constants.StateJournal:
		m.journalPanel, cmd = m.journalPanel.Update(msg)
		cmds = append(cmds, cmd)
	case constants.StateDuas:
		m.duaList, cmd = m.duaList.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// normalizeCount maps a blank form input back to the stored zero counter.
func normalizeCount(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "0"
	}
	return s
}
