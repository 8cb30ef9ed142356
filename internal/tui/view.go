package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/muhasaba/muhasaba/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case constants.StateTracker:
		content = docStyle.Render(m.dayLog.View())
	case constants.StateStats:
		content = docStyle.Render(m.statsPanel.View())
	case constants.StateGoals:
		content = docStyle.Render(m.goalList.View())
	case constants.StateJournal:
		content = docStyle.Render(m.journalPanel.View())
	case constants.StateDuas:
		content = docStyle.Render(m.duaList.View())
	case constants.StateEditDay, constants.StateAddGoal, constants.StateEditJournal, constants.StateAddDua:
		content = m.form.View()
		if m.formError != "" {
			content = lipgloss.JoinVertical(lipgloss.Left, errorStyle.Render(m.formError), content)
		}
	case constants.StateConfirmRemoveGoal:
		content = m.viewConfirmRemoveGoal()
	case constants.StateConfirmRemoveDua:
		content = m.viewConfirmRemoveDua()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Tracker", "Stats", "Goals", "Journal", "Duas"}
	for i, title := range tabTitles {
		if m.state == constants.SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewConfirmRemoveGoal() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Remove this goal?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func (m Model) viewConfirmRemoveDua() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Remove dua %d?", m.duaToRemove+1)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
