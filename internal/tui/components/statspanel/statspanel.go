package statspanel

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muhasaba/muhasaba/internal/constants"
	"github.com/muhasaba/muhasaba/internal/models"
)

const barWidth = 30

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Width(12)

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("43"))

	overallStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Model renders the five derived progress percentages plus the khatmah
// read-out. It holds no behavior beyond display.
type Model struct {
	stats         models.Stats
	khatmahVerses int
	width         int
	height        int
}

func New(stats models.Stats, khatmahVerses, width, height int) Model {
	return Model{stats: stats, khatmahVerses: khatmahVerses, width: width, height: height}
}

func (m *Model) SetStats(stats models.Stats, khatmahVerses int) {
	m.stats = stats
	m.khatmahVerses = khatmahVerses
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

func (m Model) View() string {
	rows := []string{
		renderBar("Qur'an", m.stats.Quran, false),
		renderBar("Prayers", m.stats.Prayers, false),
		renderBar("Dhikr", m.stats.Dhikr, false),
		renderBar("Good deeds", m.stats.GoodDeeds, false),
		"",
		renderBar("Overall", m.stats.Overall, true),
		"",
		dimStyle.Render(fmt.Sprintf("Khatmah: %d / %d verses marked read", m.khatmahVerses, constants.TotalQuranVerses)),
	}
	return strings.Join(rows, "\n")
}

func renderBar(label string, pct int, overall bool) string {
	filled := pct * barWidth / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	line := fmt.Sprintf("%s %s %3d%%", labelStyle.Render(label), barStyle.Render(bar), pct)
	if overall {
		return overallStyle.Render(line)
	}
	return line
}
