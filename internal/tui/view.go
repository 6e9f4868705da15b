package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const windowTitle = "Multi-Tool: Ping + Code Editor + ARP"

func (m Model) View() string {
	title := m.theme.Title.Render(windowTitle)

	tabs := make([]string, len(m.panels))
	for i, p := range m.panels {
		style := m.theme.InactiveTab
		if i == m.active {
			style = m.theme.ActiveTab
		}
		tabs[i] = style.Render(p.Title())
	}
	tabBar := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	body := m.activePanel().View()

	var b strings.Builder
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, title, tabBar, body))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}
