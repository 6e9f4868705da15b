package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// chromeHeight is the space taken by the title, tab bar and help line.
const chromeHeight = 7

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		for _, p := range m.panels {
			p.SetSize(msg.Width, max(msg.Height-chromeHeight, 5))
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			return m.switchTo(m.active + 1)
		case key.Matches(msg, m.keys.PrevTab):
			return m.switchTo(m.active - 1)
		case key.Matches(msg, m.keys.PingTab):
			return m.switchTo(0)
		case key.Matches(msg, m.keys.EditorTab):
			return m.switchTo(1)
		case key.Matches(msg, m.keys.ARPTab):
			return m.switchTo(2)
		}
		return m, m.activePanel().Update(msg)
	}

	// Results and spinner ticks may belong to a panel in the background.
	cmds := make([]tea.Cmd, 0, len(m.panels))
	for _, p := range m.panels {
		cmds = append(cmds, p.Update(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m Model) switchTo(idx int) (tea.Model, tea.Cmd) {
	n := len(m.panels)
	idx = (idx%n + n) % n

	if idx == m.active {
		return m, nil
	}

	m.activePanel().Blur()
	m.active = idx

	return m, m.activePanel().Focus()
}
