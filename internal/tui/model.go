package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"gomultitool/internal/arptable"
	"gomultitool/internal/reach"
	"gomultitool/internal/runner"
	"gomultitool/internal/theme"
	"gomultitool/internal/widget"
)

// panel is one tab of the window.
type panel interface {
	Title() string
	Root() theme.Node
	Update(tea.Msg) tea.Cmd
	View() string
	SetSize(width, height int)
	Focus() tea.Cmd
	Blur()
}

// Deps are the feature backends behind the three panels.
type Deps struct {
	Checker *reach.Checker
	Runner  *runner.Runner
	Table   *arptable.Table
}

// Model is the whole window.
type Model struct {
	theme  theme.Theme
	keys   keyMap
	help   help.Model
	panels []panel
	active int
	width  int
	height int
}

func NewModel(ctx context.Context, deps Deps, th theme.Theme) Model {
	keys := defaultKeyMap()

	m := Model{
		theme: th,
		keys:  keys,
		help:  help.New(),
		panels: []panel{
			newPingPanel(ctx, deps.Checker, keys),
			newEditorPanel(ctx, deps.Runner, keys),
			newARPPanel(deps.Table, keys),
		},
	}

	// One theming pass over the whole window.
	window := widget.NewColumn()
	for _, p := range m.panels {
		window.Add(p.Root())
	}
	th.Apply(window)

	m.help.Styles.ShortKey = th.Status.Bold(true)
	m.help.Styles.ShortDesc = th.Status

	return m
}

func (m Model) Init() tea.Cmd {
	return m.panels[m.active].Focus()
}

func (m Model) activePanel() panel {
	return m.panels[m.active]
}
