// Package widget holds the terminal widgets the panels are built from. Each
// widget exposes the theme capabilities that fit it.
package widget

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gomultitool/internal/theme"
)

// Focusable widgets take part in a panel's focus ring.
type Focusable interface {
	theme.Node
	Focus() tea.Cmd
	Blur()
	Focused() bool
}

// Label is static text.
type Label struct {
	Text  string
	style lipgloss.Style
}

func NewLabel(text string) *Label {
	return &Label{Text: text, style: lipgloss.NewStyle()}
}

func (l *Label) SetLabelStyle(s lipgloss.Style) { l.style = s }

func (l *Label) View() string {
	return l.style.Render(l.Text)
}

// Button is a focusable action trigger.
type Button struct {
	Text    string
	Enabled bool

	focused      bool
	style        lipgloss.Style
	focusedStyle lipgloss.Style
}

func NewButton(text string) *Button {
	return &Button{
		Text:         text,
		Enabled:      true,
		style:        lipgloss.NewStyle().Padding(0, 1),
		focusedStyle: lipgloss.NewStyle().Padding(0, 1).Reverse(true),
	}
}

func (b *Button) SetButtonStyle(normal, focused lipgloss.Style) {
	b.style, b.focusedStyle = normal, focused
}

func (b *Button) Focus() tea.Cmd {
	b.focused = true
	return nil
}

func (b *Button) Blur()         { b.focused = false }
func (b *Button) Focused() bool { return b.focused }

func (b *Button) View() string {
	text := "[ " + b.Text + " ]"

	style := b.style
	if b.focused {
		style = b.focusedStyle
	}
	if !b.Enabled {
		style = style.Faint(true)
	}

	return style.Render(text)
}

// Direction lays out a Box's children.
type Direction int

const (
	Row Direction = iota
	Column
)

// Box is a container laying its children out in a row or a column.
type Box struct {
	Direction Direction
	Gap       int

	children []theme.Node
	style    lipgloss.Style
}

func NewRow(children ...theme.Node) *Box {
	return &Box{Direction: Row, Gap: 1, children: children, style: lipgloss.NewStyle()}
}

func NewColumn(children ...theme.Node) *Box {
	return &Box{Direction: Column, children: children, style: lipgloss.NewStyle()}
}

func (b *Box) Children() []theme.Node             { return b.children }
func (b *Box) SetContainerStyle(s lipgloss.Style) { b.style = s }
func (b *Box) Add(n theme.Node)                   { b.children = append(b.children, n) }

func (b *Box) View() string {
	views := make([]string, 0, len(b.children)*2)

	for i, c := range b.children {
		if i > 0 && b.Gap > 0 && b.Direction == Row {
			views = append(views, lipgloss.NewStyle().Width(b.Gap).Render(""))
		}
		views = append(views, c.View())
	}

	var body string
	if b.Direction == Row {
		body = lipgloss.JoinHorizontal(lipgloss.Center, views...)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, views...)
	}

	return b.style.Render(body)
}
