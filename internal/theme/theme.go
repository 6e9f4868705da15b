// Package theme styles a tree of widgets in one recursive pass. Nodes are
// styled by what they can do, not by their concrete type.
package theme

import "github.com/charmbracelet/lipgloss"

// Node is any element of a widget tree.
type Node interface {
	View() string
}

// Container is a node with children.
type Container interface {
	Node
	Children() []Node
	SetContainerStyle(lipgloss.Style)
}

// Labeled is a node that shows fixed or selectable text.
type Labeled interface {
	Node
	SetLabelStyle(lipgloss.Style)
}

// Editable is a node that shows user-editable or program-written text.
type Editable interface {
	Node
	SetInputStyle(lipgloss.Style)
}

// Pressable is a node that triggers an action.
type Pressable interface {
	Node
	SetButtonStyle(normal, focused lipgloss.Style)
}

// Theme is a palette plus the shell's own styles.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	InputBG    lipgloss.Color
	InputFG    lipgloss.Color
	ButtonBG   lipgloss.Color
	ButtonFG   lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color

	Title       lipgloss.Style
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Status      lipgloss.Style
}

// Dark is the default theme.
func Dark() Theme {
	t := Theme{
		Background: lipgloss.Color("#282C34"),
		Foreground: lipgloss.Color("#FFFFFF"),
		InputBG:    lipgloss.Color("#1E1E1E"),
		InputFG:    lipgloss.Color("#00FF00"),
		ButtonBG:   lipgloss.Color("#3C3F41"),
		ButtonFG:   lipgloss.Color("#FFFFFF"),
		Accent:     lipgloss.Color("#7D56F4"),
		Muted:      lipgloss.Color("240"),
	}

	t.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(t.Accent).
		Padding(0, 1)

	t.ActiveTab = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Foreground).
		Background(t.ButtonBG).
		Border(lipgloss.RoundedBorder(), true, true, false, true).
		BorderForeground(t.Accent).
		Padding(0, 1)

	t.InactiveTab = lipgloss.NewStyle().
		Foreground(t.Muted).
		Border(lipgloss.RoundedBorder(), true, true, false, true).
		BorderForeground(t.Muted).
		Padding(0, 1)

	t.Status = lipgloss.NewStyle().Foreground(t.Muted)

	return t
}

func (t Theme) ContainerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Background(t.Background)
}

func (t Theme) LabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Foreground)
}

func (t Theme) InputStyle() lipgloss.Style {
	return lipgloss.NewStyle().Background(t.InputBG).Foreground(t.InputFG)
}

func (t Theme) ButtonStyles() (normal, focused lipgloss.Style) {
	normal = lipgloss.NewStyle().
		Background(t.ButtonBG).
		Foreground(t.ButtonFG).
		Padding(0, 1)
	focused = normal.Background(t.Accent).Bold(true)

	return normal, focused
}

// Apply styles root and every node below it. A node with several
// capabilities gets every matching style.
func (t Theme) Apply(root Node) {
	Walk(root, t.style)
}

func (t Theme) style(n Node) {
	if c, ok := n.(Container); ok {
		c.SetContainerStyle(t.ContainerStyle())
	}
	if l, ok := n.(Labeled); ok {
		l.SetLabelStyle(t.LabelStyle())
	}
	if e, ok := n.(Editable); ok {
		e.SetInputStyle(t.InputStyle())
	}
	if p, ok := n.(Pressable); ok {
		p.SetButtonStyle(t.ButtonStyles())
	}
}

// Walk visits root and its descendants depth-first, parents before
// children.
func Walk(root Node, visit func(Node)) {
	if root == nil {
		return
	}

	visit(root)

	if c, ok := root.(Container); ok {
		for _, child := range c.Children() {
			Walk(child, visit)
		}
	}
}
