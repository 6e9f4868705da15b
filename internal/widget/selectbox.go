package widget

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Select picks one value out of a list, cycling with left and right.
type Select struct {
	options []string
	index   int
	focused bool
	style   lipgloss.Style
}

func NewSelect(options []string) *Select {
	s := &Select{style: lipgloss.NewStyle()}
	s.SetOptions(options)
	return s
}

func (s *Select) SetLabelStyle(st lipgloss.Style) { s.style = st }

// SetOptions replaces the choices, keeping the current value selected when
// it is still offered.
func (s *Select) SetOptions(options []string) {
	current, ok := s.Selected()

	s.options = append([]string(nil), options...)
	s.index = 0

	if !ok {
		return
	}

	for i, o := range s.options {
		if o == current {
			s.index = i
			return
		}
	}
}

// Selected returns the chosen value; false when there are no options.
func (s *Select) Selected() (string, bool) {
	if len(s.options) == 0 {
		return "", false
	}
	return s.options[s.index], true
}

func (s *Select) Next() {
	if len(s.options) > 0 {
		s.index = (s.index + 1) % len(s.options)
	}
}

func (s *Select) Prev() {
	if len(s.options) > 0 {
		s.index = (s.index - 1 + len(s.options)) % len(s.options)
	}
}

func (s *Select) Focus() tea.Cmd {
	s.focused = true
	return nil
}

func (s *Select) Blur()         { s.focused = false }
func (s *Select) Focused() bool { return s.focused }

func (s *Select) Update(msg tea.Msg) tea.Cmd {
	if !s.focused {
		return nil
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "right", "down", "l", "j":
			s.Next()
		case "left", "up", "h", "k":
			s.Prev()
		}
	}

	return nil
}

func (s *Select) View() string {
	value, ok := s.Selected()
	if !ok {
		value = "(none)"
	}

	style := s.style
	if s.focused {
		style = style.Underline(true).Bold(true)
	}

	return style.Render("< " + value + " >")
}
