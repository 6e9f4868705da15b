package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"gomultitool/internal/widget"
)

// focusRing tracks which widget of a panel has focus.
type focusRing struct {
	items []widget.Focusable
	idx   int
}

func newFocusRing(items ...widget.Focusable) *focusRing {
	return &focusRing{items: items}
}

func (f *focusRing) current() widget.Focusable {
	if len(f.items) == 0 {
		return nil
	}
	return f.items[f.idx]
}

func (f *focusRing) focus() tea.Cmd {
	if c := f.current(); c != nil {
		return c.Focus()
	}
	return nil
}

func (f *focusRing) blur() {
	if c := f.current(); c != nil {
		c.Blur()
	}
}

func (f *focusRing) move(delta int) tea.Cmd {
	if len(f.items) == 0 {
		return nil
	}

	f.blur()
	f.idx = (f.idx + delta + len(f.items)) % len(f.items)

	return f.focus()
}

func (f *focusRing) next() tea.Cmd { return f.move(1) }
func (f *focusRing) prev() tea.Cmd { return f.move(-1) }

// set focuses w if it is part of the ring.
func (f *focusRing) set(w widget.Focusable) tea.Cmd {
	for i, it := range f.items {
		if it == w {
			f.blur()
			f.idx = i
			return f.focus()
		}
	}
	return nil
}

type updater interface {
	Update(tea.Msg) tea.Cmd
}

// updateFocused hands msg to the focused widget, if it takes messages.
func (f *focusRing) updateFocused(msg tea.Msg) tea.Cmd {
	if u, ok := f.current().(updater); ok {
		return u.Update(msg)
	}
	return nil
}
