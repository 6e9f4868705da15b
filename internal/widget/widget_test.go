package widget

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gomultitool/internal/theme"
)

func TestSelectSetOptionsKeepsSelection(t *testing.T) {
	s := NewSelect([]string{"a", "b", "c"})
	s.Next()

	s.SetOptions([]string{"a", "b", "c", "d"})

	v, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "b", v)
	assert.Equal(t, []string{"a", "b", "c", "d"}, s.options)
}

func TestSelectEmpty(t *testing.T) {
	s := NewSelect(nil)

	_, ok := s.Selected()
	assert.False(t, ok)
	assert.Contains(t, s.View(), "(none)")

	s.Next()
	s.Prev()
	_, ok = s.Selected()
	assert.False(t, ok)
}

func TestSelectCyclesWhenFocused(t *testing.T) {
	s := NewSelect([]string{"a", "b", "c"})

	s.Update(tea.KeyMsg{Type: tea.KeyRight})
	v, _ := s.Selected()
	assert.Equal(t, "a", v, "ignores keys while blurred")

	s.Focus()
	s.Update(tea.KeyMsg{Type: tea.KeyRight})
	v, _ = s.Selected()
	assert.Equal(t, "b", v)

	s.Update(tea.KeyMsg{Type: tea.KeyLeft})
	s.Update(tea.KeyMsg{Type: tea.KeyLeft})
	v, _ = s.Selected()
	assert.Equal(t, "c", v, "wraps around")
}

func TestSelectSetOptionsDropsMissingSelection(t *testing.T) {
	s := NewSelect([]string{"a", "b"})
	s.Next()

	s.SetOptions([]string{"x", "y"})

	v, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "x", v)
}

func TestButtonFocus(t *testing.T) {
	b := NewButton("Ping")
	assert.False(t, b.Focused())

	b.Focus()
	assert.True(t, b.Focused())
	assert.Contains(t, b.View(), "Ping")

	b.Blur()
	assert.False(t, b.Focused())
}

func TestInputValue(t *testing.T) {
	in := NewInput("host", 20)
	in.Focus()

	for _, r := range "example.com" {
		in.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	assert.Equal(t, "example.com", in.Value())

	in.Reset()
	assert.Empty(t, in.Value())
}

func TestOutputSetText(t *testing.T) {
	o := NewOutput(40, 5)
	o.SetText("line one\nline two")

	assert.Equal(t, "line one\nline two", o.Text())
	assert.Contains(t, o.View(), "line one")
}

func TestBoxIsThemeContainer(t *testing.T) {
	lbl := NewLabel("Host:")
	in := NewInput("", 10)
	btn := NewButton("Go")
	row := NewRow(lbl, in, btn)
	col := NewColumn(row, NewOutput(10, 2))

	var visited int
	theme.Walk(col, func(theme.Node) { visited++ })
	assert.Equal(t, 6, visited)

	theme.Dark().Apply(col)

	view := col.View()
	assert.True(t, strings.Contains(view, "Host:"))
	assert.True(t, strings.Contains(view, "Go"))
}
