package widget

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Input is a single-line text field.
type Input struct {
	model textinput.Model
}

func NewInput(placeholder string, width int) *Input {
	m := textinput.New()
	m.Placeholder = placeholder
	m.Width = width
	m.Prompt = ""

	return &Input{model: m}
}

func (i *Input) SetInputStyle(s lipgloss.Style) {
	i.model.TextStyle = s
	i.model.PlaceholderStyle = s.Faint(true)
	i.model.Cursor.Style = s
}

func (i *Input) Focus() tea.Cmd    { return i.model.Focus() }
func (i *Input) Blur()             { i.model.Blur() }
func (i *Input) Focused() bool     { return i.model.Focused() }
func (i *Input) Value() string     { return i.model.Value() }
func (i *Input) SetValue(v string) { i.model.SetValue(v) }
func (i *Input) Reset()            { i.model.Reset() }

func (i *Input) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	i.model, cmd = i.model.Update(msg)
	return cmd
}

func (i *Input) View() string {
	return i.model.View()
}

// Editor is a multi-line text buffer.
type Editor struct {
	model textarea.Model
}

func NewEditor(text string, width, height int) *Editor {
	m := textarea.New()
	m.ShowLineNumbers = true
	m.CharLimit = 0
	m.SetWidth(width)
	m.SetHeight(height)
	m.SetValue(text)

	return &Editor{model: m}
}

func (e *Editor) SetInputStyle(s lipgloss.Style) {
	e.model.FocusedStyle.Base = s
	e.model.FocusedStyle.Text = s
	e.model.FocusedStyle.CursorLine = s.Bold(true)
	e.model.BlurredStyle.Base = s
	e.model.BlurredStyle.Text = s.Faint(true)
}

func (e *Editor) Focus() tea.Cmd { return e.model.Focus() }
func (e *Editor) Blur()          { e.model.Blur() }
func (e *Editor) Focused() bool  { return e.model.Focused() }
func (e *Editor) Value() string  { return e.model.Value() }

func (e *Editor) SetSize(width, height int) {
	e.model.SetWidth(width)
	e.model.SetHeight(height)
}

func (e *Editor) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	e.model, cmd = e.model.Update(msg)
	return cmd
}

func (e *Editor) View() string {
	return e.model.View()
}

// Output is a read-only, scrollable text area.
type Output struct {
	model viewport.Model
	text  string
}

func NewOutput(width, height int) *Output {
	return &Output{model: viewport.New(width, height)}
}

func (o *Output) SetInputStyle(s lipgloss.Style) {
	o.model.Style = s
}

// SetText replaces the contents and scrolls to the top.
func (o *Output) SetText(text string) {
	o.text = text
	o.model.SetContent(text)
	o.model.GotoTop()
}

func (o *Output) Text() string { return o.text }

func (o *Output) SetSize(width, height int) {
	o.model.Width = width
	o.model.Height = height
}

func (o *Output) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	o.model, cmd = o.model.Update(msg)
	return cmd
}

func (o *Output) View() string {
	return o.model.View()
}
