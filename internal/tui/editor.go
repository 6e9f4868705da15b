package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"gomultitool/internal/runner"
	"gomultitool/internal/theme"
	"gomultitool/internal/widget"
)

// editorPanel edits a source buffer and runs it through the toolchain.
type editorPanel struct {
	ctx    context.Context
	runner *runner.Runner
	keys   keyMap

	button  *widget.Button
	editor  *widget.Editor
	output  *widget.Output
	root    *widget.Box
	ring    *focusRing
	spinner spinner.Model
	busy    bool
}

func newEditorPanel(ctx context.Context, r *runner.Runner, keys keyMap) *editorPanel {
	tc := r.Toolchain()

	p := &editorPanel{
		ctx:     ctx,
		runner:  r,
		keys:    keys,
		button:  widget.NewButton("Compile & Run"),
		editor:  widget.NewEditor(tc.Template, 80, 12),
		output:  widget.NewOutput(80, 6),
		spinner: spinner.New(spinner.WithSpinner(spinner.Line)),
	}

	p.root = widget.NewColumn(
		widget.NewRow(p.button, widget.NewLabel(tc.Name+": "+tc.SourceFile)),
		p.editor,
		p.output,
	)
	p.ring = newFocusRing(p.editor, p.button)

	return p
}

func (p *editorPanel) Title() string    { return "Code Editor" }
func (p *editorPanel) Root() theme.Node { return p.root }
func (p *editorPanel) Focus() tea.Cmd   { return p.ring.focus() }
func (p *editorPanel) Blur()            { p.ring.blur() }

func (p *editorPanel) SetSize(w, h int) {
	editorHeight := max(h*2/3-1, 3)
	p.editor.SetSize(w, editorHeight)
	p.output.SetSize(w, max(h-editorHeight-2, 3))
}

func (p *editorPanel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Run):
			return p.start()
		case key.Matches(msg, p.keys.NextField):
			return p.ring.next()
		case key.Matches(msg, p.keys.PrevField):
			return p.ring.prev()
		case key.Matches(msg, p.keys.Activate) && p.button.Focused():
			return p.start()
		}

		if p.editor.Focused() {
			return p.editor.Update(msg)
		}
		return p.output.Update(msg)

	case runDoneMsg:
		p.busy = false
		p.button.Enabled = true

		if msg.err != nil {
			p.output.SetText(runner.ErrorReport(msg.err))
		} else {
			p.output.SetText(runner.Report(msg.result))
		}
		return nil

	case spinner.TickMsg:
		if !p.busy {
			return nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return cmd
	}

	return p.ring.updateFocused(msg)
}

// start is a no-op while a previous run is still going.
func (p *editorPanel) start() tea.Cmd {
	if p.busy {
		return nil
	}

	p.busy = true
	p.button.Enabled = false
	p.output.SetText("")

	ctx, r, source := p.ctx, p.runner, p.editor.Value()
	run := func() tea.Msg {
		res, err := r.CompileAndRun(ctx, source)
		return runDoneMsg{result: res, err: err}
	}

	return tea.Batch(run, p.spinner.Tick)
}

func (p *editorPanel) View() string {
	view := p.root.View()
	if p.busy {
		view += "\n" + p.spinner.View() + " compiling and running..."
	}
	return view
}
