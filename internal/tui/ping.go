package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"gomultitool/internal/reach"
	"gomultitool/internal/theme"
	"gomultitool/internal/widget"
)

const historyRows = 5

// pingPanel checks one host at a time.
type pingPanel struct {
	ctx     context.Context
	checker *reach.Checker
	keys    keyMap

	host    *widget.Input
	button  *widget.Button
	output  *widget.Output
	recent  *widget.Label
	root    *widget.Box
	ring    *focusRing
	spinner spinner.Model
	busy    bool
}

func newPingPanel(ctx context.Context, checker *reach.Checker, keys keyMap) *pingPanel {
	p := &pingPanel{
		ctx:     ctx,
		checker: checker,
		keys:    keys,
		host:    widget.NewInput("example.com", 30),
		button:  widget.NewButton("Ping"),
		output:  widget.NewOutput(80, 10),
		recent:  widget.NewLabel(""),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}

	p.root = widget.NewColumn(
		widget.NewRow(widget.NewLabel("Enter Host/IP:"), p.host, p.button),
		p.output,
		p.recent,
	)
	p.ring = newFocusRing(p.host, p.button)

	return p
}

func (p *pingPanel) Title() string    { return "Ping Tester" }
func (p *pingPanel) Root() theme.Node { return p.root }
func (p *pingPanel) Focus() tea.Cmd   { return p.ring.focus() }
func (p *pingPanel) Blur()            { p.ring.blur() }
func (p *pingPanel) SetSize(w, h int) { p.output.SetSize(w, max(h-historyRows-3, 3)) }

func (p *pingPanel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.NextField):
			return p.ring.next()
		case key.Matches(msg, p.keys.PrevField):
			return p.ring.prev()
		case key.Matches(msg, p.keys.Activate):
			return p.start()
		}
		return p.ring.updateFocused(msg)

	case pingDoneMsg:
		p.busy = false
		p.button.Enabled = true

		if msg.err != nil {
			p.output.SetText(reach.ErrorReport(msg.err))
		} else {
			p.output.SetText(reach.Report(msg.result))
		}
		p.refreshHistory()
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

// start launches a check unless one is already running.
func (p *pingPanel) start() tea.Cmd {
	if p.busy {
		return nil
	}

	host := strings.TrimSpace(p.host.Value())
	if host == "" {
		p.output.SetText(reach.ErrorReport(reach.ErrEmptyHost))
		return nil
	}

	p.busy = true
	p.button.Enabled = false
	p.output.SetText(fmt.Sprintf("Pinging %s...\n", host))

	ctx, checker := p.ctx, p.checker
	check := func() tea.Msg {
		res, err := checker.Check(ctx, host)
		return pingDoneMsg{result: res, err: err}
	}

	return tea.Batch(check, p.spinner.Tick)
}

func (p *pingPanel) refreshHistory() {
	recent := p.checker.History().Recent(historyRows)
	if len(recent) == 0 {
		p.recent.Text = ""
		return
	}

	total, up := p.checker.History().Counts()

	var b strings.Builder
	fmt.Fprintf(&b, "Recent checks (%d/%d reachable):", up, total)

	for i := len(recent) - 1; i >= 0; i-- {
		r := recent[i]
		status := "down"
		if r.Reachable {
			status = fmt.Sprintf("up %d ms", r.ElapsedMillis())
		}
		fmt.Fprintf(&b, "\n  %s  %-24s %-16s %s (%s)", r.Timestamp.Format("15:04:05"), r.Host, r.Address, status, r.Method)
	}

	p.recent.Text = b.String()
}

func (p *pingPanel) View() string {
	view := p.root.View()
	if p.busy {
		view += "\n" + p.spinner.View() + " probing..."
	}
	return view
}
