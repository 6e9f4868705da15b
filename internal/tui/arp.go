package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"gomultitool/internal/arptable"
	"gomultitool/internal/logging"
	"gomultitool/internal/theme"
	"gomultitool/internal/widget"
)

// arpPanel drives the simulated ARP table. Everything it does is in memory,
// so actions complete inside Update.
type arpPanel struct {
	table  *arptable.Table
	keys   keyMap
	logger zerolog.Logger

	source   *widget.Select
	target   *widget.Select
	simulate *widget.Button
	ip       *widget.Input
	mac      *widget.Input
	add      *widget.Button
	notice   *widget.Label
	devices  *widget.Grid
	output   *widget.Output
	root     *widget.Box
	ring     *focusRing
}

func newARPPanel(t *arptable.Table, keys keyMap) *arpPanel {
	p := &arpPanel{
		table:    t,
		keys:     keys,
		logger:   logging.WithComponent("arp"),
		source:   widget.NewSelect(nil),
		target:   widget.NewSelect(nil),
		simulate: widget.NewButton("Simulate ARP Request"),
		ip:       widget.NewInput("192.168.1.5", 16),
		mac:      widget.NewInput("00-AA-BB-CC-DD-05", 20),
		add:      widget.NewButton("Add Device"),
		notice:   widget.NewLabel(""),
		devices: widget.NewGrid([]table.Column{
			{Title: "IP Address", Width: 20},
			{Title: "MAC Address", Width: 20},
		}, 6),
		output: widget.NewOutput(80, 8),
	}

	p.root = widget.NewColumn(
		widget.NewRow(
			widget.NewLabel("Source IP:"), p.source,
			widget.NewLabel("Destination IP:"), p.target,
			p.simulate,
		),
		widget.NewRow(
			widget.NewLabel("New IP:"), p.ip,
			widget.NewLabel("MAC:"), p.mac,
			p.add,
		),
		p.notice,
		widget.NewRow(p.devices, p.output),
	)
	p.ring = newFocusRing(p.source, p.target, p.simulate, p.ip, p.mac, p.add)

	p.refresh()

	return p
}

func (p *arpPanel) Title() string    { return "ARP Simulator" }
func (p *arpPanel) Root() theme.Node { return p.root }
func (p *arpPanel) Focus() tea.Cmd   { return p.ring.focus() }
func (p *arpPanel) Blur()            { p.ring.blur() }

func (p *arpPanel) SetSize(w, h int) {
	rows := max(h-6, 3)
	p.devices.SetHeight(rows)
	p.output.SetSize(max(w-44, 20), rows)
}

// refresh mirrors the table into both selections and the device grid.
func (p *arpPanel) refresh() {
	addrs := p.table.Addresses()
	p.source.SetOptions(addrs)
	p.target.SetOptions(addrs)

	entries := p.table.Entries()
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{e.Address, e.HardwareAddr}
	}
	p.devices.SetRows(rows)
}

func (p *arpPanel) Update(msg tea.Msg) tea.Cmd {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return p.ring.updateFocused(msg)
	}

	switch {
	case key.Matches(k, p.keys.NextField):
		return p.ring.next()
	case key.Matches(k, p.keys.PrevField):
		return p.ring.prev()
	case key.Matches(k, p.keys.Activate):
		switch p.ring.current() {
		case p.source, p.target, p.simulate:
			p.runSimulation()
		case p.ip, p.mac, p.add:
			return p.addDevice()
		}
		return nil
	}

	return p.ring.updateFocused(k)
}

func (p *arpPanel) runSimulation() {
	src, _ := p.source.Selected()
	dst, _ := p.target.Selected()

	ex, err := arptable.Simulate(p.table, src, dst)
	if err != nil {
		p.output.SetText(arptable.ErrorReport(err))
		return
	}

	p.output.SetText(ex.Report())
}

func (p *arpPanel) addDevice() tea.Cmd {
	entry, err := p.table.Add(p.ip.Value(), p.mac.Value())
	if err != nil {
		p.logger.Warn().Err(err).Msg("add device rejected")
		p.notice.Text = arptable.ErrorReport(err)
		return nil
	}

	p.refresh()
	p.ip.Reset()
	p.mac.Reset()
	p.notice.Text = ""
	p.output.SetText(arptable.AddedReport(entry))

	return p.ring.set(p.ip)
}

func (p *arpPanel) View() string {
	return p.root.View()
}
