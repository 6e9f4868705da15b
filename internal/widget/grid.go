package widget

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Grid is a read-only table of rows.
type Grid struct {
	model table.Model
}

func NewGrid(columns []table.Column, height int) *Grid {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(height),
	)

	return &Grid{model: t}
}

// SetLabelStyle colours the header and cells.
func (g *Grid) SetLabelStyle(s lipgloss.Style) {
	st := table.DefaultStyles()
	st.Header = st.Header.
		Inherit(s).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	st.Cell = st.Cell.Inherit(s)
	// Nothing is ever selected in a read-only grid.
	st.Selected = st.Cell
	g.model.SetStyles(st)
}

func (g *Grid) SetRows(rows [][]string) {
	out := make([]table.Row, len(rows))
	for i, r := range rows {
		out[i] = table.Row(r)
	}
	g.model.SetRows(out)
}

func (g *Grid) Rows() [][]string {
	rows := g.model.Rows()

	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = []string(r)
	}

	return out
}

func (g *Grid) SetHeight(h int) {
	g.model.SetHeight(h)
}

func (g *Grid) View() string {
	return g.model.View()
}
