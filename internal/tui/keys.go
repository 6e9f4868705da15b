package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	PingTab   key.Binding
	EditorTab key.Binding
	ARPTab    key.Binding
	NextField key.Binding
	PrevField key.Binding
	Activate  key.Binding
	Run       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("ctrl+right", "ctrl+pgdown"),
			key.WithHelp("ctrl+→", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("ctrl+left", "ctrl+pgup"),
			key.WithHelp("ctrl+←", "prev tab"),
		),
		PingTab: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "ping"),
		),
		EditorTab: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "editor"),
		),
		ARPTab: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("f3", "arp"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "press"),
		),
		Run: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "compile & run"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Activate, k.PingTab, k.EditorTab, k.ARPTab, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.PingTab, k.EditorTab, k.ARPTab},
		{k.NextField, k.PrevField, k.Activate, k.Run, k.Quit},
	}
}
