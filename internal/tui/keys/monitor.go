package keys

import "github.com/charmbracelet/bubbles/key"

// MonitorKeys are the key bindings for the port state monitor
type MonitorKeys struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Apply   key.Binding
	Discard key.Binding
	AllOn   key.Binding
	AllOff  key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func NewMonitorKeys() MonitorKeys {
	return MonitorKeys{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous port"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next port"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle port"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply changes"),
		),
		Discard: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "discard changes"),
		),
		AllOn: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "all ports on"),
		),
		AllOff: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "all ports off"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh now"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
	}
}

func (k MonitorKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Apply, k.Refresh, k.Help, k.Quit}
}

func (k MonitorKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Apply, k.Discard},
		{k.AllOn, k.AllOff, k.Refresh, k.Help, k.Quit},
	}
}
