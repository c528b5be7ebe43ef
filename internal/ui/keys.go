package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the session key bindings.
type keyMap struct {
	Toggle      key.Binding
	Start       key.Binding
	PauseResume key.Binding
	Reset       key.Binding
	InhaleDown  key.Binding
	InhaleUp    key.Binding
	HoldDown    key.Binding
	HoldUp      key.Binding
	ExhaleDown  key.Binding
	ExhaleUp    key.Binding
	CyclesDown  key.Binding
	CyclesUp    key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Toggle:      key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "start/pause")),
		Start:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start")),
		PauseResume: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause/resume")),
		Reset:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		InhaleDown:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i/I", "inhale -/+")),
		InhaleUp:    key.NewBinding(key.WithKeys("I")),
		HoldDown:    key.NewBinding(key.WithKeys("h"), key.WithHelp("h/H", "hold -/+")),
		HoldUp:      key.NewBinding(key.WithKeys("H")),
		ExhaleDown:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e/E", "exhale -/+")),
		ExhaleUp:    key.NewBinding(key.WithKeys("E")),
		CyclesDown:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c/C", "cycles -/+")),
		CyclesUp:    key.NewBinding(key.WithKeys("C")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Start, k.PauseResume, k.Reset},
		{k.InhaleDown, k.HoldDown, k.ExhaleDown, k.CyclesDown},
		{k.Help, k.Quit},
	}
}
