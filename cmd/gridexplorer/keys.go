package main

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Expansion
	Expand      key.Binding
	Collapse    key.Binding
	Toggle      key.Binding
	ExpandAll   key.Binding
	CollapseAll key.Binding

	// Horizontal scrolling
	ScrollLeft  key.Binding
	ScrollRight key.Binding

	// Commands
	CopyKey    key.Binding
	CopyRecord key.Binding
	Help       key.Binding
	Esc        key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "go to top"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "go to bottom"),
		),

		Expand: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "expand / first child"),
		),
		Collapse: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "collapse / go to parent"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "expand/collapse"),
		),
		ExpandAll: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "expand all"),
		),
		CollapseAll: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "collapse all"),
		),

		ScrollLeft: key.NewBinding(
			key.WithKeys("shift+left", "["),
			key.WithHelp("shift+←", "scroll columns left"),
		),
		ScrollRight: key.NewBinding(
			key.WithKeys("shift+right", "]"),
			key.WithHelp("shift+→", "scroll columns right"),
		),

		CopyKey: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy row key"),
		),
		CopyRecord: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy record as YAML"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// helpSections groups the bindings shown in the help overlay.
func (k KeyMap) helpSections() []helpSection {
	return []helpSection{
		{"Navigation", []key.Binding{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End}},
		{"Expansion", []key.Binding{k.Expand, k.Collapse, k.Toggle, k.ExpandAll, k.CollapseAll}},
		{"Columns", []key.Binding{k.ScrollLeft, k.ScrollRight}},
		{"Actions", []key.Binding{k.CopyKey, k.CopyRecord, k.Help, k.Esc, k.Quit}},
	}
}

type helpSection struct {
	title    string
	bindings []key.Binding
}
