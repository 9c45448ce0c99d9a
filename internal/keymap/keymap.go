package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

type KeyMap struct {
	Append   key.Binding
	Bottom   key.Binding
	Collapse key.Binding
	Copy     key.Binding
	Down     key.Binding
	Empty    key.Binding
	Expand   key.Binding
	HalfDown key.Binding
	HalfUp   key.Binding
	Help     key.Binding
	PageDown key.Binding
	PageUp   key.Binding
	Quit     key.Binding
	Refresh  key.Binding
	Remove   key.Binding
	Reset    key.Binding
	Save     key.Binding
	Top      key.Binding
	Up       key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Append: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "append records"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "scroll to bottom"),
		),
		Collapse: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "discard expanded state"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy selected record"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "next record"),
		),
		Empty: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "empty the list"),
		),
		Expand: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "expand/collapse record"),
		),
		HalfDown: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "half page down"),
		),
		HalfUp: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "half page up"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "show/hide help"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("f", "pgdown"),
			key.WithHelp("f", "page down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("b", "pgup"),
			key.WithHelp("b", "page up"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Remove: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "remove selected record"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "regenerate records"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save rendered records to file"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "scroll to top"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "previous record"),
		),
	}
}

func HelpKeyBindings(km KeyMap) []key.Binding {
	return []key.Binding{
		km.Down,
		km.Up,
		km.PageDown,
		km.PageUp,
		km.HalfDown,
		km.HalfUp,
		km.Top,
		km.Bottom,
		km.Expand,
		km.Collapse,
		km.Refresh,
		km.Reset,
		km.Empty,
		km.Append,
		km.Remove,
		km.Copy,
		km.Save,
		km.Quit,
		km.Help,
	}
}
