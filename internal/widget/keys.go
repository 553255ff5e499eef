package widget

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the widget's key bindings. Embedding applications may
// replace individual bindings before handing the map back to the widget.
type KeyMap struct {
	PrevPage  key.Binding
	NextPage  key.Binding
	Today     key.Binding
	WeekMode  key.Binding
	MonthMode key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next page"),
		),
		Today: key.NewBinding(
			key.WithKeys("t", "."),
			key.WithHelp("t", "jump to today"),
		),
		WeekMode: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "week mode"),
		),
		MonthMode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "month mode"),
		),
	}
}

// ShortHelp lists the bindings for a help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevPage, k.NextPage, k.Today, k.WeekMode, k.MonthMode}
}
