package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"
)

// KeyMap holds the key bindings of the table viewer.
type KeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Activate key.Binding
	Column   key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the arrow and vim style bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev column")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next column")),
		Activate: key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("enter", "sort")),
		Column:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "sort column")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns the enabled bindings in display order.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Activate, k.Column, k.Quit}
}

// HelpLine returns the short help as a single line.
func (k KeyMap) HelpLine() string {
	var b strings.Builder
	for _, binding := range k.ShortHelp() {
		if !binding.Enabled() {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(" • ")
		}
		help := binding.Help()
		b.WriteString(help.Key)
		b.WriteByte(' ')
		b.WriteString(help.Desc)
	}
	return b.String()
}
