package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left      key.Binding
	Right     key.Binding
	Enter     key.Binding
	Inventory key.Binding
	Markers   key.Binding
	Choose    key.Binding
	Leave     key.Binding
	Restart   key.Binding
	Back      key.Binding
	Copy      key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Left:      key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "walk left")),
		Right:     key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "walk right")),
		Enter:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "enter")),
		Inventory: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "inventory")),
		Markers:   key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "door markers")),
		Choose:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "choose")),
		Leave:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave shop")),
		Restart:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Back:      key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "back to streets")),
		Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy summary")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Enter, k.Inventory, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Enter, k.Inventory, k.Markers},
		{k.Choose, k.Leave, k.Restart, k.Back, k.Copy, k.Quit},
	}
}
