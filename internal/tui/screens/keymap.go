package screens

import "github.com/charmbracelet/bubbles/key"

type cartKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	ToggleEdit key.Binding
	Delete     key.Binding
	Checkout   key.Binding
	Cancel     key.Binding
	Quit       key.Binding
}

func newCartKeyMap() cartKeyMap {
	return cartKeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		ToggleEdit: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "toggle edit")),
		Delete:     key.NewBinding(key.WithKeys("x", "backspace"), key.WithHelp("x", "remove item")),
		Checkout:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "check out")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

type shopKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Add      key.Binding
	OpenCart key.Binding
	Quit     key.Binding
}

func newShopKeyMap() shopKeyMap {
	return shopKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Add:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add to cart")),
		OpenCart: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "view cart")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
