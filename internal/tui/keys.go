package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the dashboard key bindings
type keyMap struct {
	Add      key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Search   key.Binding
	Submit   key.Binding
	Cancel   key.Binding
	Next     key.Binding
	Prev     key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Menu     key.Binding
	Clear    key.Binding
	Logout   key.Binding
	Yes      key.Binding
	No       key.Binding
	Quit     key.Binding
	withMenu bool
}

func newBinding(keys []string, help, display string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(display, help),
	)
}

func defaultKeyMap() keyMap {
	return keyMap{
		Add:    newBinding([]string{"a"}, "add", "a"),
		Edit:   newBinding([]string{"e"}, "edit", "e"),
		Delete: newBinding([]string{"d"}, "delete", "d"),
		Search: newBinding([]string{"/"}, "search", "/"),
		Submit: newBinding([]string{"enter"}, "submit", "enter"),
		Cancel: newBinding([]string{"esc"}, "cancel", "esc"),
		Next:   newBinding([]string{"tab"}, "next field", "tab"),
		Prev:   newBinding([]string{"shift+tab"}, "previous field", "shift+tab"),
		Up:     newBinding([]string{"up", "k"}, "up", "↑/k"),
		Down:   newBinding([]string{"down", "j"}, "down", "↓/j"),
		Left:   newBinding([]string{"left"}, "previous option", "←"),
		Right:  newBinding([]string{"right", " "}, "next option", "→"),
		Menu:   newBinding([]string{"m"}, "actions", "m"),
		Clear:  newBinding([]string{"x"}, "clear search", "x"),
		Logout: newBinding([]string{"L"}, "logout", "L"),
		Yes:    newBinding([]string{"y", "enter"}, "yes", "y"),
		No:     newBinding([]string{"n", "esc"}, "no", "n"),
		Quit:   newBinding([]string{"q", "ctrl+c"}, "quit", "q"),
	}
}

func adsKeyMap() keyMap {
	k := defaultKeyMap()
	k.withMenu = true
	return k
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	if k.withMenu {
		return []key.Binding{k.Add, k.Menu, k.Edit, k.Delete, k.Search, k.Clear, k.Logout, k.Quit}
	}
	return []key.Binding{k.Add, k.Edit, k.Delete, k.Search, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.ShortHelp(),
		{k.Up, k.Down, k.Submit, k.Cancel, k.Next, k.Prev, k.Left, k.Right},
	}
}
