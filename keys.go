// keys.go - Key bindings for the table and the account manager
package main

import "github.com/charmbracelet/bubbles/key"

type tableKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	Following key.Binding
	Followers key.Binding
	Lists     key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	Open      key.Binding
	Back      key.Binding

	Reload   key.Binding
	FetchNow key.Binding
	Filter   key.Binding
	SortNext key.Binding
	SortFlip key.Binding

	Accounts key.Binding
	Export   key.Binding
	Copy     key.Binding
	Theme    key.Binding
	Help     key.Binding
	Version  key.Binding
	Quit     key.Binding
}

var tableKeys = tableKeyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Top:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
	Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
	PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),

	Following: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "following")),
	Followers: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "followers")),
	Lists:     key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "lists")),
	NextTab:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next tab")),
	PrevTab:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "previous tab")),
	Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open list")),
	Back:      key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back to lists")),

	Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	FetchNow: key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "fetch now")),
	Filter:   key.NewBinding(key.WithKeys("f", "/"), key.WithHelp("f", "filter")),
	SortNext: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "sort column")),
	SortFlip: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "flip sort")),

	Accounts: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "accounts")),
	Export:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export html")),
	Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy handle")),
	Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	Help:     key.NewBinding(key.WithKeys("?", "h"), key.WithHelp("?", "help")),
	Version:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "version")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k tableKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Following, k.Followers, k.Lists, k.Reload, k.FetchNow,
		k.Filter, k.SortNext, k.Accounts, k.Help, k.Quit}
}

func (k tableKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Following, k.Followers, k.Lists, k.NextTab, k.PrevTab, k.Open, k.Back},
		{k.Reload, k.FetchNow, k.Filter, k.SortNext, k.SortFlip},
		{k.Up, k.Down, k.Top, k.Bottom, k.PageUp, k.PageDown},
		{k.Accounts, k.Export, k.Copy, k.Theme, k.Version, k.Quit},
	}
}

type accountKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Add    key.Binding
	Remove key.Binding
	Close  key.Binding
}

var accountKeys = accountKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "switch to")),
	Add:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "add")),
	Remove: key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "remove")),
	Close:  key.NewBinding(key.WithKeys("esc", "a", "q"), key.WithHelp("esc", "close")),
}

func (k accountKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Add, k.Remove, k.Close}
}

func (k accountKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, k.ShortHelp()}
}
