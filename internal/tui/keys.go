package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit       key.Binding
	Submit     key.Binding
	FocusList  key.Binding
	FocusInput key.Binding
	Close      key.Binding
	Edit       key.Binding
	Delete     key.Binding
	Clear      key.Binding
	Up         key.Binding
	Down       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		FocusList:  key.NewBinding(key.WithKeys("tab", "esc"), key.WithHelp("tab", "list")),
		FocusInput: key.NewBinding(key.WithKeys("tab", "a", "i"), key.WithHelp("a", "add")),
		Close:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:     key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
		Clear:      key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	}
}

func (k keyMap) inputHelp() []key.Binding {
	return []key.Binding{k.Submit, k.FocusList, k.Quit}
}

func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Edit, k.Delete, k.Clear, k.FocusInput, k.Close}
}
