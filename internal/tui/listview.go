package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todolist/internal/ui"
)

// listItem adapts a record row to bubbles/list.Item
type listItem struct {
	ID    string
	Value string
}

// Implement list.Item interface
func (i listItem) Title() string       { return i.Value }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.Value }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	t := ui.Current()
	prefix := "  "
	text := it.Value
	if index == m.Index() {
		prefix = t.Selected.Render(t.Cursor)
		text = t.Selected.Render(text)
	}
	fmt.Fprint(w, prefix+text)
}

// listView keeps the rendered rows in a bubbles list. It is the terminal
// implementation of todo.View.
type listView struct {
	list    list.Model
	visible bool
}

func newListView() *listView {
	l := list.New(nil, itemDelegate{}, 76, 10)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("item", "items")
	l.DisableQuitKeybindings()
	return &listView{list: l}
}

func (v *listView) index(id string) int {
	for i, it := range v.list.Items() {
		if li, ok := it.(listItem); ok && li.ID == id {
			return i
		}
	}
	return -1
}

func (v *listView) RenderRow(id, value string) {
	v.list.InsertItem(len(v.list.Items()), listItem{ID: id, Value: value})
}

func (v *listView) RemoveRow(id string) {
	removed := false
	for i := v.index(id); i >= 0; i = v.index(id) {
		v.list.RemoveItem(i)
		removed = true
	}
	// RemoveItem leaves the cursor where it was, past the end when the
	// bottom row goes.
	if n := len(v.list.Items()); removed && n > 0 && v.list.Index() >= n {
		v.list.Select(n - 1)
	}
}

func (v *listView) ClearRows() {
	v.list.SetItems(nil)
}

func (v *listView) RenderEditedRow(id, value string) {
	for i, it := range v.list.Items() {
		if li, ok := it.(listItem); ok && li.ID == id {
			v.list.SetItem(i, listItem{ID: id, Value: value})
		}
	}
}

func (v *listView) SetContainerVisible(visible bool) {
	v.visible = visible
}

func (v *listView) selected() (listItem, bool) {
	li, ok := v.list.SelectedItem().(listItem)
	return li, ok
}

func (v *listView) rows() []listItem {
	items := v.list.Items()
	out := make([]listItem, 0, len(items))
	for _, it := range items {
		if li, ok := it.(listItem); ok {
			out = append(out, li)
		}
	}
	return out
}
