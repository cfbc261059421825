// Package todo coordinates the list store, the rendered rows and the
// status notice around one form: create new items, or edit one.
package todo

// Mode is the editor state.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// Submit control labels.
const (
	LabelCreate = "submit"
	LabelEdit   = "edit"
)

// Editor is either Create, or Edit of one record id. Input is the text
// the form field should show.
type Editor struct {
	mode  Mode
	id    string
	input string
}

func (e Editor) Mode() Mode        { return e.mode }
func (e Editor) EditingID() string { return e.id }
func (e Editor) Input() string     { return e.input }

// SubmitLabel is the text of the submit control for the current mode.
func (e Editor) SubmitLabel() string {
	if e.mode == ModeEdit {
		return LabelEdit
	}
	return LabelCreate
}

func (e *Editor) beginEdit(id, value string) {
	e.mode = ModeEdit
	e.id = id
	e.input = value
}

func (e *Editor) reset() {
	*e = Editor{}
}
