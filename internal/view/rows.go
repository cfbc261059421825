// Package view is an in-memory rendering of the list: ordered rows and
// the visibility of their container.
package view

import "sync"

type Row struct {
	ID    string
	Value string
}

// Rows records what a page would show. It is safe for concurrent use.
type Rows struct {
	mu      sync.RWMutex
	rows    []Row
	visible bool
}

func New() *Rows { return &Rows{} }

// RenderRow appends a row.
func (v *Rows) RenderRow(id, value string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.rows = append(v.rows, Row{ID: id, Value: value})
}

func (v *Rows) RemoveRow(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := v.rows[:0]
	for _, r := range v.rows {
		if r.ID != id {
			out = append(out, r)
		}
	}
	v.rows = out
}

func (v *Rows) ClearRows() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.rows = nil
}

// RenderEditedRow changes the text of a row without moving it.
func (v *Rows) RenderEditedRow(id, value string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.rows {
		if v.rows[i].ID == id {
			v.rows[i].Value = value
		}
	}
}

func (v *Rows) SetContainerVisible(visible bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.visible = visible
}

// Rows returns a copy of the rows in display order.
func (v *Rows) Rows() []Row {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]Row, len(v.rows))
	copy(out, v.rows)
	return out
}

func (v *Rows) Visible() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.visible
}

func (v *Rows) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.rows)
}
