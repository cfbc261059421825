package model

// Op names a list mutation. The same set describes reducer actions and
// the row changes produced by Diff.
type Op int

const (
	OpAdd Op = iota
	OpEdit
	OpRemove
	OpClear
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpEdit:
		return "edit"
	case OpRemove:
		return "remove"
	case OpClear:
		return "clear"
	}
	return "unknown"
}

// Action is one mutation applied to a list of records.
type Action struct {
	Op     Op
	Record Record // OpAdd: full record; OpEdit: ID + new Value; OpRemove: ID
}

func Add(r Record) Action          { return Action{Op: OpAdd, Record: r} }
func Edit(id, value string) Action { return Action{Op: OpEdit, Record: Record{ID: id, Value: value}} }
func Remove(id string) Action      { return Action{Op: OpRemove, Record: Record{ID: id}} }
func Clear() Action                { return Action{Op: OpClear} }

// Apply returns the list that results from a on records.
// The input slice is never modified. Edit and Remove on an unknown id
// return an equal copy.
func Apply(records []Record, a Action) []Record {
	switch a.Op {
	case OpAdd:
		out := make([]Record, 0, len(records)+1)
		out = append(out, records...)
		return append(out, a.Record)

	case OpEdit:
		out := make([]Record, len(records))
		copy(out, records)
		for i := range out {
			if out[i].ID == a.Record.ID {
				out[i].Value = a.Record.Value
			}
		}
		return out

	case OpRemove:
		out := make([]Record, 0, len(records))
		for _, r := range records {
			if r.ID != a.Record.ID {
				out = append(out, r)
			}
		}
		return out

	case OpClear:
		return []Record{}
	}

	out := make([]Record, len(records))
	copy(out, records)
	return out
}

// Change is one row operation a view must perform.
type Change struct {
	Op     Op
	Record Record
}

// Diff lists the row operations that turn prev into next. Views only
// append, edit in place, remove, or clear, so the result is ordered as
// removes, then edits, then appends (in next order). Rows are addressed by
// id; when an id repeats, the occurrences beyond those already in prev are
// appended.
func Diff(prev, next []Record) []Change {
	if len(next) == 0 {
		if len(prev) == 0 {
			return nil
		}
		return []Change{{Op: OpClear}}
	}

	nextByID := make(map[string]Record, len(next))
	for _, r := range next {
		if _, ok := nextByID[r.ID]; !ok {
			nextByID[r.ID] = r
		}
	}
	prevCount := make(map[string]int, len(prev))
	for _, r := range prev {
		prevCount[r.ID]++
	}

	var changes []Change
	done := make(map[string]bool, len(prev))
	for _, r := range prev {
		if _, ok := nextByID[r.ID]; !ok && !done[r.ID] {
			changes = append(changes, Change{Op: OpRemove, Record: r})
		}
		done[r.ID] = true
	}
	clear(done)
	for _, r := range prev {
		if done[r.ID] {
			continue
		}
		done[r.ID] = true
		if n, ok := nextByID[r.ID]; ok && n.Value != r.Value {
			changes = append(changes, Change{Op: OpEdit, Record: n})
		}
	}
	seen := make(map[string]int, len(next))
	for _, r := range next {
		if seen[r.ID] >= prevCount[r.ID] {
			changes = append(changes, Change{Op: OpAdd, Record: r})
		}
		seen[r.ID]++
	}
	return changes
}
