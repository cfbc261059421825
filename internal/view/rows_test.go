package view

import (
	"reflect"
	"testing"
)

func TestRows(t *testing.T) {
	v := New()
	v.RenderRow("1", "a")
	v.RenderRow("2", "b")
	v.RenderRow("3", "c")
	v.SetContainerVisible(true)

	v.RenderEditedRow("2", "B")
	v.RemoveRow("1")
	v.RemoveRow("missing")

	want := []Row{{ID: "2", Value: "B"}, {ID: "3", Value: "c"}}
	if got := v.Rows(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Rows: got %+v, want %+v", got, want)
	}
	if !v.Visible() {
		t.Fatalf("container hidden")
	}

	v.ClearRows()
	v.SetContainerVisible(false)
	if v.Len() != 0 || v.Visible() {
		t.Fatalf("after clear: len=%d visible=%v", v.Len(), v.Visible())
	}
}

func TestRows_CopyIsDetached(t *testing.T) {
	v := New()
	v.RenderRow("1", "a")
	got := v.Rows()
	got[0].Value = "changed"
	if v.Rows()[0].Value != "a" {
		t.Fatalf("Rows returned shared storage")
	}
}
