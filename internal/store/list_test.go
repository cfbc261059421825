package store

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/idilsaglam/todolist/internal/model"
)

func TestList_LoadMissingKeyIsEmpty(t *testing.T) {
	l := NewList(NewMemory())
	got := l.Load()
	if got == nil || len(got) != 0 {
		t.Fatalf("Load: got %#v, want empty non-nil slice", got)
	}
}

func TestList_RoundTrip(t *testing.T) {
	l := NewList(NewMemory())
	want := []model.Record{{ID: "1", Value: "buy milk"}, {ID: "2", Value: "<b>raw</b>"}, {ID: "3", Value: "   "}}
	if err := l.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := l.Load(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Load: got %+v, want %+v", got, want)
	}
}

func TestList_Operations(t *testing.T) {
	kv := NewMemory()
	l := NewList(kv)

	if err := l.Append(model.Record{ID: "T1", Value: "buy milk"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := l.Append(model.Record{ID: "T2", Value: "walk dog"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	raw, ok, _ := kv.Get(DefaultKey)
	if !ok || raw != `[{"id":"T1","value":"buy milk"},{"id":"T2","value":"walk dog"}]` {
		t.Fatalf("persisted: got %q (ok=%v)", raw, ok)
	}

	if err := l.UpdateValueByID("T1", "buy oat milk"); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := l.UpdateValueByID("nope", "x"); err != nil {
		t.Fatalf("update unknown: %v", err)
	}
	want := []model.Record{{ID: "T1", Value: "buy oat milk"}, {ID: "T2", Value: "walk dog"}}
	if got := l.Load(); !reflect.DeepEqual(got, want) {
		t.Fatalf("after update: got %+v, want %+v", got, want)
	}

	if err := l.RemoveByID("nope"); err != nil {
		t.Fatalf("remove unknown: %v", err)
	}
	if err := l.RemoveByID("T1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	want = []model.Record{{ID: "T2", Value: "walk dog"}}
	if got := l.Load(); !reflect.DeepEqual(got, want) {
		t.Fatalf("after remove: got %+v, want %+v", got, want)
	}

	if err := l.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok, _ := kv.Get(DefaultKey); ok {
		t.Fatalf("clear left key behind")
	}
	if got := l.Load(); len(got) != 0 {
		t.Fatalf("after clear: got %+v", got)
	}
}

func TestList_UnreadableDataLoadsEmpty(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "{oops"},
		{"object not array", `{"id":"1","value":"a"}`},
		{"null", "null"},
		{"number id", `[{"id":1,"value":"a"}]`},
		{"missing value", `[{"id":"1"}]`},
		{"array of strings", `["a","b"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := NewMemory()
			_ = kv.Set(DefaultKey, tt.raw)
			l := NewList(kv)
			if got := l.Load(); len(got) != 0 {
				t.Fatalf("Load: got %+v, want empty", got)
			}
		})
	}
}

func TestList_AppendOverUnreadableDataStartsFresh(t *testing.T) {
	kv := NewMemory()
	_ = kv.Set(DefaultKey, "garbage")
	l := NewList(kv)
	if err := l.Append(model.Record{ID: "1", Value: "a"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if got := l.Load(); len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("Load: got %+v", got)
	}
}

func TestList_WithKey(t *testing.T) {
	kv := NewMemory()
	l := NewList(kv, WithKey("other"))
	if err := l.Append(model.Record{ID: "1", Value: "a"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, ok, _ := kv.Get("other"); !ok {
		t.Fatalf("expected value under custom key")
	}
	if _, ok, _ := kv.Get(DefaultKey); ok {
		t.Fatalf("default key should stay empty")
	}
}

type failingKV struct{ *Memory }

func (failingKV) Set(string, string) error { return errors.New("disk full") }

func TestList_WriteErrorIsReturned(t *testing.T) {
	l := NewList(failingKV{NewMemory()})
	err := l.Append(model.Record{ID: "1", Value: "a"})
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("append: got %v, want wrapped disk full", err)
	}
}

func TestDecode_ReportsSchemaLocation(t *testing.T) {
	_, err := Decode(`[{"id":"1","value":2}]`)
	if err == nil || !strings.HasPrefix(err.Error(), "schema:") {
		t.Fatalf("Decode: got %v, want schema error", err)
	}
}
