package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/idilsaglam/todolist/internal/notify"
)

func TestMonoOutputIsPlain(t *testing.T) {
	SetTheme("mono")
	t.Cleanup(func() { SetTheme("classic") })

	var out bytes.Buffer
	OK(&out, "item added to the list")
	Fail(&out, "please enter value")
	want := "ok item added to the list\nx please enter value\n"
	if out.String() != want {
		t.Fatalf("output: got %q, want %q", out.String(), want)
	}
}

func TestPanel(t *testing.T) {
	SetTheme("mono")
	t.Cleanup(func() { SetTheme("classic") })

	got := Panel([]string{"Todos", "1000  buy milk"})
	lines := strings.Split(got, "\n")
	if len(lines) != 4 {
		t.Fatalf("Panel: got %d lines:\n%s", len(lines), got)
	}
	if !strings.HasPrefix(lines[0], "+") || !strings.Contains(lines[2], "1000  buy milk") {
		t.Fatalf("Panel: unexpected frame:\n%s", got)
	}
}

func TestNotice(t *testing.T) {
	SetTheme("mono")
	t.Cleanup(func() { SetTheme("classic") })

	if got := Notice(notify.Notice{}); got != "" {
		t.Fatalf("zero notice: got %q", got)
	}
	if got := Notice(notify.Notice{Text: "item removed", Severity: notify.Danger}); got != "x item removed" {
		t.Fatalf("danger notice: got %q", got)
	}
}

func TestSetTheme_UnknownFallsBack(t *testing.T) {
	SetTheme("nope")
	if Current().Name != "classic" {
		t.Fatalf("theme: got %q, want classic", Current().Name)
	}
}
