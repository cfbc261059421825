package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todolist/internal/notify"
)

// Panel frames lines in the current theme's border.
func Panel(lines []string) string {
	t := Current()
	border := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
	return border.Render(strings.Join(lines, "\n"))
}

// Notice renders a status message styled by its severity. A zero notice
// renders as an empty string.
func Notice(n notify.Notice) string {
	if n.IsZero() {
		return ""
	}
	t := Current()
	if n.Severity == notify.Danger {
		return t.Danger.Render(t.SymFail + " " + n.Text)
	}
	return t.Success.Render(t.SymOK + " " + n.Text)
}

func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, Notice(notify.Notice{Text: msg, Severity: notify.Success}))
}

func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, Notice(notify.Notice{Text: msg, Severity: notify.Danger}))
}
