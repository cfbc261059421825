// Package tui is the interactive terminal page: a form, a status line and
// the list of items.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todolist/internal/notify"
	"github.com/idilsaglam/todolist/internal/todo"
	"github.com/idilsaglam/todolist/internal/ui"
)

// Options tune the terminal page.
type Options struct {
	NotifyDelay time.Duration
	Logger      *log.Logger
	Clock       func() time.Time
}

type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

// dismissMsg asks the banner to drop notice seq if it is still shown.
type dismissMsg struct{ seq int }

// tuiNotifier shows notices on a Banner and queues the tick that will
// dismiss each one. Update hands the queued ticks to bubbletea.
type tuiNotifier struct {
	banner notify.Banner
	delay  time.Duration
	queued []tea.Cmd
}

func (n *tuiNotifier) Notify(text string, sev notify.Severity) {
	seq := n.banner.Show(text, sev).Seq
	n.queued = append(n.queued, tea.Tick(n.delay, func(time.Time) tea.Msg {
		return dismissMsg{seq: seq}
	}))
}

func (n *tuiNotifier) drain() tea.Cmd {
	cmds := n.queued
	n.queued = nil
	return tea.Batch(cmds...)
}

// Model implements tea.Model for the todo page.
type Model struct {
	ctrl  *todo.Controller
	rows  *listView
	notes *tuiNotifier
	input textinput.Model
	help  help.Model
	keys  keyMap
	focus focusArea
}

// New builds the page over st and replays the stored list into it.
func New(st todo.Store, opt Options) Model {
	if opt.NotifyDelay <= 0 {
		opt.NotifyDelay = notify.DefaultDelay
	}
	rows := newListView()
	notes := &tuiNotifier{delay: opt.NotifyDelay}
	ctrl := todo.NewController(st, rows, notes,
		todo.WithLogger(opt.Logger),
		todo.WithClock(opt.Clock),
	)
	ctrl.Setup()

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "e.g. buy milk"
	ti.CharLimit = 0
	ti.Focus()

	return Model{
		ctrl:  ctrl,
		rows:  rows,
		notes: notes,
		input: ti,
		help:  help.New(),
		keys:  defaultKeyMap(),
		focus: focusInput,
	}
}

// Run starts the page on the alternate screen. Every action is persisted
// as it happens, so there is nothing to save on quit.
func Run(st todo.Store, opt Options) error {
	p := tea.NewProgram(New(st, opt), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case dismissMsg:
		m.notes.banner.Dismiss(msg.seq)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		err := m.ctrl.Submit(m.input.Value())
		if !errors.Is(err, todo.ErrEmptyValue) {
			m.input.SetValue("")
		}
		return m, m.notes.drain()

	case key.Matches(msg, m.keys.FocusList):
		m.focus = focusList
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		return m, tea.Quit

	case key.Matches(msg, m.keys.FocusInput):
		m.focus = focusInput
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Edit):
		it, ok := m.rows.selected()
		if !ok {
			return m, nil
		}
		value, _ := m.ctrl.BeginEdit(it.ID)
		m.input.SetValue(value)
		m.input.CursorEnd()
		m.focus = focusInput
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Delete):
		it, ok := m.rows.selected()
		if !ok {
			return m, nil
		}
		_ = m.ctrl.Delete(it.ID)
		m.input.SetValue("")
		return m, m.notes.drain()

	case key.Matches(msg, m.keys.Clear):
		_ = m.ctrl.Clear()
		m.input.SetValue("")
		return m, m.notes.drain()
	}

	var cmd tea.Cmd
	m.rows.list, cmd = m.rows.list.Update(msg)
	return m, cmd
}

func (m *Model) resize(w, h int) {
	listH := h - 12
	if listH < 3 {
		listH = 3
	}
	listW := w - 6
	if listW < 20 {
		listW = 20
	}
	m.rows.list.SetSize(listW, listH)
	m.input.Width = listW - 14
	m.help.Width = listW
}

func (m Model) View() string {
	t := ui.Current()
	n := len(m.rows.list.Items())

	var b strings.Builder
	b.WriteString(t.Title.Render("Todos") + "  " + t.Muted.Render(fmt.Sprintf("%d total", n)))
	b.WriteString("\n\n")
	b.WriteString(m.input.View() + "  " + t.Accent.Render("[ "+m.ctrl.Editor().SubmitLabel()+" ]"))
	b.WriteString("\n")
	b.WriteString(ui.Notice(m.notes.banner.Current()))
	b.WriteString("\n\n")

	if m.rows.visible {
		b.WriteString(m.rows.list.View())
	} else {
		b.WriteString(t.Muted.Render("no items"))
	}
	b.WriteString("\n\n")

	bindings := m.keys.inputHelp()
	if m.focus == focusList {
		bindings = m.keys.listHelp()
	}
	b.WriteString(m.help.ShortHelpView(bindings))

	return ui.Panel([]string{b.String()})
}
