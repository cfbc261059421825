package todo

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/notify"
)

// Fixed status messages.
const (
	MsgAdded   = "item added to the list"
	MsgChanged = "value changed"
	MsgEmpty   = "please enter value"
	MsgRemoved = "item removed"
	MsgCleared = "empty list"
)

// ErrEmptyValue is returned by Submit when the input is the empty string.
var ErrEmptyValue = errors.New(MsgEmpty)

// Store is the persisted list.
type Store interface {
	Load() []model.Record
	Append(r model.Record) error
	RemoveByID(id string) error
	UpdateValueByID(id, value string) error
	Clear() error
}

// View renders rows. Rows are appended in creation order and edited in place.
type View interface {
	RenderRow(id, value string)
	RemoveRow(id string)
	ClearRows()
	RenderEditedRow(id, value string)
	SetContainerVisible(visible bool)
}

// Notifier shows a transient status message.
type Notifier interface {
	Notify(text string, sev notify.Severity)
}

// Controller applies form actions to the view and the store, then reports
// the outcome through the notifier. Every method holds one lock for the
// whole load-modify-persist sequence.
type Controller struct {
	mu       sync.Mutex
	store    Store
	view     View
	notifier Notifier
	editor   Editor
	records  []model.Record // what the view currently shows
	now      func() time.Time
	logger   *log.Logger
}

type Option func(*Controller)

// WithClock sets the time source used for new record ids.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func NewController(st Store, v View, n Notifier, opts ...Option) *Controller {
	c := &Controller{
		store:    st,
		view:     v,
		notifier: n,
		records:  []model.Record{},
		now:      time.Now,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Setup reads the store once and replays it into the view.
func (c *Controller) Setup() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.render(c.store.Load())
	c.logger.Debug("setup", "records", len(c.records))
}

// Refresh brings the view in line with the store without notifying.
func (c *Controller) Refresh() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.render(c.store.Load())
}

// Submit creates a record in Create mode or updates the edited record in
// Edit mode. Only the exact empty string is rejected.
func (c *Controller) Submit(input string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if input == "" {
		c.notifier.Notify(MsgEmpty, notify.Danger)
		return ErrEmptyValue
	}

	if c.editor.mode == ModeEdit {
		id := c.editor.id
		c.render(model.Apply(c.records, model.Edit(id, input)))
		err := c.store.UpdateValueByID(id, input)
		c.notifier.Notify(MsgChanged, notify.Success)
		c.editor.reset()
		return c.persisted("update", err)
	}

	r := model.Record{ID: model.NewID(c.now()), Value: input}
	c.render(model.Apply(c.records, model.Add(r)))
	err := c.store.Append(r)
	c.notifier.Notify(MsgAdded, notify.Success)
	c.editor.reset()
	return c.persisted("append", err)
}

// BeginEdit switches to Edit mode for id and loads its current value into
// the editor input. It reports whether the id is on display; an unknown id
// still enters Edit mode, and submitting it changes nothing.
func (c *Controller) BeginEdit(id string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := model.Index(c.records, id)
	value := ""
	if i >= 0 {
		value = c.records[i].Value
	}
	c.editor.beginEdit(id, value)
	return value, i >= 0
}

// Delete removes the record with id and returns the editor to Create.
func (c *Controller) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.render(model.Apply(c.records, model.Remove(id)))
	c.notifier.Notify(MsgRemoved, notify.Danger)
	c.editor.reset()
	return c.persisted("remove", c.store.RemoveByID(id))
}

// Clear removes every record and returns the editor to Create.
func (c *Controller) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.view.ClearRows()
	c.records = []model.Record{}
	c.view.SetContainerVisible(false)
	c.notifier.Notify(MsgCleared, notify.Danger)
	c.editor.reset()
	return c.persisted("clear", c.store.Clear())
}

// Reset returns the editor to Create mode with an empty input.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editor.reset()
}

// Editor returns a snapshot of the editor state.
func (c *Controller) Editor() Editor {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editor
}

// Records returns a copy of the records on display.
func (c *Controller) Records() []model.Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Record, len(c.records))
	copy(out, c.records)
	return out
}

// render moves the view from c.records to next and recomputes container
// visibility.
func (c *Controller) render(next []model.Record) {
	for _, ch := range model.Diff(c.records, next) {
		switch ch.Op {
		case model.OpAdd:
			c.view.RenderRow(ch.Record.ID, ch.Record.Value)
		case model.OpEdit:
			c.view.RenderEditedRow(ch.Record.ID, ch.Record.Value)
		case model.OpRemove:
			c.view.RemoveRow(ch.Record.ID)
		case model.OpClear:
			c.view.ClearRows()
		}
	}
	c.records = next
	c.view.SetContainerVisible(len(next) > 0)
}

// persisted logs a failed store write. The view is not rolled back.
func (c *Controller) persisted(op string, err error) error {
	if err != nil {
		c.logger.Error("store write failed", "op", op, "err", err)
		return err
	}
	c.logger.Debug("stored", "op", op, "records", len(c.records))
	return nil
}
