package store

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todolist/internal/model"
)

// DefaultKey is the KV key the list is persisted under.
const DefaultKey = "list"

// List is the persisted todo list. Every mutation reads the whole
// collection, applies one action and writes the whole collection back.
// The mutex only covers this process; a second process writing the same
// KV can still lose updates.
type List struct {
	mu     sync.Mutex
	kv     KV
	key    string
	logger *log.Logger
}

// Option configures a List.
type Option func(*List)

// WithKey overrides the KV key.
func WithKey(key string) Option {
	return func(l *List) {
		if key != "" {
			l.key = key
		}
	}
}

// WithLogger sets the logger used to report unreadable data.
func WithLogger(logger *log.Logger) Option {
	return func(l *List) {
		if logger != nil {
			l.logger = logger
		}
	}
}

func NewList(kv KV, opts ...Option) *List {
	l := &List{
		kv:     kv,
		key:    DefaultKey,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Key returns the KV key in use.
func (l *List) Key() string { return l.key }

// Load returns the persisted records. Missing, unreadable or malformed
// data all yield an empty list.
func (l *List) Load() []model.Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load()
}

func (l *List) load() []model.Record {
	raw, ok, err := l.kv.Get(l.key)
	if err != nil {
		l.logger.Warn("read list", "key", l.key, "err", err)
		return []model.Record{}
	}
	if !ok {
		return []model.Record{}
	}
	records, err := Decode(raw)
	if err != nil {
		l.logger.Warn("discarding unreadable list", "key", l.key, "err", err)
		return []model.Record{}
	}
	return records
}

// Save overwrites the persisted list.
func (l *List) Save(records []model.Record) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.save(records)
}

func (l *List) save(records []model.Record) error {
	data, err := Encode(records)
	if err != nil {
		return err
	}
	if err := l.kv.Set(l.key, data); err != nil {
		return fmt.Errorf("write list: %w", err)
	}
	return nil
}

func (l *List) apply(a model.Action) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.save(model.Apply(l.load(), a))
}

// Append adds r to the end of the list.
func (l *List) Append(r model.Record) error {
	return l.apply(model.Add(r))
}

// RemoveByID drops every record with the given id. Unknown ids are a no-op.
func (l *List) RemoveByID(id string) error {
	return l.apply(model.Remove(id))
}

// UpdateValueByID replaces the value of the matching record, keeping its id.
// Unknown ids are a no-op.
func (l *List) UpdateValueByID(id, value string) error {
	return l.apply(model.Edit(id, value))
}

// Clear deletes the persisted list entirely.
func (l *List) Clear() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.kv.Delete(l.key); err != nil {
		return fmt.Errorf("delete list: %w", err)
	}
	return nil
}
