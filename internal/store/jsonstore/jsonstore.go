package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// JSON-backed key-value storage. Single file, human-readable, portable.
// Each write rewrites the whole file; only one process should write it.

const DataFileName = "todos.json"

// ErrCorrupt marks a data file that exists but is not a JSON object of
// strings. Reads fail with it; the next write moves the file aside to
// Path()+".corrupt" and starts a fresh one.
var ErrCorrupt = errors.New("corrupt data file")

// Store keeps every key in one JSON object on disk.
type Store struct {
	mu   sync.Mutex
	path string
}

// New returns a store backed by the file at path. The file is created on
// first write.
func New(path string) *Store {
	return &Store{path: path}
}

// InDir returns a store backed by DataFileName inside dir.
func InDir(dir string) *Store {
	return New(filepath.Join(dir, DataFileName))
}

func (s *Store) Path() string { return s.path }

func (s *Store) read() (map[string]string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	data := map[string]string{}
	if len(b) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("%w: json unmarshal: %w", ErrCorrupt, err)
	}
	return data, nil
}

// readForWrite is read, except that a corrupt file is moved aside and
// replaced by an empty object.
func (s *Store) readForWrite() (map[string]string, error) {
	data, err := s.read()
	if !errors.Is(err, ErrCorrupt) {
		return data, err
	}
	if err := os.Rename(s.path, s.path+".corrupt"); err != nil {
		return nil, fmt.Errorf("move corrupt file aside: %w", err)
	}
	return map[string]string{}, nil
}

func (s *Store) write(data map[string]string) error {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func (s *Store) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.read()
	if err != nil {
		return "", false, err
	}
	v, ok := data[key]
	return v, ok, nil
}

func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.readForWrite()
	if err != nil {
		return err
	}
	data[key] = value
	return s.write(data)
}

func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.readForWrite()
	if err != nil {
		return err
	}
	if _, ok := data[key]; !ok {
		return nil
	}
	delete(data, key)
	return s.write(data)
}

func (s *Store) Close() error { return nil }
