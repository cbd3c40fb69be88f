package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/i474232898/garden-planner/internal/common"
	"github.com/i474232898/garden-planner/internal/garden"
)

// FileStore keeps the garden log as a JSON array in a single file. Every
// Append reads the file, appends, and rewrites it whole. The mutex serializes
// writers inside this process only; separate processes sharing the file can
// still lose updates.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store backed by path. The file is created on first Append.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// List returns the persisted log, or an empty log if the file does not exist.
func (s *FileStore) List(_ context.Context) ([]garden.CropEntry, error) {
	return s.read()
}

// Append validates entry, then appends it and rewrites the file. The store is
// left untouched when validation fails.
func (s *FileStore) Append(_ context.Context, entry garden.CropEntry) ([]garden.CropEntry, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	entry, err := entry.Compact()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return nil, err
	}
	entries = append(entries, entry)

	if err := s.write(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *FileStore) read() ([]garden.CropEntry, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []garden.CropEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading garden log: %w", err)
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return []garden.CropEntry{}, nil
	}

	var entries []garden.CropEntry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("%w: garden log %s: %v", common.ErrParse, s.path, err)
	}
	if entries == nil {
		entries = []garden.CropEntry{}
	}
	return entries, nil
}

// write replaces the file through a temp file in the same directory so a
// failed write never leaves a truncated log behind.
func (s *FileStore) write(entries []garden.CropEntry) error {
	b, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encoding garden log: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating garden log dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("writing garden log: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("writing garden log: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing garden log: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("writing garden log: %w", err)
	}
	return nil
}
