// Package store owns the on-disk knit metadata document.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/knitlab/knitgraph/knit"
)

// Store reads and replaces the single JSON document the service queries.
// Reads decode the document fresh on every call so queries always see the
// latest upload; nothing is cached between calls. Writes validate first and
// then swap the file in atomically.
type Store struct {
	mu   sync.RWMutex
	path string
}

// New creates a store backed by the document at path. The file does not
// have to exist yet; Load reports an error until something is uploaded.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the document location.
func (s *Store) Path() string {
	return s.path
}

// Load reads and decodes the current document.
func (s *Store) Load() (knit.Classes, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read knit metadata: %w", err)
	}
	return knit.DecodeClasses(data)
}

// Replace validates an uploaded document and swaps it in atomically. A
// document that does not decode is rejected before anything touches disk,
// so a bad upload never clobbers a good one.
func (s *Store) Replace(data []byte) error {
	if _, err := knit.DecodeClasses(data); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".knit-upload-*")
	if err != nil {
		return fmt.Errorf("stage upload: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close upload: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace knit metadata: %w", err)
	}
	return nil
}
