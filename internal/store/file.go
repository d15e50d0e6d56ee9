// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/shade/internal/util"
)

// =============================================================================
// FILE STORE
// =============================================================================

// FileStore persists preferences as a flat TOML key/value file.
// The whole file is rewritten atomically on every Set, so a crash can
// never leave a torn value behind.
type FileStore struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// NewFileStore opens (or lazily creates) the preferences file at path.
// A missing file is not an error; it simply means no preference has
// been stored yet.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:   path,
		values: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read preferences file: %w", err)
	}
	if err := toml.Unmarshal(data, &s.values); err != nil {
		// A corrupt preferences file behaves like an empty one; the
		// resolution rules treat unreadable values as absent.
		s.values = make(map[string]string)
	}
	return s, nil
}

// Get returns the raw value for key, and whether it was present.
func (s *FileStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

// Set writes value under key and flushes the file.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, had := s.values[key]
	s.values[key] = value

	if err := s.flushLocked(); err != nil {
		// Keep memory and disk in agreement on failure.
		if had {
			s.values[key] = old
		} else {
			delete(s.values, key)
		}
		return err
	}
	return nil
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) flushLocked() error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s.values); err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	return util.AtomicWriteFile(s.path, buf.Bytes(), 0600)
}
