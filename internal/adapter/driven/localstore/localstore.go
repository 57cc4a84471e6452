// Package localstore persists the client's flat key-value state: tokens,
// theme preference and, in the offline deployment, the dashboard snapshot.
// It fills the role the browser's localStorage plays for the web client.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/finteach/finteach-cli/internal/domain/repository"
)

const storeFile = "localstore.json"

// FileStore is a LocalStoreRepository backed by a single JSON file.
// Every Set/Remove rewrites the file; reads are served from memory.
type FileStore struct {
	mu       sync.RWMutex
	filePath string
	values   map[string]string
}

// New opens (or creates) the store file under dataDir.
func New(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	s := &FileStore{
		filePath: filepath.Join(dataDir, storeFile),
		values:   map[string]string{},
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) load() error {
	data, err := os.ReadFile(s.filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read store file: %w", err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		return fmt.Errorf("parse store file: %w", err)
	}
	return nil
}

func (s *FileStore) persist() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	if err := os.WriteFile(s.filePath, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	return nil
}

// Get returns the stored value and whether it was present.
func (s *FileStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok
}

// Set stores a value and persists the file.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return s.persist()
}

// Remove deletes a key and persists the file. Removing an absent key is
// a no-op.
func (s *FileStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.values[key]; !ok {
		return nil
	}
	delete(s.values, key)
	return s.persist()
}

// MemoryStore is an in-memory LocalStoreRepository for tests and for the
// session-scoped values that must not survive the process.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

var (
	_ repository.LocalStoreRepository = (*FileStore)(nil)
	_ repository.LocalStoreRepository = (*MemoryStore)(nil)
)
