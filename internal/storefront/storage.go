package storefront

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Storage keys for the persisted client state.
const (
	StorageKeyCart        = "cart"
	StorageKeyPreferences = "user_preferences"
)

// Storage is scoped durable client storage. Values are JSON-encoded under a
// fixed key. Get reports false for missing or corrupt entries instead of
// returning an error; callers treat both as "no saved state".
type Storage interface {
	Get(key string, v any) bool
	Set(key string, v any) error
	Remove(key string)
}

// MemoryStorage is an in-process Storage, used in tests and as a fallback
// when no durable location is available.
type MemoryStorage struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{entries: make(map[string][]byte)}
}

func (s *MemoryStorage) Get(key string, v any) bool {
	s.mu.Lock()
	data, ok := s.entries[key]
	s.mu.Unlock()
	if !ok {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

func (s *MemoryStorage) Set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.entries[key] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryStorage) Remove(key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// FileStorage persists each key as a JSON file in one directory.
type FileStorage struct {
	dir string
}

func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStorage{dir: dir}, nil
}

func (s *FileStorage) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStorage) Get(key string, v any) bool {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

func (s *FileStorage) Set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(key), data, 0o644)
}

func (s *FileStorage) Remove(key string) {
	os.Remove(s.path(key))
}
