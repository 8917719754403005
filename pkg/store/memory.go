package store

import (
	"context"
	"sort"
	"sync"

	"github.com/framegrid/framegrid/pkg/assembly"
)

// Memory is an in-memory assembly store for development and testing.
// It is safe for concurrent use.
type Memory struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{docs: make(map[string][]byte)}
}

// Save stores an assembly file, keyed by its name.
func (s *Memory) Save(ctx context.Context, f *assembly.File) error {
	data, err := encode(f)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[f.Name] = data
	return nil
}

// Load retrieves an assembly file by name.
func (s *Memory) Load(ctx context.Context, name string) (*assembly.File, error) {
	s.mu.RLock()
	data, ok := s.docs[name]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	return decode(data)
}

// Delete removes an assembly by name.
func (s *Memory) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, name)
	return nil
}

// List returns the names of all stored assemblies in sorted order.
func (s *Memory) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.docs))
	for name := range s.docs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Close is a no-op for the in-memory store.
func (s *Memory) Close(ctx context.Context) error {
	return nil
}
