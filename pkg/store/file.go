package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/framegrid/framegrid/pkg/assembly"
)

// File is a file-based assembly store for CLI usage.
// Assemblies are stored as JSON files in a config directory.
type File struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFile creates a file-based assembly store.
// If baseDir is empty, defaults to ~/.config/framegrid/assemblies/
func NewFile(baseDir string) (*File, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "framegrid", "assemblies")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create assembly dir: %w", err)
	}
	return &File{baseDir: baseDir}, nil
}

func (s *File) assemblyPath(name string) string {
	return filepath.Join(s.baseDir, name+".json")
}

// Save stores an assembly file, keyed by its name.
func (s *File) Save(ctx context.Context, f *assembly.File) error {
	data, err := encode(f)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(s.assemblyPath(f.Name), data, 0600); err != nil {
		return fmt.Errorf("write assembly file: %w", err)
	}
	return nil
}

// Load retrieves an assembly file by name.
func (s *File) Load(ctx context.Context, name string) (*assembly.File, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.assemblyPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read assembly file: %w", err)
	}
	return decode(data)
}

// Delete removes an assembly by name.
func (s *File) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.assemblyPath(name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove assembly file: %w", err)
	}
	return nil
}

// List returns the names of all stored assemblies in sorted order.
func (s *File) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("read assembly dir: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}

// Close is a no-op for the file store.
func (s *File) Close(ctx context.Context) error {
	return nil
}
