// Package store provides persistence for named assemblies.
//
// This package defines the Store interface with implementations for
// different backends:
//   - memory: In-memory storage for development/testing
//   - file: File-based storage for CLI usage
//   - redis: Redis-backed storage for multi-instance deployments
//   - mongo: MongoDB-backed storage for durable server deployments
//
// # Architecture
//
// A store keys assemblies by name and holds the portable document form
// ([assembly.File]), not live assembly state. Callers serialize before
// saving and replay after loading, so every backend sees the same bytes
// regardless of catalog contents.
//
// # Usage
//
// Create a store:
//
//	// Development
//	st := store.NewMemory()
//
//	// CLI
//	st, err := store.NewFile("")  // Uses ~/.config/framegrid/assemblies/
//
//	// Production
//	st, err := store.NewRedis(ctx, store.RedisConfig{Addr: "localhost:6379"})
//
// Save and load:
//
//	f := asm.Serialize()
//	if err := st.Save(ctx, &f); err != nil {
//	    return err
//	}
//
//	f, err := st.Load(ctx, "workbench")
//	if errors.Is(err, store.ErrNotFound) {
//	    // No assembly with that name
//	}
//
// Wrap any backend with [Instrument] to emit observability events.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/framegrid/framegrid/pkg/assembly"
	fgerrors "github.com/framegrid/framegrid/pkg/errors"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when no assembly exists under the given name.
	ErrNotFound = errors.New("assembly not found")
)

// Store is the interface for assembly persistence backends.
type Store interface {
	// Save stores an assembly file, keyed by its name.
	// Saving under an existing name overwrites the previous document.
	Save(ctx context.Context, f *assembly.File) error

	// Load retrieves an assembly file by name.
	// Returns ErrNotFound if no assembly exists under the name.
	Load(ctx context.Context, name string) (*assembly.File, error)

	// Delete removes an assembly by name. Deleting a missing name is not
	// an error.
	Delete(ctx context.Context, name string) error

	// List returns the names of all stored assemblies in sorted order.
	List(ctx context.Context) ([]string, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// encode serializes an assembly file to the canonical stored form.
func encode(f *assembly.File) ([]byte, error) {
	if err := fgerrors.ValidateAssemblyName(f.Name); err != nil {
		return nil, err
	}
	data, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("marshal assembly: %w", err)
	}
	return data, nil
}

// decode parses the canonical stored form back into an assembly file.
func decode(data []byte) (*assembly.File, error) {
	var f assembly.File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse assembly: %w", err)
	}
	return &f, nil
}
