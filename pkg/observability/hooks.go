// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about part placement, snap queries, and store operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPlacementHooks(&myPlacementHooks{})
//	    observability.SetStoreHooks(&myStoreHooks{})
//	    // ... run application
//	}
//
// Hosting layers call hooks to emit events:
//
//	observability.Placement().OnPlace(ctx, partType, partID)
//	observability.Snap().OnSnapQuery(ctx, "socket", candidates, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Placement Hooks
// =============================================================================

// PlacementHooks receives events from assembly mutations.
type PlacementHooks interface {
	// OnPlace records a successful part placement.
	OnPlace(ctx context.Context, partType, partID string)

	// OnPlaceRejected records a placement rejected by validation.
	OnPlaceRejected(ctx context.Context, partType string, err error)

	// OnRemove records a part removal.
	OnRemove(ctx context.Context, partType, partID string)

	// OnClear records an assembly reset.
	OnClear(ctx context.Context, partCount int)
}

// =============================================================================
// Snap Hooks
// =============================================================================

// SnapHooks receives events from snap queries.
type SnapHooks interface {
	// OnSnapQuery records a candidate search. kind is "socket" or "connector".
	OnSnapQuery(ctx context.Context, kind string, candidates int, duration time.Duration)

	// OnAutoRotation records an automatic rotation search and the number
	// of open sockets the winning rotation covers.
	OnAutoRotation(ctx context.Context, needed, covered int, duration time.Duration)
}

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from persistence operations.
type StoreHooks interface {
	// OnSave records an assembly write. parts is the part count of the
	// saved document.
	OnSave(ctx context.Context, backend, name string, parts int, duration time.Duration, err error)

	// OnLoad records an assembly read.
	OnLoad(ctx context.Context, backend, name string, duration time.Duration, err error)

	// OnDelete records an assembly deletion.
	OnDelete(ctx context.Context, backend, name string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPlacementHooks is a no-op implementation of PlacementHooks.
type NoopPlacementHooks struct{}

func (NoopPlacementHooks) OnPlace(context.Context, string, string)        {}
func (NoopPlacementHooks) OnPlaceRejected(context.Context, string, error) {}
func (NoopPlacementHooks) OnRemove(context.Context, string, string)       {}
func (NoopPlacementHooks) OnClear(context.Context, int)                   {}

// NoopSnapHooks is a no-op implementation of SnapHooks.
type NoopSnapHooks struct{}

func (NoopSnapHooks) OnSnapQuery(context.Context, string, int, time.Duration) {}
func (NoopSnapHooks) OnAutoRotation(context.Context, int, int, time.Duration) {}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnSave(context.Context, string, string, int, time.Duration, error) {}
func (NoopStoreHooks) OnLoad(context.Context, string, string, time.Duration, error)      {}
func (NoopStoreHooks) OnDelete(context.Context, string, string, error)                   {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	placementHooks PlacementHooks = NoopPlacementHooks{}
	snapHooks      SnapHooks      = NoopSnapHooks{}
	storeHooks     StoreHooks     = NoopStoreHooks{}
	hooksMu        sync.RWMutex
)

// SetPlacementHooks registers custom placement hooks.
// This should be called once at application startup before any placements.
func SetPlacementHooks(h PlacementHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		placementHooks = h
	}
}

// SetSnapHooks registers custom snap hooks.
// This should be called once at application startup before any snap queries.
func SetSnapHooks(h SnapHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		snapHooks = h
	}
}

// SetStoreHooks registers custom store hooks.
// This should be called once at application startup before any store operations.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// Placement returns the registered placement hooks.
func Placement() PlacementHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return placementHooks
}

// Snap returns the registered snap hooks.
func Snap() SnapHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return snapHooks
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	placementHooks = NoopPlacementHooks{}
	snapHooks = NoopSnapHooks{}
	storeHooks = NoopStoreHooks{}
}
