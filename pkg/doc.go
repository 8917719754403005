// Package pkg provides the core libraries for Framegrid modular frame composition.
//
// # Overview
//
// Framegrid models aluminum-style modular frame kits on a 3D integer grid:
// beams occupy runs of cells, connectors join them through sockets and pins,
// and assemblies track which part sits where. The pkg directory is organized
// into these areas:
//
//  1. [grid] - Integer vectors, 90°-step rotations, orientations
//  2. [catalog] - Part definitions (builtin set + TOML catalogs)
//  3. [assembly] - Occupancy model, placement rules, serialization
//  4. [snap] - Snap-point search and automatic connector rotation
//  5. [bom] - Bill-of-materials derivation
//  6. [io] - JSON and binary assembly files
//  7. [store] - Persistence backends (memory, file, Redis, MongoDB)
//  8. [render] - Attachment graph and Graphviz output
//
// # Architecture
//
// The typical data flow through Framegrid:
//
//	Part Catalog (builtin or TOML)
//	         ↓
//	    [assembly] package (placement + occupancy)
//	         ↓
//	    [snap] package (candidate positions + rotations)
//	         ↓
//	    [bom] / [render] packages (materials list, attachment graph)
//	         ↓
//	    JSON/binary files, SVG output
//
// # Quick Start
//
// Place a support and snap a connector onto it:
//
//	import (
//	    "github.com/framegrid/framegrid/pkg/assembly"
//	    "github.com/framegrid/framegrid/pkg/catalog"
//	    "github.com/framegrid/framegrid/pkg/grid"
//	    "github.com/framegrid/framegrid/pkg/snap"
//	)
//
//	// 1. Build an assembly against the builtin catalog
//	a := assembly.New(catalog.Builtin())
//	a.AddPart("support-4", grid.Vec{}, grid.Rotation{}, grid.OrientY, "silver")
//
//	// 2. Find where a connector can attach near the cursor
//	best, ok := snap.FindBestConnectorSnap(a, "connector-2w-l", grid.V(0, 4, 0), 6, nil, grid.Rotation{})
//	if ok {
//	    a.AddPart("connector-2w-l", best.Position, best.Rotation, grid.OrientY, "black")
//	}
//
// # Main Packages
//
// [grid] - Vec, Rotation (90° steps composed Z then Y then X), Orientation
// remaps, and ground lifting. Everything else builds on these types.
//
// [catalog] - Definition describes a part's cells, sockets, pins, and
// pull-through behavior. [catalog.Builtin] returns the standard kit;
// [catalog.LoadFile] reads extra parts from TOML.
//
// [assembly] - The occupancy model. Cells are shared per axis: two beams may
// cross through one cell when they run along different axes, and pull-through
// connectors coexist with the beam they clamp. Ground rules keep every part
// and every connector arm at or above the floor plane.
//
// [snap] - Candidate generation for interactive placement. Beam snaps search
// socket positions; connector snaps additionally compute the rotation (out of
// 64) that covers the most nearby beams.
//
// [bom] - Flattens an assembly into purchasable line items, with fastener
// counts padded ten percent and rounded up.
//
// [io] - Assembly files in indented JSON (.json) and msgpack binary (.fgb),
// with format detection and legacy rotation upgrades.
//
// [store] - A small Store interface with memory, file, Redis, and MongoDB
// backends, plus an instrumentation wrapper feeding [observability] hooks.
//
// [render] - Builds the connector attachment graph and renders it to DOT or
// SVG via Graphviz.
//
// [errors] - Coded errors shared across the CLI and HTTP API.
//
// [observability] - Optional hook points for placement, snap, and store
// events.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/assembly/...   # Specific package
//
// [grid]: https://pkg.go.dev/github.com/framegrid/framegrid/pkg/grid
// [catalog]: https://pkg.go.dev/github.com/framegrid/framegrid/pkg/catalog
// [assembly]: https://pkg.go.dev/github.com/framegrid/framegrid/pkg/assembly
// [snap]: https://pkg.go.dev/github.com/framegrid/framegrid/pkg/snap
// [bom]: https://pkg.go.dev/github.com/framegrid/framegrid/pkg/bom
// [io]: https://pkg.go.dev/github.com/framegrid/framegrid/pkg/io
// [store]: https://pkg.go.dev/github.com/framegrid/framegrid/pkg/store
// [render]: https://pkg.go.dev/github.com/framegrid/framegrid/pkg/render
// [errors]: https://pkg.go.dev/github.com/framegrid/framegrid/pkg/errors
// [observability]: https://pkg.go.dev/github.com/framegrid/framegrid/pkg/observability
// [catalog.Builtin]: https://pkg.go.dev/github.com/framegrid/framegrid/pkg/catalog#Builtin
// [catalog.LoadFile]: https://pkg.go.dev/github.com/framegrid/framegrid/pkg/catalog#LoadFile
package pkg
