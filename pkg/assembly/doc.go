// Package assembly implements the occupancy and placement model: the sole
// owner of placed parts and the per-cell occupancy index.
//
// # Overview
//
// An [Assembly] stores [PlacedPart] instances and an index of [Occupant]
// entries per grid cell. Placement is validated before any state changes:
// [Assembly.CanPlace] and [Assembly.AddPart] run the same checks, so a part
// that was accepted is guaranteed to satisfy every occupancy invariant.
// Parts are immutable while stored - moving a part is remove plus re-add,
// which issues a fresh identity.
//
// # Occupancy
//
// Cells are shared per axis: a beam occupies its cells along exactly one
// axis, so two beams of different axes may cross through the same cell.
// Everything else occupies cells fully. A full occupant excludes all axes at
// its cell, except that a connector with a pull-through axis coexists with a
// beam running along that axis - the beam threads through the connector. The
// coexistence decision lives in a single pure function so the placement
// validator and the read-only queries can never diverge.
//
// # Ground plane
//
// No occupied cell may have a negative Y coordinate, and a connector's arms
// must not project below Y zero even when the connector's own cell sits at
// ground level.
//
// # Concurrency
//
// Assembly is synchronous and single-threaded by contract: every operation
// runs to completion before returning, and subscriber notification happens
// after the mutation is fully applied, so a listener always observes a
// coherent snapshot. Assembly is not safe for concurrent use without
// external synchronization.
package assembly
