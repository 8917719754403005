// Package catalog defines the part definitions the framegrid engine places:
// beams ("supports"), multi-arm connectors, lock pins and user-imported
// custom parts.
//
// # Definitions
//
// A [Definition] is an immutable, authored description of a part: the grid
// cells it occupies when unrotated and unoriented, its directional
// connection points, and, for connectors that thread onto a beam instead of
// capping it, an optional pull-through axis. Categories form a closed set
// ([CategorySupport], [CategoryConnector], [CategoryLockPin],
// [CategoryCustom]); there is no runtime property probing - a definition is
// resolved once at lookup time into a value the engine treats as read-only.
//
// # Catalogs
//
// The [Catalog] interface is a pure lookup; the engine never mutates or
// caches catalog entries. [Builtin] returns the standard part set, and
// [LoadFile] merges user-authored TOML part files over it:
//
//	[[part]]
//	id = "bracket-90"
//	name = "90° Bracket"
//	cells = [[0, 0, 0]]
//
//	[[part.point]]
//	offset = [0, 0, 0]
//	direction = "+x"
//	role = "female"
//
// # Geometry
//
// The package also carries the definition-level geometry helpers the
// placement model and snap engine share: [Definition.WorldCells] (the
// oriented, rotated, translated absolute cells), [Definition.ArmDirection]
// and [Definition.ArmTarget] (where a connection point points), and
// [Definition.GroundLift] (the vertical shift that keeps all geometry at or
// above the ground plane).
package catalog
