// Package grid provides the discrete geometry primitives for the framegrid
// placement engine: integer grid positions, axes and signed directions,
// 90°-step rotations, and beam orientation remapping.
//
// # Overview
//
// Framegrid composes physical frames from beams and connectors on a 3D
// integer grid. Every part's geometry is authored as a set of relative grid
// cells plus directional connection points; placing a part applies an
// orientation remap and a rotation to that authored geometry and translates
// it to an absolute position. This package owns those transforms and nothing
// else - it has no dependencies and performs no I/O.
//
// # Rotations
//
// A [Rotation] is a triple of independent 90°-step angles, one per axis,
// composed in a fixed intrinsic order: the Z rotation is applied first, then
// Y, then X. The composition is not commutative; applying the same triple in
// another order yields different results for skew combinations, so all
// callers must go through [Rotation.Apply] rather than composing steps
// themselves.
//
// Each 90° step follows the right-hand rule:
//
//	about X: (x, y, z) -> (x, -z,  y)
//	about Y: (x, y, z) -> (z,  y, -x)
//	about Z: (x, y, z) -> (-y, x,  z)
//
// # Orientation
//
// Beams are authored along the Y axis. An [Orientation] remaps the authored
// shape onto another principal axis: [OrientY] is the identity, [OrientX]
// swaps the x and y components, [OrientZ] swaps y and z. Orientation is a
// distinct operation from rotation and is applied first - orientation
// redefines the authored shape, rotation then spins the placed part. The
// placement model, snap engine and BOM deriver all rely on this order being
// canonical.
//
// # Directions
//
// A [Direction] is one of the six signed axis directions. Rotating a
// direction converts it to a unit vector, applies the cell rotation, and
// converts back; 90°-step rotations of axis-aligned unit vectors always land
// exactly on another axis-aligned unit vector, so the conversion is exact.
package grid
