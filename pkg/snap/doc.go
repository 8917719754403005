// Package snap proposes valid attachment positions and rotations between
// connectors and beams.
//
// # Overview
//
// All queries are pure read-only functions over an [assembly.Assembly]
// snapshot plus a target definition and a cursor grid position; nothing here
// mutates state. The two directions of the query are symmetric:
//
//   - [FindSnapPoints]: given a beam to place, find the open sockets of
//     placed connectors and the beam origin that plugs into each.
//   - [FindConnectorSnapPoints]: given a connector to place, find the free
//     cells just beyond the endpoints of placed beams - and, for connectors
//     with a pull-through axis, the interior cells of aligned beams the
//     connector can thread onto.
//
// # Ranking
//
// Candidates carry a sort distance of
//
//	min(xzCursorDistance, rayToPointDistance) + 0.01 × full3dDistance
//
// The optional pick [Ray] lets an elevated target be discovered even when
// the ground-plane cursor projection is far away; the small 3D term only
// breaks ties. Candidates whose filter distance (the term before the
// tie-breaker) exceeds the query's maximum are dropped, and results are
// sorted ascending.
//
// # Auto-rotation
//
// [ComputeAutoRotation] exhaustively evaluates all 64 combinations of
// per-axis quarter turns, maximizing how many needed directions the
// connector's female arms cover and, on ties, staying circularly closest to
// the fallback rotation. The fallback itself is among the candidates, so the
// result never covers fewer directions than the fallback.
// [FindBestConnectorSnap] feeds it the needs of every beam converging on the
// winning junction cell, producing one rotation that satisfies as many of
// them as possible.
package snap
