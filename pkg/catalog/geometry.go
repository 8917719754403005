package catalog

import "github.com/framegrid/framegrid/pkg/grid"

// The canonical transform order for placed geometry is orientation remap
// first, then rotation, then translation. Every function here follows it;
// the placement model and snap engine must not compose transforms on their
// own.

// TransformCell applies the canonical orient-then-rotate transform to a
// single authored cell, without translation.
func TransformCell(c grid.Vec, rot grid.Rotation, orient grid.Orientation) grid.Vec {
	return rot.Apply(orient.Apply(c))
}

// TransformDirection applies the canonical transform to a direction.
func TransformDirection(d grid.Direction, rot grid.Rotation, orient grid.Orientation) grid.Direction {
	return rot.Direction(orient.Direction(d))
}

// WorldCells returns the absolute cells the part occupies when placed at pos
// with the given rotation and orientation.
func (d Definition) WorldCells(pos grid.Vec, rot grid.Rotation, orient grid.Orientation) []grid.Vec {
	out := make([]grid.Vec, len(d.Cells))
	for i, c := range d.Cells {
		out[i] = pos.Add(TransformCell(c, rot, orient))
	}
	return out
}

// ArmDirection returns the world direction a connection point faces after
// the part's transform.
func (d Definition) ArmDirection(p ConnectionPoint, rot grid.Rotation, orient grid.Orientation) grid.Direction {
	return TransformDirection(p.Direction, rot, orient)
}

// ArmTarget returns the absolute cell a connection point's arm extends into:
// the transformed point offset stepped one cell along the transformed arm
// direction.
func (d Definition) ArmTarget(p ConnectionPoint, pos grid.Vec, rot grid.Rotation, orient grid.Orientation) grid.Vec {
	base := pos.Add(TransformCell(p.Offset, rot, orient))
	return base.Add(d.ArmDirection(p, rot, orient).Vec())
}

// GroundLift returns the minimum vertical shift that keeps the part's
// transformed geometry at or above the ground plane: max(0, -minY) over the
// part's cells and, for connectors, every connection point's one-cell arm
// projection. It is a placement suggestion only - it does not validate the
// lifted position.
func (d Definition) GroundLift(rot grid.Rotation, orient grid.Orientation) int {
	cells := make([]grid.Vec, 0, len(d.Cells)+len(d.Points))
	for _, c := range d.Cells {
		cells = append(cells, TransformCell(c, rot, orient))
	}
	if d.IsConnector() {
		for _, p := range d.Points {
			base := TransformCell(p.Offset, rot, orient)
			cells = append(cells, base.Add(d.ArmDirection(p, rot, orient).Vec()))
		}
	}
	return grid.Lift(cells)
}

// OccupiedAxis returns the grid axis a support's cell run lies along after
// the full transform, or false for parts that are not supports. This is the
// axis the occupancy model shares cells by.
func (d Definition) OccupiedAxis(rot grid.Rotation, orient grid.Orientation) (grid.Axis, bool) {
	if !d.IsSupport() {
		return 0, false
	}
	return rot.Axis(orient.Axis()), true
}

// EffectivePullThrough returns the part's pull-through axis rotated into the
// instance rotation, or false when the definition has none. Orientation does
// not participate: only connectors declare pull-through axes and connectors
// are never oriented.
func (d Definition) EffectivePullThrough(rot grid.Rotation) (grid.Axis, bool) {
	if d.PullThrough == nil {
		return 0, false
	}
	return rot.Axis(*d.PullThrough), true
}
