package assembly

import (
	"github.com/framegrid/framegrid/pkg/catalog"
	"github.com/framegrid/framegrid/pkg/grid"
)

// OccupantKind distinguishes the two ways a part can claim a cell.
type OccupantKind int

const (
	// OccupantFull blocks the whole cell on every axis.
	OccupantFull OccupantKind = iota
	// OccupantBeam claims the cell along a single axis only.
	OccupantBeam
)

// Occupant is one part's claim on a single grid cell. Beam occupants carry
// the axis their run passes through the cell on; full occupants may carry an
// effective pull-through axis that lets an aligned beam coexist.
type Occupant struct {
	PartID      string
	Kind        OccupantKind
	Axis        grid.Axis  // beam occupants only
	PullThrough *grid.Axis // full occupants only, rotated into the instance
}

// occupantFor derives the occupancy claim a definition makes per cell at the
// given transform: supports claim their effective run axis, everything else
// claims the full cell with the definition's rotated pull-through axis, if
// any.
func occupantFor(partID string, def catalog.Definition, rot grid.Rotation, orient grid.Orientation) Occupant {
	if axis, ok := def.OccupiedAxis(rot, orient); ok {
		return Occupant{PartID: partID, Kind: OccupantBeam, Axis: axis}
	}
	occ := Occupant{PartID: partID, Kind: OccupantFull}
	if axis, ok := def.EffectivePullThrough(rot); ok {
		occ.PullThrough = &axis
	}
	return occ
}

// coexists is the single authority on cell sharing. It reports whether an
// incoming occupant may share a cell with an existing one:
//
//   - two beams coexist when their axes differ
//   - a full occupant coexists with a beam when the full occupant's
//     effective pull-through axis equals the beam's axis
//   - two full occupants never coexist
//
// The relation is symmetric in the full/beam case by construction.
func coexists(existing, incoming Occupant) bool {
	switch {
	case existing.Kind == OccupantBeam && incoming.Kind == OccupantBeam:
		return existing.Axis != incoming.Axis
	case existing.Kind == OccupantFull && incoming.Kind == OccupantBeam:
		return existing.PullThrough != nil && *existing.PullThrough == incoming.Axis
	case existing.Kind == OccupantBeam && incoming.Kind == OccupantFull:
		return incoming.PullThrough != nil && *incoming.PullThrough == existing.Axis
	default:
		return false
	}
}
