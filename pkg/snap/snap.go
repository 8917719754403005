package snap

import (
	"slices"

	"github.com/framegrid/framegrid/pkg/assembly"
	"github.com/framegrid/framegrid/pkg/catalog"
	"github.com/framegrid/framegrid/pkg/grid"
)

// Point is one proposed beam attachment: a placed connector's open socket
// and the origin cell and orientation a beam of the queried definition
// needs to plug into it.
type Point struct {
	// ConnectorID is the placed connector instance offering the socket.
	ConnectorID string
	// SocketDirection is the socket's world direction after the connector's
	// transform.
	SocketDirection grid.Direction
	// EndCell is the cell adjacent to the socket that the beam's end
	// occupies.
	EndCell grid.Vec
	// Position is the beam's origin cell. For outward-negative sockets the
	// origin is stepped back (length-1) cells so the beam's far end lands on
	// EndCell.
	Position grid.Vec
	// Orientation is the beam orientation along the socket's axis.
	Orientation grid.Orientation
	// Distance is the candidate's sort distance.
	Distance float64
}

// FindSnapPoints returns attachment candidates for placing a beam of the
// given definition near the cursor: for every placed connector, every open
// female socket whose target cell is free yields one candidate. Candidates
// whose filter distance exceeds maxDistance are dropped; the result is
// sorted ascending by sort distance. The ray is optional.
func FindSnapPoints(a *assembly.Assembly, beamDefID string, cursor grid.Vec, maxDistance float64, ray *Ray) []Point {
	cat := a.Catalog()
	beam, ok := cat.Definition(beamDefID)
	if !ok || !beam.IsSupport() {
		return nil
	}
	length := beam.Length()

	var out []Point
	for _, part := range a.Parts() {
		def, ok := cat.Definition(part.DefinitionID)
		if !ok || !def.IsConnector() {
			continue
		}
		for _, socket := range def.FemalePoints() {
			target := def.ArmTarget(socket, part.Position, part.Rotation, part.Orientation)
			if a.IsOccupied(target) {
				continue // socket is not open
			}

			dir := def.ArmDirection(socket, part.Rotation, part.Orientation)
			origin := target
			if dir.Sign() < 0 {
				origin = target.Add(dir.Vec().Scale(length - 1))
			}

			filter, sort := rankDistance(target, cursor, ray)
			if filter > maxDistance {
				continue
			}
			out = append(out, Point{
				ConnectorID:     part.ID,
				SocketDirection: dir,
				EndCell:         target,
				Position:        origin,
				Orientation:     grid.OrientationFor(dir.Axis()),
				Distance:        sort,
			})
		}
	}

	slices.SortStableFunc(out, func(a, b Point) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		default:
			return 0
		}
	})
	return out
}

// FindBestSnap returns the lowest-distance candidate from [FindSnapPoints],
// or false when there is none.
func FindBestSnap(a *assembly.Assembly, beamDefID string, cursor grid.Vec, maxDistance float64, ray *Ray) (Point, bool) {
	points := FindSnapPoints(a, beamDefID, cursor, maxDistance, ray)
	if len(points) == 0 {
		return Point{}, false
	}
	return points[0], true
}

// ConnectorPoint is one proposed connector attachment: a free cell at a
// placed beam's end, or an interior cell of an aligned beam for connectors
// that thread through.
type ConnectorPoint struct {
	// BeamID is the placed beam instance the candidate attaches to.
	BeamID string
	// Position is the cell the connector would occupy.
	Position grid.Vec
	// NeededDirection is the world direction a connector arm must point to
	// reach the beam (the opposite of the beam end's outward direction).
	NeededDirection grid.Direction
	// MidSpan marks pull-through candidates on a beam's interior cells.
	MidSpan bool
	// Distance is the candidate's sort distance.
	Distance float64
}

// FindConnectorSnapPoints returns attachment candidates for placing a
// connector of the given definition near the cursor. Every placed beam
// offers its two end cells stepped one outward (rejected below ground or
// when occupied); a connector with a pull-through axis additionally offers
// every interior cell of beams whose run axis matches the pull-through axis
// rotated into rot, the connector's prospective rotation.
func FindConnectorSnapPoints(a *assembly.Assembly, connectorDefID string, cursor grid.Vec, maxDistance float64, ray *Ray, rot grid.Rotation) []ConnectorPoint {
	cat := a.Catalog()
	conn, ok := cat.Definition(connectorDefID)
	if !ok || !conn.IsConnector() {
		return nil
	}
	pullAxis, hasPull := conn.EffectivePullThrough(rot)

	var out []ConnectorPoint
	add := func(p ConnectorPoint) {
		filter, sort := rankDistance(p.Position, cursor, ray)
		if filter > maxDistance {
			return
		}
		p.Distance = sort
		out = append(out, p)
	}

	for _, part := range a.Parts() {
		def, ok := cat.Definition(part.DefinitionID)
		if !ok || !def.IsSupport() {
			continue
		}
		cells := def.WorldCells(part.Position, part.Rotation, part.Orientation)
		if len(cells) < 2 {
			continue
		}

		// Physical endpoints and their outward directions: the vector from
		// the penultimate to the ultimate cell, negated at the other end.
		last := cells[len(cells)-1]
		outward, ok := grid.DirectionFromVec(last.Sub(cells[len(cells)-2]))
		if !ok {
			continue
		}
		ends := []struct {
			cell grid.Vec
			dir  grid.Direction
		}{
			{last, outward},
			{cells[0], outward.Opposite()},
		}
		for _, end := range ends {
			pos := end.cell.Add(end.dir.Vec())
			if pos.Y < 0 || a.IsOccupied(pos) {
				continue
			}
			add(ConnectorPoint{
				BeamID:          part.ID,
				Position:        pos,
				NeededDirection: end.dir.Opposite(),
			})
		}

		// Mid-span candidates: the connector threads onto an aligned beam.
		if hasPull {
			if beamAxis, ok := def.OccupiedAxis(part.Rotation, part.Orientation); ok && beamAxis == pullAxis {
				for _, cell := range cells[1 : len(cells)-1] {
					if occupiedByOther(a, cell, part.ID) {
						continue
					}
					add(ConnectorPoint{
						BeamID:          part.ID,
						Position:        cell,
						NeededDirection: pullAxis.Positive(),
						MidSpan:         true,
					})
				}
			}
		}
	}

	slices.SortStableFunc(out, func(a, b ConnectorPoint) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		default:
			return 0
		}
	})
	return out
}

// occupiedByOther reports whether any part besides ignoreID claims the cell.
func occupiedByOther(a *assembly.Assembly, cell grid.Vec, ignoreID string) bool {
	for _, occ := range a.OccupantsAt(cell) {
		if occ.PartID != ignoreID {
			return true
		}
	}
	return false
}

// ConnectorSnap is the composed result of [FindBestConnectorSnap]: the
// winning position, every convergent needed direction, and the rotation
// that covers as many of them as possible.
type ConnectorSnap struct {
	Position grid.Vec
	Needed   []grid.Direction
	Rotation grid.Rotation
	MidSpan  bool
}

// FindBestConnectorSnap picks the lowest-distance connector candidate,
// gathers every other candidate resolving to the same cell (multiple beams
// converging on one junction), and derives the auto-rotation satisfying as
// many of the convergent beams as possible. Returns false when no candidate
// is in range.
func FindBestConnectorSnap(a *assembly.Assembly, connectorDefID string, cursor grid.Vec, maxDistance float64, ray *Ray, fallback grid.Rotation) (ConnectorSnap, bool) {
	points := FindConnectorSnapPoints(a, connectorDefID, cursor, maxDistance, ray, fallback)
	if len(points) == 0 {
		return ConnectorSnap{}, false
	}

	best := points[0]
	snap := ConnectorSnap{Position: best.Position, MidSpan: best.MidSpan}
	for _, p := range points {
		if p.Position != best.Position {
			continue
		}
		if !slices.Contains(snap.Needed, p.NeededDirection) {
			snap.Needed = append(snap.Needed, p.NeededDirection)
		}
	}

	conn, _ := a.Catalog().Definition(connectorDefID)
	snap.Rotation = ComputeAutoRotation(conn, snap.Needed, fallback)
	return snap, true
}

// ComputeAutoRotation exhaustively evaluates all 64 combinations of
// per-axis quarter turns on the connector's female arm directions and
// returns the rotation that matches the most needed directions. Coverage
// ties resolve to the rotation circularly closest to fallback (summed
// per-axis 90°-step distance). The fallback is itself one of the evaluated
// candidates, so the result never covers fewer directions than the
// fallback.
func ComputeAutoRotation(conn catalog.Definition, needed []grid.Direction, fallback grid.Rotation) grid.Rotation {
	arms := make([]grid.Direction, 0, len(conn.Points))
	for _, p := range conn.FemalePoints() {
		arms = append(arms, p.Direction)
	}

	coverage := func(r grid.Rotation) int {
		count := 0
		for _, need := range needed {
			for _, arm := range arms {
				if r.Direction(arm) == need {
					count++
					break
				}
			}
		}
		return count
	}

	best := fallback
	bestCover := coverage(fallback)
	bestDist := 0 // fallback's distance to itself

	angles := []int{0, 90, 180, 270}
	for _, x := range angles {
		for _, y := range angles {
			for _, z := range angles {
				r := grid.Rot(x, y, z)
				cover := coverage(r)
				if cover < bestCover {
					continue
				}
				dist := r.StepDistance(fallback)
				if cover > bestCover || dist < bestDist {
					best, bestCover, bestDist = r, cover, dist
				}
			}
		}
	}
	return best
}
