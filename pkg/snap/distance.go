package snap

import (
	"math"

	"github.com/framegrid/framegrid/pkg/grid"
)

// Point3 is a continuous 3D point, used for pick rays from the host's
// camera. Grid cells convert via [PointAt].
type Point3 struct {
	X, Y, Z float64
}

// PointAt returns the continuous position of a grid cell's origin corner.
func PointAt(v grid.Vec) Point3 {
	return Point3{float64(v.X), float64(v.Y), float64(v.Z)}
}

func (p Point3) sub(o Point3) Point3 { return Point3{p.X - o.X, p.Y - o.Y, p.Z - o.Z} }

func (p Point3) add(o Point3) Point3 { return Point3{p.X + o.X, p.Y + o.Y, p.Z + o.Z} }

func (p Point3) scale(s float64) Point3 { return Point3{p.X * s, p.Y * s, p.Z * s} }

func (p Point3) dot(o Point3) float64 { return p.X*o.X + p.Y*o.Y + p.Z*o.Z }

func (p Point3) length() float64 { return math.Sqrt(p.dot(p)) }

// Ray is a half-line pick ray supplied by the host, typically from the
// camera through the pointer.
type Ray struct {
	Origin    Point3
	Direction Point3
}

// DistanceTo returns the distance from the point to the closest point on
// the ray. Points behind the ray origin measure to the origin itself.
func (r Ray) DistanceTo(p Point3) float64 {
	d := r.Direction
	lenSq := d.dot(d)
	if lenSq == 0 {
		return p.sub(r.Origin).length()
	}
	t := p.sub(r.Origin).dot(d) / lenSq
	if t < 0 {
		t = 0
	}
	closest := r.Origin.add(d.scale(t))
	return p.sub(closest).length()
}

// tieBreakWeight scales the full 3D distance term that orders otherwise
// equal candidates.
const tieBreakWeight = 0.01

// rankDistance computes a candidate's filter and sort distances against the
// ground-plane cursor and the optional pick ray. The filter distance is
// min(xz cursor distance, ray distance); the sort distance adds the scaled
// 3D distance as a tie-breaker only.
func rankDistance(candidate, cursor grid.Vec, ray *Ray) (filter, sort float64) {
	dx := float64(candidate.X - cursor.X)
	dy := float64(candidate.Y - cursor.Y)
	dz := float64(candidate.Z - cursor.Z)

	xz := math.Hypot(dx, dz)
	filter = xz
	if ray != nil {
		if rd := ray.DistanceTo(PointAt(candidate)); rd < filter {
			filter = rd
		}
	}

	full3d := math.Sqrt(dx*dx + dy*dy + dz*dz)
	return filter, filter + tieBreakWeight*full3d
}
