package grid

import (
	"encoding/json"
	"fmt"
)

// Orientation remaps a beam's authored geometry from its canonical Y axis
// onto another principal axis. It is a distinct operation from rotation:
// orientation redefines the authored shape, rotation then spins the placed
// part. The canonical application order everywhere in framegrid is
// orientation first, then rotation.
//
// The zero value is [OrientY], the identity.
type Orientation int

// Beam orientations. OrientY is the authored default.
const (
	OrientY Orientation = iota
	OrientX
	OrientZ
)

// OrientationFor returns the orientation that maps a Y-authored beam onto
// the given axis.
func OrientationFor(a Axis) Orientation {
	switch a {
	case AxisX:
		return OrientX
	case AxisZ:
		return OrientZ
	default:
		return OrientY
	}
}

// Axis returns the axis a Y-authored beam lies along after the remap.
func (o Orientation) Axis() Axis {
	switch o {
	case OrientX:
		return AxisX
	case OrientZ:
		return AxisZ
	default:
		return AxisY
	}
}

// String returns the lowercase target axis name.
func (o Orientation) String() string { return o.Axis().String() }

// ParseOrientation converts "x", "y" or "z" into an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	a, err := ParseAxis(s)
	if err != nil {
		return 0, err
	}
	return OrientationFor(a), nil
}

// Apply remaps a cell: OrientX swaps the first two components, OrientZ swaps
// the last two, OrientY is the identity.
func (o Orientation) Apply(v Vec) Vec {
	switch o {
	case OrientX:
		return Vec{v.Y, v.X, v.Z}
	case OrientZ:
		return Vec{v.X, v.Z, v.Y}
	default:
		return v
	}
}

// ApplyAll remaps every cell, returning a new slice.
func (o Orientation) ApplyAll(cells []Vec) []Vec {
	if o == OrientY {
		out := make([]Vec, len(cells))
		copy(out, cells)
		return out
	}
	out := make([]Vec, len(cells))
	for i, c := range cells {
		out[i] = o.Apply(c)
	}
	return out
}

// Direction remaps a direction through the same component swap.
func (o Orientation) Direction(d Direction) Direction {
	out, ok := DirectionFromVec(o.Apply(d.Vec()))
	if !ok {
		return d
	}
	return out
}

// MarshalJSON encodes the orientation as its target axis name.
func (o Orientation) MarshalJSON() ([]byte, error) { return json.Marshal(o.String()) }

// UnmarshalJSON decodes an orientation from an axis name.
func (o *Orientation) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseOrientation(s)
	if err != nil {
		return fmt.Errorf("orientation: %w", err)
	}
	*o = parsed
	return nil
}
