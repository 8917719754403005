package grid

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidAxis is returned when parsing an axis or orientation name that is
// not one of "x", "y", "z".
var ErrInvalidAxis = errors.New("axis must be x, y or z")

// Axis identifies one of the three principal grid axes.
type Axis int

// The three principal axes.
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns the lowercase axis name ("x", "y" or "z").
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// ParseAxis converts "x", "y" or "z" into an Axis.
// Returns ErrInvalidAxis for anything else.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidAxis, s)
	}
}

// Positive returns the positive direction along the axis.
func (a Axis) Positive() Direction {
	switch a {
	case AxisX:
		return DirXPos
	case AxisZ:
		return DirZPos
	default:
		return DirYPos
	}
}

// MarshalJSON encodes the axis as its lowercase name.
func (a Axis) MarshalJSON() ([]byte, error) { return json.Marshal(a.String()) }

// UnmarshalJSON decodes an axis from its lowercase name.
func (a *Axis) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseAxis(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Direction is one of the six signed principal axis directions.
type Direction int

// The six signed axis directions.
const (
	DirXPos Direction = iota
	DirXNeg
	DirYPos
	DirYNeg
	DirZPos
	DirZNeg
)

var dirVecs = [...]Vec{
	DirXPos: {1, 0, 0},
	DirXNeg: {-1, 0, 0},
	DirYPos: {0, 1, 0},
	DirYNeg: {0, -1, 0},
	DirZPos: {0, 0, 1},
	DirZNeg: {0, 0, -1},
}

var dirNames = [...]string{
	DirXPos: "+x",
	DirXNeg: "-x",
	DirYPos: "+y",
	DirYNeg: "-y",
	DirZPos: "+z",
	DirZNeg: "-z",
}

// String returns the signed axis name, e.g. "+x" or "-z".
func (d Direction) String() string {
	if d < 0 || int(d) >= len(dirNames) {
		return fmt.Sprintf("direction(%d)", int(d))
	}
	return dirNames[d]
}

// ParseDirection converts a signed axis name ("+x", "-y", ...) into a
// Direction. A bare axis name is treated as its positive direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "+x", "x":
		return DirXPos, nil
	case "-x":
		return DirXNeg, nil
	case "+y", "y":
		return DirYPos, nil
	case "-y":
		return DirYNeg, nil
	case "+z", "z":
		return DirZPos, nil
	case "-z":
		return DirZNeg, nil
	default:
		return 0, fmt.Errorf("invalid direction %q", s)
	}
}

// Axis returns the principal axis of the direction.
func (d Direction) Axis() Axis {
	switch d {
	case DirXPos, DirXNeg:
		return AxisX
	case DirYPos, DirYNeg:
		return AxisY
	default:
		return AxisZ
	}
}

// Sign returns +1 for positive directions and -1 for negative ones.
func (d Direction) Sign() int {
	switch d {
	case DirXNeg, DirYNeg, DirZNeg:
		return -1
	default:
		return 1
	}
}

// Vec returns the unit vector of the direction.
func (d Direction) Vec() Vec { return dirVecs[d] }

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	if d%2 == 0 {
		return d + 1
	}
	return d - 1
}

// MarshalJSON encodes the direction as its signed axis name.
func (d Direction) MarshalJSON() ([]byte, error) { return json.Marshal(d.String()) }

// UnmarshalJSON decodes a direction from its signed axis name.
func (d *Direction) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDirection(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DirectionFromVec converts an axis-aligned unit vector back into a
// Direction. Components are checked in fixed order (x, then y, then z)
// against a ±1 threshold. Returns false for any other vector.
func DirectionFromVec(v Vec) (Direction, bool) {
	switch {
	case v.X >= 1:
		return DirXPos, v == Vec{1, 0, 0}
	case v.X <= -1:
		return DirXNeg, v == Vec{-1, 0, 0}
	case v.Y >= 1:
		return DirYPos, v == Vec{0, 1, 0}
	case v.Y <= -1:
		return DirYNeg, v == Vec{0, -1, 0}
	case v.Z >= 1:
		return DirZPos, v == Vec{0, 0, 1}
	case v.Z <= -1:
		return DirZNeg, v == Vec{0, 0, -1}
	default:
		return 0, false
	}
}

// Vec is an integer grid position or offset. One grid unit corresponds to a
// fixed physical length. Equality is per-component integer equality, so Vec
// values are directly comparable and usable as map keys.
type Vec struct {
	X, Y, Z int
}

// V is shorthand for constructing a Vec.
func V(x, y, z int) Vec { return Vec{x, y, z} }

// Add returns v + o.
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v with every component multiplied by n.
func (v Vec) Scale(n int) Vec { return Vec{v.X * n, v.Y * n, v.Z * n} }

// Neg returns -v.
func (v Vec) Neg() Vec { return Vec{-v.X, -v.Y, -v.Z} }

// Component returns the component of v along the given axis.
func (v Vec) Component(a Axis) int {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

// String formats the vector as "[x, y, z]".
func (v Vec) String() string { return fmt.Sprintf("[%d, %d, %d]", v.X, v.Y, v.Z) }

// MarshalJSON encodes the vector as a three-element array, the form used by
// assembly files.
func (v Vec) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]int{v.X, v.Y, v.Z})
}

// UnmarshalJSON decodes a vector from a three-element array.
func (v *Vec) UnmarshalJSON(data []byte) error {
	var arr [3]int
	if err := json.Unmarshal(data, &arr); err != nil {
		return err
	}
	*v = Vec{arr[0], arr[1], arr[2]}
	return nil
}

// MinY returns the smallest Y component over the cells, or 0 for an empty
// slice.
func MinY(cells []Vec) int {
	if len(cells) == 0 {
		return 0
	}
	min := cells[0].Y
	for _, c := range cells[1:] {
		if c.Y < min {
			min = c.Y
		}
	}
	return min
}

// Lift returns the minimum vertical shift that keeps all cells at or above
// the ground plane: max(0, -minY).
func Lift(cells []Vec) int {
	if m := MinY(cells); m < 0 {
		return -m
	}
	return 0
}
