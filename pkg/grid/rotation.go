package grid

import (
	"encoding/json"
	"fmt"
)

// Rotation is a triple of independent 90°-step angles in degrees, one per
// axis. Applying a rotation composes the three steps in a fixed intrinsic
// order: Z first, then Y, then X. The composition is not commutative, so the
// angles must never be applied in any other order.
//
// Angles are normalized to 0, 90, 180 or 270 by [Rot] and the file decoders;
// the zero value is the identity rotation.
type Rotation struct {
	X, Y, Z int
}

// Rot constructs a rotation from per-axis angles in degrees, normalizing
// each to the range [0, 360). Angles that are not multiples of 90 are
// rounded down to the nearest step.
func Rot(x, y, z int) Rotation {
	return Rotation{normalizeAngle(x), normalizeAngle(y), normalizeAngle(z)}
}

func normalizeAngle(deg int) int {
	steps := ((deg/90)%4 + 4) % 4
	return steps * 90
}

// IsZero reports whether the rotation is the identity.
func (r Rotation) IsZero() bool { return r == Rotation{} }

// String formats the rotation as "(x°, y°, z°)".
func (r Rotation) String() string { return fmt.Sprintf("(%d°, %d°, %d°)", r.X, r.Y, r.Z) }

// Single 90° right-hand-rule steps.

func stepX(v Vec) Vec { return Vec{v.X, -v.Z, v.Y} }
func stepY(v Vec) Vec { return Vec{v.Z, v.Y, -v.X} }
func stepZ(v Vec) Vec { return Vec{-v.Y, v.X, v.Z} }

func apply(v Vec, step func(Vec) Vec, deg int) Vec {
	for i := 0; i < normalizeAngle(deg)/90; i++ {
		v = step(v)
	}
	return v
}

// Apply rotates a cell about the origin, composing the Z, Y and X steps in
// that fixed order. A zero rotation returns the cell unchanged.
func (r Rotation) Apply(v Vec) Vec {
	if r.IsZero() {
		return v
	}
	v = apply(v, stepZ, r.Z)
	v = apply(v, stepY, r.Y)
	v = apply(v, stepX, r.X)
	return v
}

// ApplyAll rotates every cell, returning a new slice.
func (r Rotation) ApplyAll(cells []Vec) []Vec {
	out := make([]Vec, len(cells))
	for i, c := range cells {
		out[i] = r.Apply(c)
	}
	return out
}

// Direction rotates a direction by converting it to a unit vector, rotating
// the vector, and converting back. 90°-step rotations map axis-aligned unit
// vectors exactly onto axis-aligned unit vectors, so the conversion never
// fails.
func (r Rotation) Direction(d Direction) Direction {
	out, ok := DirectionFromVec(r.Apply(d.Vec()))
	if !ok {
		// Unreachable for valid 90°-step rotations.
		return d
	}
	return out
}

// Axis returns the axis that the given axis maps onto under the rotation.
// The sign is discarded: a 180° flip leaves an axis on itself.
func (r Rotation) Axis(a Axis) Axis {
	return r.Direction(a.Positive()).Axis()
}

// StepDistance returns the summed per-axis minimal circular distance between
// two rotations, measured in 90° steps. Each axis contributes between 0 and
// 2 steps (180° is the farthest a quarter-turn angle can be from another).
func (r Rotation) StepDistance(o Rotation) int {
	return circularSteps(r.X, o.X) + circularSteps(r.Y, o.Y) + circularSteps(r.Z, o.Z)
}

func circularSteps(a, b int) int {
	d := (normalizeAngle(a) - normalizeAngle(b)) / 90
	if d < 0 {
		d = -d
	}
	d %= 4
	if d > 2 {
		d = 4 - d
	}
	return d
}

// MarshalJSON encodes the rotation as a three-element degree array.
func (r Rotation) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]int{r.X, r.Y, r.Z})
}

// UnmarshalJSON decodes a rotation from either the current three-element
// degree array or the legacy single-number form. Legacy scalar rotations are
// treated as a rotation about the Y axis only; the legacy format was written
// by hosts that could only spin parts about the vertical.
func (r *Rotation) UnmarshalJSON(data []byte) error {
	var arr [3]int
	if err := json.Unmarshal(data, &arr); err == nil {
		*r = Rot(arr[0], arr[1], arr[2])
		return nil
	}
	var deg int
	if err := json.Unmarshal(data, &deg); err != nil {
		return fmt.Errorf("rotation must be a degree triple or a legacy scalar: %w", err)
	}
	*r = Rot(0, deg, 0)
	return nil
}
