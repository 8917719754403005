package catalog

import (
	"fmt"

	"github.com/framegrid/framegrid/pkg/grid"
)

// DefaultFastenerID is the lock pin used for derived fastener quantities in
// the bill of materials.
const DefaultFastenerID = "lockpin-std"

// supportLengths are the beam lengths shipped in the builtin catalog.
var supportLengths = []int{2, 3, 4, 5, 6, 8, 10}

// Builtin returns the standard part set: straight supports of several
// lengths (authored along Y with male ends), the common connectors, and the
// default lock pin.
func Builtin() *Set {
	s := NewSet(
		Definition{
			ID:       "connector-3d6w",
			Name:     "6-Way Cube Connector",
			Category: CategoryConnector,
			Cells:    []grid.Vec{{}},
			Points: []ConnectionPoint{
				{Direction: grid.DirXPos, Role: RoleFemale},
				{Direction: grid.DirXNeg, Role: RoleFemale},
				{Direction: grid.DirYPos, Role: RoleFemale},
				{Direction: grid.DirYNeg, Role: RoleFemale},
				{Direction: grid.DirZPos, Role: RoleFemale},
				{Direction: grid.DirZNeg, Role: RoleFemale},
			},
		},
		Definition{
			ID:       "connector-2w-l",
			Name:     "2-Way Corner Connector",
			Category: CategoryConnector,
			Cells:    []grid.Vec{{}},
			Points: []ConnectionPoint{
				{Direction: grid.DirXPos, Role: RoleFemale},
				{Direction: grid.DirZPos, Role: RoleFemale},
			},
		},
		Definition{
			ID:       "connector-3w-t",
			Name:     "3-Way Tee Connector",
			Category: CategoryConnector,
			Cells:    []grid.Vec{{}},
			Points: []ConnectionPoint{
				{Direction: grid.DirXPos, Role: RoleFemale},
				{Direction: grid.DirXNeg, Role: RoleFemale},
				{Direction: grid.DirZPos, Role: RoleFemale},
			},
		},
		Definition{
			ID:       "connector-4w-x",
			Name:     "4-Way Cross Connector",
			Category: CategoryConnector,
			Cells:    []grid.Vec{{}},
			Points: []ConnectionPoint{
				{Direction: grid.DirXPos, Role: RoleFemale},
				{Direction: grid.DirXNeg, Role: RoleFemale},
				{Direction: grid.DirZPos, Role: RoleFemale},
				{Direction: grid.DirZNeg, Role: RoleFemale},
			},
		},
		Definition{
			ID:          "connector-clamp",
			Name:        "Pull-Through Clamp",
			Category:    CategoryConnector,
			Cells:       []grid.Vec{{}},
			PullThrough: axisPtr(grid.AxisY),
			Points: []ConnectionPoint{
				{Direction: grid.DirXPos, Role: RoleFemale},
				{Direction: grid.DirXNeg, Role: RoleFemale},
			},
		},
		Definition{
			ID:       DefaultFastenerID,
			Name:     "Standard Lock Pin",
			Category: CategoryLockPin,
			Cells:    []grid.Vec{{}},
		},
	)

	for _, n := range supportLengths {
		if err := s.Add(Support(n)); err != nil {
			panic(err)
		}
	}
	return s
}

// Support returns the straight beam definition of the given length in grid
// units, authored along the Y axis with a male connection point at each end.
func Support(length int) Definition {
	cells := make([]grid.Vec, length)
	for i := range cells {
		cells[i] = grid.V(0, i, 0)
	}
	return Definition{
		ID:       fmt.Sprintf("support-%d", length),
		Name:     fmt.Sprintf("Support Beam %d", length),
		Category: CategorySupport,
		Cells:    cells,
		Points: []ConnectionPoint{
			{Offset: grid.V(0, 0, 0), Direction: grid.DirYNeg, Role: RoleMale},
			{Offset: grid.V(0, length-1, 0), Direction: grid.DirYPos, Role: RoleMale},
		},
	}
}

func axisPtr(a grid.Axis) *grid.Axis { return &a }
