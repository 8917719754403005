package assembly

import (
	"testing"

	"github.com/framegrid/framegrid/pkg/catalog"
	"github.com/framegrid/framegrid/pkg/grid"
)

func axisPtr(a grid.Axis) *grid.Axis { return &a }

func TestCoexists(t *testing.T) {
	beamX := Occupant{PartID: "a", Kind: OccupantBeam, Axis: grid.AxisX}
	beamY := Occupant{PartID: "b", Kind: OccupantBeam, Axis: grid.AxisY}
	beamX2 := Occupant{PartID: "c", Kind: OccupantBeam, Axis: grid.AxisX}
	full := Occupant{PartID: "d", Kind: OccupantFull}
	clampY := Occupant{PartID: "e", Kind: OccupantFull, PullThrough: axisPtr(grid.AxisY)}

	tests := []struct {
		name               string
		existing, incoming Occupant
		want               bool
	}{
		{"BeamsDifferentAxes", beamX, beamY, true},
		{"BeamsSameAxis", beamX, beamX2, false},
		{"FullBlocksBeam", full, beamX, false},
		{"BeamBlocksFull", beamX, full, false},
		{"FullBlocksFull", full, full, false},
		{"PullThroughAdmitsAlignedBeam", clampY, beamY, true},
		{"PullThroughBlocksCrossBeam", clampY, beamX, false},
		{"BeamAdmitsAlignedPullThrough", beamY, clampY, true},
		{"BeamBlocksCrossPullThrough", beamX, clampY, false},
		{"PullThroughBlocksFull", clampY, full, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := coexists(tt.existing, tt.incoming); got != tt.want {
				t.Errorf("coexists = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOccupantFor(t *testing.T) {
	cat := catalog.Builtin()

	t.Run("BeamClaimsEffectiveAxis", func(t *testing.T) {
		beam, _ := cat.Definition("support-3")

		occ := occupantFor("p", beam, grid.Rotation{}, grid.OrientX)
		if occ.Kind != OccupantBeam || occ.Axis != grid.AxisX {
			t.Errorf("oriented-x beam occupant = %+v", occ)
		}

		// Orientation then rotation: a Y-authored beam rotated 90° about X
		// runs along Z.
		occ = occupantFor("p", beam, grid.Rot(90, 0, 0), grid.OrientY)
		if occ.Axis != grid.AxisZ {
			t.Errorf("rotated beam axis = %v, want z", occ.Axis)
		}
	})

	t.Run("ConnectorClaimsFullCell", func(t *testing.T) {
		six, _ := cat.Definition("connector-3d6w")
		occ := occupantFor("p", six, grid.Rotation{}, grid.OrientY)
		if occ.Kind != OccupantFull || occ.PullThrough != nil {
			t.Errorf("six-way occupant = %+v", occ)
		}
	})

	t.Run("ClampCarriesRotatedPullThrough", func(t *testing.T) {
		clamp, _ := cat.Definition("connector-clamp")
		occ := occupantFor("p", clamp, grid.Rot(90, 0, 0), grid.OrientY)
		if occ.PullThrough == nil || *occ.PullThrough != grid.AxisZ {
			t.Errorf("clamp pull-through = %+v, want z", occ.PullThrough)
		}
	})
}
