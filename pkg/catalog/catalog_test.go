package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/framegrid/framegrid/pkg/grid"
)

func TestBuiltin(t *testing.T) {
	s := Builtin()

	if _, ok := s.Definition("connector-3d6w"); !ok {
		t.Error("missing connector-3d6w")
	}
	if _, ok := s.Definition(DefaultFastenerID); !ok {
		t.Errorf("missing default fastener %s", DefaultFastenerID)
	}

	for _, n := range supportLengths {
		def, ok := s.Definition(Support(n).ID)
		if !ok {
			t.Fatalf("missing support of length %d", n)
		}
		if def.Length() != n {
			t.Errorf("support-%d has %d cells", n, def.Length())
		}
		if !def.IsSupport() {
			t.Errorf("support-%d has category %v", n, def.Category)
		}
	}

	clamp, _ := s.Definition("connector-clamp")
	if clamp.PullThrough == nil || *clamp.PullThrough != grid.AxisY {
		t.Error("clamp must declare a Y pull-through axis")
	}
}

func TestSetAdd(t *testing.T) {
	s := NewSet()

	if err := s.Add(Definition{Cells: []grid.Vec{{}}}); err == nil {
		t.Error("expected error for empty ID")
	}
	if err := s.Add(Definition{ID: "a"}); err == nil {
		t.Error("expected error for missing cells")
	}
	if err := s.Add(Definition{ID: "a", Cells: []grid.Vec{{}}}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.Add(Definition{ID: "a", Cells: []grid.Vec{{}}}); err == nil {
		t.Error("expected duplicate ID error")
	}
}

func TestWorldCells(t *testing.T) {
	beam := Support(3)

	tests := []struct {
		name   string
		pos    grid.Vec
		rot    grid.Rotation
		orient grid.Orientation
		want   []grid.Vec
	}{
		{
			name: "DefaultAlongY",
			want: []grid.Vec{grid.V(0, 0, 0), grid.V(0, 1, 0), grid.V(0, 2, 0)},
		},
		{
			name:   "OrientedX",
			orient: grid.OrientX,
			want:   []grid.Vec{grid.V(0, 0, 0), grid.V(1, 0, 0), grid.V(2, 0, 0)},
		},
		{
			name: "RotatedX90MovesYToZ",
			rot:  grid.Rot(90, 0, 0),
			want: []grid.Vec{grid.V(0, 0, 0), grid.V(0, 0, 1), grid.V(0, 0, 2)},
		},
		{
			name: "Translated",
			pos:  grid.V(5, 1, 5),
			want: []grid.Vec{grid.V(5, 1, 5), grid.V(5, 2, 5), grid.V(5, 3, 5)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := beam.WorldCells(tt.pos, tt.rot, tt.orient)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d cells, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("cell %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestGroundLift(t *testing.T) {
	beam := Support(3)

	// Rotated 180° about X the beam extends to (0,-2,0): lift 2.
	if got := beam.GroundLift(grid.Rot(180, 0, 0), grid.OrientY); got != 2 {
		t.Errorf("flipped beam lift = %d, want 2", got)
	}
	if got := beam.GroundLift(grid.Rotation{}, grid.OrientY); got != 0 {
		t.Errorf("upright beam lift = %d, want 0", got)
	}

	// A six-way connector at ground level has a -y arm projecting below the
	// plane; the lift must cover the arm even though the cell itself is fine.
	six, _ := Builtin().Definition("connector-3d6w")
	if got := six.GroundLift(grid.Rotation{}, grid.OrientY); got != 1 {
		t.Errorf("six-way connector lift = %d, want 1", got)
	}
}

func TestEffectivePullThrough(t *testing.T) {
	clamp, _ := Builtin().Definition("connector-clamp")

	axis, ok := clamp.EffectivePullThrough(grid.Rotation{})
	if !ok || axis != grid.AxisY {
		t.Fatalf("unrotated = %v, %v; want y", axis, ok)
	}

	axis, ok = clamp.EffectivePullThrough(grid.Rot(90, 0, 0))
	if !ok || axis != grid.AxisZ {
		t.Errorf("rotated 90 about X = %v, %v; want z", axis, ok)
	}

	beam := Support(2)
	if _, ok := beam.EffectivePullThrough(grid.Rotation{}); ok {
		t.Error("beam must not report a pull-through axis")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "parts.toml")

	content := `
[[part]]
id = "bracket-90"
name = "90° Bracket"
cells = [[0, 0, 0], [1, 0, 0]]
pull_through = "x"

[[part.point]]
offset = [0, 0, 0]
direction = "+z"
role = "female"

[[part.point]]
offset = [1, 0, 0]
direction = "-y"
role = "male"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	set, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	def, ok := set.Definition("bracket-90")
	if !ok {
		t.Fatal("bracket-90 not loaded")
	}
	if def.Category != CategoryCustom {
		t.Errorf("category = %v, want custom", def.Category)
	}
	if len(def.Cells) != 2 || def.Cells[1] != grid.V(1, 0, 0) {
		t.Errorf("cells = %v", def.Cells)
	}
	if def.PullThrough == nil || *def.PullThrough != grid.AxisX {
		t.Error("pull-through axis not parsed")
	}
	if len(def.Points) != 2 || def.Points[0].Direction != grid.DirZPos || def.Points[1].Role != RoleMale {
		t.Errorf("points = %+v", def.Points)
	}

	// Builtin parts remain available after the merge.
	if _, ok := set.Definition("support-3"); !ok {
		t.Error("builtin parts missing after merge")
	}
}

func TestLoadFileRejectsBuiltinOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "parts.toml")

	content := `
[[part]]
id = "support-3"
cells = [[0, 0, 0]]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("expected duplicate ID error for builtin override")
	}
}
