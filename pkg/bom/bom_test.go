package bom

import (
	"slices"
	"testing"

	"github.com/framegrid/framegrid/pkg/assembly"
	"github.com/framegrid/framegrid/pkg/catalog"
	"github.com/framegrid/framegrid/pkg/grid"
)

func mustAdd(t *testing.T, a *assembly.Assembly, defID string, pos grid.Vec, orient grid.Orientation) {
	t.Helper()
	if _, err := a.AddPart(defID, pos, grid.Rotation{}, orient, ""); err != nil {
		t.Fatalf("AddPart(%s, %v): %v", defID, pos, err)
	}
}

func find(entries []Entry, defID string) (Entry, bool) {
	for _, e := range entries {
		if e.DefinitionID == defID {
			return e, true
		}
	}
	return Entry{}, false
}

func TestMaterialsEmpty(t *testing.T) {
	a := assembly.New(catalog.Builtin())
	if got := Materials(a); len(got) != 0 {
		t.Errorf("empty assembly yields %d entries", len(got))
	}
}

func TestMaterialsTally(t *testing.T) {
	a := assembly.New(catalog.Builtin())
	mustAdd(t, a, "support-3", grid.V(0, 0, 0), grid.OrientX)
	mustAdd(t, a, "support-3", grid.V(0, 0, 2), grid.OrientX)
	mustAdd(t, a, "support-5", grid.V(0, 0, 4), grid.OrientX)
	mustAdd(t, a, "connector-2w-l", grid.V(10, 0, 10), grid.OrientY)

	entries := Materials(a)

	if e, ok := find(entries, "support-3"); !ok || e.Quantity != 2 {
		t.Errorf("support-3 entry = %+v, %v", e, ok)
	}
	if e, ok := find(entries, "support-5"); !ok || e.Quantity != 1 {
		t.Errorf("support-5 entry = %+v, %v", e, ok)
	}
	if e, ok := find(entries, "connector-2w-l"); !ok || e.Quantity != 1 {
		t.Errorf("connector entry = %+v, %v", e, ok)
	}
	// The lone connector touches no beam: no fastener line.
	if _, ok := find(entries, catalog.DefaultFastenerID); ok {
		t.Error("fastener entry present without any connector-beam adjacency")
	}

	// Sorted by category, then name.
	sorted := slices.IsSortedFunc(entries, func(x, y Entry) int {
		if x.Category != y.Category {
			if x.Category < y.Category {
				return -1
			}
			return 1
		}
		if x.Name < y.Name {
			return -1
		}
		if x.Name > y.Name {
			return 1
		}
		return 0
	})
	if !sorted {
		t.Errorf("entries not sorted: %+v", entries)
	}
}

func TestMaterialsFastenerInference(t *testing.T) {
	a := assembly.New(catalog.Builtin())

	// Eight tee connectors, each with all three arms adjacent to a beam:
	// 24 adjacencies in total.
	for i := 0; i < 8; i++ {
		x := 10*i + 5
		mustAdd(t, a, "connector-3w-t", grid.V(x, 0, 5), grid.OrientY)
		mustAdd(t, a, "support-3", grid.V(x+1, 0, 5), grid.OrientX)
		mustAdd(t, a, "support-3", grid.V(x-3, 0, 5), grid.OrientX)
		mustAdd(t, a, "support-3", grid.V(x, 0, 6), grid.OrientZ)
	}

	entries := Materials(a)
	pin, ok := find(entries, catalog.DefaultFastenerID)
	if !ok {
		t.Fatal("no fastener entry")
	}
	// ceil(24 × 1.1) = 27, annotated with the raw need.
	if pin.Quantity != 27 {
		t.Errorf("fastener quantity = %d, want 27", pin.Quantity)
	}
	if want := "Standard Lock Pin (24 needed)"; pin.Name != want {
		t.Errorf("fastener name = %q, want %q", pin.Name, want)
	}
}

func TestMaterialsSingleAdjacency(t *testing.T) {
	a := assembly.New(catalog.Builtin())
	mustAdd(t, a, "connector-2w-l", grid.V(5, 0, 5), grid.OrientY)
	mustAdd(t, a, "support-4", grid.V(6, 0, 5), grid.OrientX)
	// A connector next to the other arm does not count toward fasteners.
	mustAdd(t, a, "connector-2w-l", grid.V(5, 0, 6), grid.OrientY)

	entries := Materials(a)
	pin, ok := find(entries, catalog.DefaultFastenerID)
	if !ok {
		t.Fatal("no fastener entry")
	}
	// ceil(1 × 1.1) = 2.
	if pin.Quantity != 2 {
		t.Errorf("fastener quantity = %d, want 2", pin.Quantity)
	}
}

func TestMaterialsNameFallback(t *testing.T) {
	cat := catalog.NewSet(catalog.Definition{
		ID:       "mystery",
		Name:     "Mystery Block",
		Category: catalog.CategoryCustom,
		Cells:    []grid.Vec{{}},
	})
	a := assembly.New(cat)
	mustAdd(t, a, "mystery", grid.V(0, 0, 0), grid.OrientY)

	entries := Materials(a)
	if len(entries) != 1 {
		t.Fatalf("entries = %+v", entries)
	}
	if entries[0].Name != "Mystery Block" || entries[0].Category != "custom" {
		t.Errorf("entry = %+v", entries[0])
	}
}
