package bom_test

import (
	"fmt"

	"github.com/framegrid/framegrid/pkg/assembly"
	"github.com/framegrid/framegrid/pkg/bom"
	"github.com/framegrid/framegrid/pkg/catalog"
	"github.com/framegrid/framegrid/pkg/grid"
)

func ExampleMaterials() {
	// Two vertical beams joined by a six-way cube connector. The cube's -y
	// and +y arms each point at a beam cell, so two lock pins are needed;
	// the spare margin rounds that up to three.
	a := assembly.New(catalog.Builtin())
	_, _ = a.AddPart("support-4", grid.V(0, 0, 0), grid.Rotation{}, grid.OrientY, "silver")
	_, _ = a.AddPart("connector-3d6w", grid.V(0, 4, 0), grid.Rotation{}, grid.OrientY, "black")
	_, _ = a.AddPart("support-4", grid.V(0, 5, 0), grid.Rotation{}, grid.OrientY, "silver")

	for _, e := range bom.Materials(a) {
		fmt.Printf("%d× %s\n", e.Quantity, e.Name)
	}
	// Output:
	// 1× 6-Way Cube Connector
	// 3× Standard Lock Pin (2 needed)
	// 2× Support Beam 4
}
