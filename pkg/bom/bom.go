// Package bom derives a bill of materials from a placed assembly,
// including the lock-pin quantity inferred from connector-to-beam
// adjacency. The derivation is a pure read-only query: fasteners are never
// placed individually, their need is counted wherever a connector arm
// points at an adjacent beam cell.
package bom

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/framegrid/framegrid/pkg/assembly"
	"github.com/framegrid/framegrid/pkg/catalog"
)

// spareMargin is the fraction of extra lock pins added on top of the raw
// counted need.
const spareMargin = 0.1

// Entry is one line of the bill of materials.
type Entry struct {
	DefinitionID string `json:"type"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Quantity     int    `json:"quantity"`
}

// Materials tallies the placed parts by definition and appends the derived
// fastener entry: one lock pin needed per connector arm that points at an
// adjacent beam cell, padded by a 10% spare margin (rounded up) and
// annotated with the raw count. The list is sorted by category, then name.
func Materials(a *assembly.Assembly) []Entry {
	cat := a.Catalog()

	counts := make(map[string]int)
	for _, p := range a.Parts() {
		counts[p.DefinitionID]++
	}

	entries := make([]Entry, 0, len(counts)+1)
	for defID, n := range counts {
		e := Entry{DefinitionID: defID, Name: defID, Quantity: n}
		if def, ok := cat.Definition(defID); ok {
			e.Name = def.Name
			e.Category = def.Category.String()
		}
		entries = append(entries, e)
	}

	if needed := fastenersNeeded(a); needed > 0 {
		e := Entry{
			DefinitionID: catalog.DefaultFastenerID,
			Name:         fmt.Sprintf("Lock Pin (%d needed)", needed),
			Quantity:     int(math.Ceil(float64(needed) * (1 + spareMargin))),
		}
		if def, ok := cat.Definition(catalog.DefaultFastenerID); ok {
			e.Name = fmt.Sprintf("%s (%d needed)", def.Name, needed)
			e.Category = def.Category.String()
		}
		entries = append(entries, e)
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		if c := strings.Compare(a.Category, b.Category); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return entries
}

// fastenersNeeded counts connector arms whose adjacent cell is occupied by
// a beam.
func fastenersNeeded(a *assembly.Assembly) int {
	cat := a.Catalog()

	needed := 0
	for _, p := range a.Parts() {
		def, ok := cat.Definition(p.DefinitionID)
		if !ok || !def.IsConnector() {
			continue
		}
		for _, pt := range def.Points {
			target := def.ArmTarget(pt, p.Position, p.Rotation, p.Orientation)
			neighbor, ok := a.PartAt(target)
			if !ok {
				continue
			}
			if ndef, ok := cat.Definition(neighbor.DefinitionID); ok && ndef.IsSupport() {
				needed++
			}
		}
	}
	return needed
}
