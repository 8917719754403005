package render

import (
	"github.com/framegrid/framegrid/pkg/assembly"
)

// Node is one placed part in the attachment graph.
type Node struct {
	ID       string // Placed part instance ID
	Type     string // Definition ID (e.g. "support-4")
	Name     string // Definition display name
	Category string // Definition category
}

// Edge is one physical attachment. Via carries the world direction of the
// connector arm that makes the attachment, or "pull-through" for a clamp
// sharing a cell with the beam it wraps.
type Edge struct {
	From string
	To   string
	Via  string
}

// Graph is the attachment structure of an assembly: parts as nodes,
// connector attachments as edges. Nodes appear in placement order and edges
// in connector-arm order, so builds produce deterministic output.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

// Build derives the attachment graph of an assembly.
//
// Edges originate at connectors: one per arm whose target cell is occupied
// by another part, plus one per pull-through cell shared with a beam. The
// beam side contributes no edges of its own, so each physical attachment
// appears exactly once.
func Build(a *assembly.Assembly) *Graph {
	g := &Graph{}
	seen := make(map[Edge]bool)

	addEdge := func(e Edge) {
		if e.From == e.To || seen[e] {
			return
		}
		seen[e] = true
		g.Edges = append(g.Edges, e)
	}

	for _, p := range a.Parts() {
		def, ok := a.Catalog().Definition(p.DefinitionID)
		if !ok {
			continue
		}

		g.Nodes = append(g.Nodes, Node{
			ID:       p.ID,
			Type:     def.ID,
			Name:     def.Name,
			Category: def.Category.String(),
		})

		if !def.IsConnector() {
			continue
		}

		for _, pt := range def.FemalePoints() {
			target := def.ArmTarget(pt, p.Position, p.Rotation, p.Orientation)
			other, ok := a.PartAt(target)
			if !ok {
				continue
			}
			addEdge(Edge{From: p.ID, To: other.ID, Via: def.ArmDirection(pt, p.Rotation, p.Orientation).String()})
		}

		if _, ok := def.EffectivePullThrough(p.Rotation); ok {
			for _, cell := range def.WorldCells(p.Position, p.Rotation, p.Orientation) {
				for _, occ := range a.OccupantsAt(cell) {
					if occ.PartID != p.ID {
						addEdge(Edge{From: p.ID, To: occ.PartID, Via: "pull-through"})
					}
				}
			}
		}
	}

	return g
}
