// Package render turns an assembly's attachment structure into Graphviz
// output.
//
// # Overview
//
// The attachment graph treats every placed part as a node and every physical
// attachment as an edge:
//
//   - A connector arm extending into a cell occupied by another part
//     attaches the connector to that part.
//   - A pull-through connector sharing a cell with the beam it is clamped
//     around attaches the connector to the beam.
//
// The graph answers "what is holding this frame together" without any
// geometry math on the caller's side, and doubles as a quick structural
// sanity check: a disconnected component is a group of parts not fastened
// to the rest of the build.
//
// # Output
//
// [ToDOT] produces Graphviz DOT text that can be fed to any Graphviz
// install. [RenderSVG] renders the DOT in-process via the bundled Graphviz
// and returns SVG bytes.
//
//	g := render.Build(asm)
//	svg, err := render.RenderSVG(render.ToDOT(g, render.Options{}))
package render
