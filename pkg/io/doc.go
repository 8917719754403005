// Package io provides import and export of assembly files.
//
// # Overview
//
// This package serializes the portable assembly document defined in
// [assembly.File] to and from two on-disk formats:
//
//   - JSON: human-readable, diff-friendly, the default interchange format
//   - Binary: compact MessagePack encoding for large assemblies
//
// Both formats carry the same data and round-trip through each other, so
// the convert command can translate freely between them.
//
// # JSON Format
//
// The JSON document mirrors [assembly.File]:
//
//	{
//	  "version": 1,
//	  "name": "workbench",
//	  "parts": [
//	    {"type": "support-4", "position": [0, 0, 0], "rotation": [0, 0, 0]},
//	    {"type": "connector-2w-l", "position": [0, 4, 0], "rotation": [0, 90, 0]}
//	  ]
//	}
//
// Older documents that encode rotation as a single number are accepted on
// read; see [assembly.Record] for the compatibility rules.
//
// # Import and Export
//
// Use [ImportJSON] / [ExportJSON] (or the binary equivalents) for file
// paths, and [ReadJSON] / [WriteJSON] for arbitrary readers and writers.
// [DetectFormat] maps a file extension to the matching format so callers
// can dispatch without inspecting content.
//
// [assembly.File]: github.com/framegrid/framegrid/pkg/assembly.File
// [assembly.Record]: github.com/framegrid/framegrid/pkg/assembly.Record
package io
