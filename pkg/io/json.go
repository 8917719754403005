package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/framegrid/framegrid/pkg/assembly"
)

// WriteJSON encodes an assembly file as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(f *assembly.File, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadJSON decodes an assembly file from r.
//
// ReadJSON returns an error if the JSON is malformed or if the document
// declares a version newer than this build understands. Records with
// unknown part types are preserved here; they are reported when the file
// is replayed into an assembly.
//
// The returned file is independent of r and can be modified safely after
// ReadJSON returns. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*assembly.File, error) {
	var f assembly.File
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if f.Version > assembly.FileVersion {
		return nil, fmt.Errorf("unsupported file version %d (max %d)", f.Version, assembly.FileVersion)
	}
	return &f, nil
}

// ExportJSON writes an assembly file to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(f *assembly.File, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()
	return WriteJSON(f, out)
}

// ImportJSON reads a JSON file at path and returns the decoded assembly file.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. Errors wrap the underlying cause with the file path for context.
func ImportJSON(path string) (*assembly.File, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer in.Close()
	return ReadJSON(in)
}
