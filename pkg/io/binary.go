package io

import (
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/framegrid/framegrid/pkg/assembly"
)

// WriteBinary encodes an assembly file as MessagePack and writes it to w.
// The binary format carries the same data as the JSON format but is
// considerably smaller for large assemblies.
func WriteBinary(f *assembly.File, w io.Writer) error {
	enc := msgpack.NewEncoder(w)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadBinary decodes a MessagePack assembly file from r.
// It applies the same version check as [ReadJSON].
func ReadBinary(r io.Reader) (*assembly.File, error) {
	var f assembly.File
	dec := msgpack.NewDecoder(r)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if f.Version > assembly.FileVersion {
		return nil, fmt.Errorf("unsupported file version %d (max %d)", f.Version, assembly.FileVersion)
	}
	return &f, nil
}

// ExportBinary writes an assembly file to a MessagePack file at path.
func ExportBinary(f *assembly.File, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()
	return WriteBinary(f, out)
}

// ImportBinary reads a MessagePack file at path and returns the decoded
// assembly file.
func ImportBinary(path string) (*assembly.File, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer in.Close()
	return ReadBinary(in)
}
