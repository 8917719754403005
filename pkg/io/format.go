package io

import (
	"path/filepath"
	"strings"

	"github.com/framegrid/framegrid/pkg/assembly"
	"github.com/framegrid/framegrid/pkg/errors"
)

// Format identifies an on-disk assembly encoding.
type Format string

// Supported formats.
const (
	FormatJSON   Format = "json"
	FormatBinary Format = "binary"
)

// ParseFormat converts a user-supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "binary", "bin", "msgpack":
		return FormatBinary, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s (want json or binary)", s)
	}
}

// DetectFormat maps a file extension to the matching format.
// Recognized extensions are .json for JSON and .fgb for binary.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".fgb":
		return FormatBinary, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "cannot detect format of %s (want .json or .fgb)", path)
	}
}

// Export writes an assembly file to path in the given format.
func Export(f *assembly.File, path string, format Format) error {
	switch format {
	case FormatBinary:
		return ExportBinary(f, path)
	default:
		return ExportJSON(f, path)
	}
}

// Import reads an assembly file from path in the given format.
func Import(path string, format Format) (*assembly.File, error) {
	switch format {
	case FormatBinary:
		return ImportBinary(path)
	default:
		return ImportJSON(path)
	}
}
