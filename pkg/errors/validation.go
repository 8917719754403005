package errors

import (
	"strings"
	"unicode"
)

// ValidateAssemblyName validates an assembly name for safety and correctness.
// Names appear in store keys and file paths, so the rules are intentionally
// conservative:
//   - No empty names
//   - No control characters or null bytes
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateAssemblyName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "assembly name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidName, "assembly name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "assembly name contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidName, "assembly name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidatePartType validates a part definition identifier.
// It ensures the identifier is a simple token without path components,
// whitespace, or control characters.
func ValidatePartType(id string) error {
	if id == "" {
		return New(ErrCodeInvalidPart, "part type cannot be empty")
	}

	if len(id) > 64 {
		return New(ErrCodeInvalidPart, "part type too long (max 64 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidPart, "part type contains invalid characters")
		}
	}

	if strings.ContainsAny(id, "/\\") {
		return New(ErrCodeInvalidPart, "part type cannot contain path separators")
	}

	return nil
}
