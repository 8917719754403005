package errors

import (
	"strings"
	"testing"
)

func TestValidateAssemblyName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "workbench", false},
		{"valid with dash", "shelf-unit", false},
		{"valid with underscore", "shelf_unit", false},
		{"valid with space", "garage rack", false},
		{"valid with dot", "rack.v2", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 200), true},
		{"path traversal", "foo/../bar", true},
		{"path separator", "foo/bar", true},
		{"null byte", "foo\x00bar", true},
		{"backslash", "foo\\bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAssemblyName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAssemblyName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePartType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid builtin", "support-4", false},
		{"valid connector", "connector-3d6w", false},
		{"valid custom", "my_bracket.v2", false},

		{"empty", "", true},
		{"too long", strings.Repeat("x", 100), true},
		{"with space", "support 4", true},
		{"with path", "parts/support-4", true},
		{"with backslash", "parts\\support-4", true},
		{"control char", "support\x01", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePartType(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePartType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
