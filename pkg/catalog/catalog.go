package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/framegrid/framegrid/pkg/grid"
)

var (
	// ErrDuplicateID is returned by [Set.Add] when a definition with the
	// same ID is already registered.
	ErrDuplicateID = errors.New("duplicate part ID")

	// ErrInvalidDefinition is returned by [Set.Add] and the TOML loader for
	// definitions with an empty ID or no cells.
	ErrInvalidDefinition = errors.New("invalid part definition")
)

// Category classifies a part definition. The set is closed: the engine
// switches over it and never probes definitions for extra behavior.
type Category int

const (
	// CategorySupport is a beam: an elongated part occupying a contiguous
	// run of cells along one axis, authored along Y.
	CategorySupport Category = iota
	// CategoryConnector is a part with directional arms other parts attach to.
	CategoryConnector
	// CategoryLockPin is a small fastener whose quantity is derived, not placed.
	CategoryLockPin
	// CategoryCustom is a user-imported part (e.g. from STL voxelization).
	CategoryCustom
)

var categoryNames = [...]string{
	CategorySupport:   "support",
	CategoryConnector: "connector",
	CategoryLockPin:   "lockpin",
	CategoryCustom:    "custom",
}

// String returns the lowercase category name.
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory converts a category name into a Category.
func ParseCategory(s string) (Category, error) {
	for i, name := range categoryNames {
		if name == s {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("invalid category %q", s)
}

// MarshalJSON encodes the category as its name.
func (c Category) MarshalJSON() ([]byte, error) { return json.Marshal(c.String()) }

// UnmarshalJSON decodes a category from its name.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCategory(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Role distinguishes the two ends of an attachment: female sockets accept
// male beam ends.
type Role int

const (
	// RoleFemale is a socket that accepts a beam end.
	RoleFemale Role = iota
	// RoleMale is an end that plugs into a socket.
	RoleMale
)

// String returns "female" or "male".
func (r Role) String() string {
	if r == RoleMale {
		return "male"
	}
	return "female"
}

// ParseRole converts "female" or "male" into a Role.
func ParseRole(s string) (Role, error) {
	switch s {
	case "female":
		return RoleFemale, nil
	case "male":
		return RoleMale, nil
	default:
		return 0, fmt.Errorf("invalid role %q", s)
	}
}

// ConnectionPoint is a directional attachment site on a part, authored
// relative to the part's origin cell.
type ConnectionPoint struct {
	Offset    grid.Vec
	Direction grid.Direction
	Role      Role
}

// Definition describes a part shape as authored: the relative cells it
// occupies unrotated and unoriented, its connection points, and an optional
// pull-through axis along which a beam may pass through the part without
// blocking it. Definitions are immutable values; the engine resolves them by
// ID and never writes back.
type Definition struct {
	ID          string
	Name        string
	Category    Category
	Cells       []grid.Vec
	Points      []ConnectionPoint
	PullThrough *grid.Axis
	Color       string
}

// IsSupport reports whether the part is a beam.
func (d Definition) IsSupport() bool { return d.Category == CategorySupport }

// IsConnector reports whether the part is a connector.
func (d Definition) IsConnector() bool { return d.Category == CategoryConnector }

// Length returns the number of cells the part occupies. For supports this is
// the beam length in grid units.
func (d Definition) Length() int { return len(d.Cells) }

// FemalePoints returns the connection points that act as sockets.
func (d Definition) FemalePoints() []ConnectionPoint {
	var out []ConnectionPoint
	for _, p := range d.Points {
		if p.Role == RoleFemale {
			out = append(out, p)
		}
	}
	return out
}

// Catalog resolves part definitions by ID. Implementations must be safe for
// concurrent reads; the engine only ever looks definitions up.
type Catalog interface {
	// Definition returns the definition for id, or false when unknown.
	Definition(id string) (Definition, bool)
}

// Set is a map-backed [Catalog].
type Set struct {
	defs map[string]Definition
}

// NewSet creates a catalog from the given definitions.
// Panics on duplicate IDs; use [Set.Add] for fallible insertion.
func NewSet(defs ...Definition) *Set {
	s := &Set{defs: make(map[string]Definition, len(defs))}
	for _, d := range defs {
		if err := s.Add(d); err != nil {
			panic(err)
		}
	}
	return s
}

// Add registers a definition. Returns ErrInvalidDefinition for definitions
// without an ID or cells, or ErrDuplicateID when the ID is taken.
func (s *Set) Add(d Definition) error {
	if d.ID == "" {
		return fmt.Errorf("%w: empty ID", ErrInvalidDefinition)
	}
	if len(d.Cells) == 0 {
		return fmt.Errorf("%w: %s has no cells", ErrInvalidDefinition, d.ID)
	}
	if _, exists := s.defs[d.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, d.ID)
	}
	s.defs[d.ID] = d
	return nil
}

// Definition implements [Catalog].
func (s *Set) Definition(id string) (Definition, bool) {
	d, ok := s.defs[id]
	return d, ok
}

// IDs returns all registered IDs in sorted order.
func (s *Set) IDs() []string {
	ids := make([]string, 0, len(s.defs))
	for id := range s.defs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// All returns all definitions sorted by category, then name.
func (s *Set) All() []Definition {
	out := make([]Definition, 0, len(s.defs))
	for _, d := range s.defs {
		out = append(out, d)
	}
	slices.SortFunc(out, func(a, b Definition) int {
		if a.Category != b.Category {
			return int(a.Category) - int(b.Category)
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// Len returns the number of registered definitions.
func (s *Set) Len() int { return len(s.defs) }
