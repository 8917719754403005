package assembly

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/framegrid/framegrid/pkg/catalog"
	"github.com/framegrid/framegrid/pkg/grid"
)

var (
	// ErrUnknownPart is returned when a definition ID cannot be resolved in
	// the catalog.
	ErrUnknownPart = errors.New("unknown part definition")

	// ErrBelowGround is returned when a placement would put an occupied cell
	// at a negative Y coordinate.
	ErrBelowGround = errors.New("placement extends below the ground plane")

	// ErrArmBelowGround is returned when a connector's arm would project
	// into a cell below the ground plane, independent of the connector's own
	// cells.
	ErrArmBelowGround = errors.New("connector arm extends below the ground plane")

	// ErrCellOccupied is returned when a placement conflicts with an
	// existing occupant under the per-axis coexistence rules.
	ErrCellOccupied = errors.New("cell already occupied")

	// ErrPartNotFound is returned by [Assembly.RemovePart] for unknown
	// instance IDs.
	ErrPartNotFound = errors.New("placed part not found")
)

// PlacedPart is an immutable placed instance of a catalog definition.
// Instances are created only through a successful [Assembly.AddPart] and are
// identified by a fresh unique ID; moving a part is remove plus re-add.
type PlacedPart struct {
	ID           string
	DefinitionID string
	Position     grid.Vec
	Rotation     grid.Rotation
	Orientation  grid.Orientation
	Color        string
}

// EventKind classifies a mutation notification.
type EventKind int

const (
	// EventAdd fires after a part was stored.
	EventAdd EventKind = iota
	// EventRemove fires after a part was removed.
	EventRemove
	// EventClear fires after the assembly was emptied.
	EventClear
)

// Event describes a completed mutation. Part is the zero value for
// EventClear.
type Event struct {
	Kind EventKind
	Part PlacedPart
}

// Listener receives mutation events. Listeners run synchronously after the
// mutation's internal state is fully consistent.
type Listener func(Event)

// Option configures an [Assembly].
type Option func(*Assembly)

// WithName sets the assembly's display name.
func WithName(name string) Option {
	return func(a *Assembly) { a.name = name }
}

// WithCustomCollisionExempt makes parts of category "custom" skip collision
// and ground validation entirely. Hosts enable this for imported meshes
// whose voxelization is too coarse for cell-exact collision.
func WithCustomCollisionExempt(exempt bool) Option {
	return func(a *Assembly) { a.customExempt = exempt }
}

// Assembly owns the placed-part table and the per-cell occupancy index. It
// is the only component that mutates either. Not safe for concurrent use.
type Assembly struct {
	catalog      catalog.Catalog
	name         string
	customExempt bool

	parts map[string]PlacedPart
	order []string
	cells map[grid.Vec][]Occupant

	listeners map[int]Listener
	nextSub   int
}

// New creates an empty assembly over the given catalog.
func New(cat catalog.Catalog, opts ...Option) *Assembly {
	a := &Assembly{
		catalog:   cat,
		parts:     make(map[string]PlacedPart),
		cells:     make(map[grid.Vec][]Occupant),
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Name returns the assembly's display name.
func (a *Assembly) Name() string { return a.name }

// Rename sets the assembly's display name.
func (a *Assembly) Rename(name string) { a.name = name }

// Catalog returns the catalog the assembly resolves definitions against.
func (a *Assembly) Catalog() catalog.Catalog { return a.catalog }

// Len returns the number of placed parts.
func (a *Assembly) Len() int { return len(a.parts) }

// IsOccupied reports whether any part claims the cell on any axis.
func (a *Assembly) IsOccupied(pos grid.Vec) bool { return len(a.cells[pos]) > 0 }

// OccupantsAt returns the occupancy claims at the cell. The returned slice
// is a copy.
func (a *Assembly) OccupantsAt(pos grid.Vec) []Occupant {
	return slices.Clone(a.cells[pos])
}

// PartAt returns the first part occupying the cell, or false for a free
// cell. When beams share the cell, the earliest-placed occupant wins.
func (a *Assembly) PartAt(pos grid.Vec) (PlacedPart, bool) {
	occs := a.cells[pos]
	if len(occs) == 0 {
		return PlacedPart{}, false
	}
	p, ok := a.parts[occs[0].PartID]
	return p, ok
}

// Part returns the placed part with the given instance ID.
func (a *Assembly) Part(id string) (PlacedPart, bool) {
	p, ok := a.parts[id]
	return p, ok
}

// Parts returns all placed parts in placement order.
func (a *Assembly) Parts() []PlacedPart {
	out := make([]PlacedPart, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, a.parts[id])
	}
	return out
}

// CanPlace reports whether the definition may legally occupy the grid at the
// given position, rotation and orientation.
func (a *Assembly) CanPlace(defID string, pos grid.Vec, rot grid.Rotation, orient grid.Orientation) bool {
	return a.validate(defID, pos, rot, orient, "") == nil
}

// CanPlaceIgnoring is [Assembly.CanPlace] with one instance's own cells
// treated as free. Hosts use it to validate a move or drag of an existing
// part against everything but itself.
func (a *Assembly) CanPlaceIgnoring(defID string, pos grid.Vec, rot grid.Rotation, orient grid.Orientation, ignoreID string) bool {
	return a.validate(defID, pos, rot, orient, ignoreID) == nil
}

// validate runs the full placement check. ignoreID, when non-empty, names an
// instance whose occupancy is skipped.
func (a *Assembly) validate(defID string, pos grid.Vec, rot grid.Rotation, orient grid.Orientation, ignoreID string) error {
	def, ok := a.catalog.Definition(defID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPart, defID)
	}

	if a.customExempt && def.Category == catalog.CategoryCustom {
		return nil
	}

	if def.IsConnector() {
		for _, p := range def.Points {
			if def.ArmTarget(p, pos, rot, orient).Y < 0 {
				return ErrArmBelowGround
			}
		}
	}

	incoming := occupantFor("", def, rot, orient)
	for _, cell := range def.WorldCells(pos, rot, orient) {
		if cell.Y < 0 {
			return ErrBelowGround
		}
		for _, occ := range a.cells[cell] {
			if ignoreID != "" && occ.PartID == ignoreID {
				continue
			}
			if !coexists(occ, incoming) {
				return fmt.Errorf("%w: %v", ErrCellOccupied, cell)
			}
		}
	}
	return nil
}

// AddPart validates the placement and, on success, stores a new placed part
// under a fresh unique instance ID, indexes its cells, and notifies
// subscribers. Returns ErrUnknownPart, ErrBelowGround, ErrArmBelowGround or
// ErrCellOccupied when the placement is rejected.
func (a *Assembly) AddPart(defID string, pos grid.Vec, rot grid.Rotation, orient grid.Orientation, color string) (PlacedPart, error) {
	if err := a.validate(defID, pos, rot, orient, ""); err != nil {
		return PlacedPart{}, err
	}
	def, _ := a.catalog.Definition(defID)

	part := PlacedPart{
		ID:           uuid.NewString(),
		DefinitionID: defID,
		Position:     pos,
		Rotation:     rot,
		Orientation:  orient,
		Color:        color,
	}

	a.parts[part.ID] = part
	a.order = append(a.order, part.ID)

	occ := occupantFor(part.ID, def, rot, orient)
	for _, cell := range def.WorldCells(pos, rot, orient) {
		a.cells[cell] = append(a.cells[cell], occ)
	}

	a.notify(Event{Kind: EventAdd, Part: part})
	return part, nil
}

// RemovePart removes the part with the given instance ID, strips its
// occupancy entries (deleting cell keys that become empty), and notifies
// subscribers. Returns ErrPartNotFound for unknown IDs.
func (a *Assembly) RemovePart(id string) (PlacedPart, error) {
	part, ok := a.parts[id]
	if !ok {
		return PlacedPart{}, fmt.Errorf("%w: %s", ErrPartNotFound, id)
	}

	if def, ok := a.catalog.Definition(part.DefinitionID); ok {
		for _, cell := range def.WorldCells(part.Position, part.Rotation, part.Orientation) {
			remaining := slices.DeleteFunc(a.cells[cell], func(o Occupant) bool {
				return o.PartID == id
			})
			if len(remaining) == 0 {
				delete(a.cells, cell)
			} else {
				a.cells[cell] = remaining
			}
		}
	}

	delete(a.parts, id)
	a.order = slices.DeleteFunc(a.order, func(s string) bool { return s == id })

	a.notify(Event{Kind: EventRemove, Part: part})
	return part, nil
}

// Clear removes every placed part and occupancy entry, then notifies
// subscribers once.
func (a *Assembly) Clear() {
	a.parts = make(map[string]PlacedPart)
	a.order = nil
	a.cells = make(map[grid.Vec][]Occupant)
	a.notify(Event{Kind: EventClear})
}

// Subscribe registers a listener for mutation events and returns its
// unsubscribe function. Notification order across listeners is unspecified.
func (a *Assembly) Subscribe(fn Listener) func() {
	id := a.nextSub
	a.nextSub++
	a.listeners[id] = fn
	return func() { delete(a.listeners, id) }
}

func (a *Assembly) notify(e Event) {
	for _, fn := range a.listeners {
		fn(e)
	}
}
