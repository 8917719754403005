package assembly

import (
	"errors"
	"fmt"

	"github.com/framegrid/framegrid/pkg/grid"
)

// FileVersion is the current assembly file format version.
const FileVersion = 1

// File is the persisted form of an assembly. The rotation field of each
// record accepts either the current degree-triple form or the legacy
// single-number form (a rotation about the Y axis); see
// [grid.Rotation.UnmarshalJSON].
type File struct {
	Version int      `json:"version"`
	Name    string   `json:"name"`
	Parts   []Record `json:"parts"`
}

// Record is one placed part in a [File]. Orientation is omitted for parts in
// the authored default orientation.
type Record struct {
	Type        string            `json:"type"`
	Position    grid.Vec          `json:"position"`
	Rotation    grid.Rotation     `json:"rotation"`
	Orientation *grid.Orientation `json:"orientation,omitempty"`
	Color       string            `json:"color,omitempty"`
}

// Serialize captures the assembly as its persisted form. Parts appear in
// placement order. The result shares no state with the assembly.
func (a *Assembly) Serialize() File {
	f := File{
		Version: FileVersion,
		Name:    a.name,
		Parts:   make([]Record, 0, len(a.order)),
	}
	for _, p := range a.Parts() {
		rec := Record{
			Type:     p.DefinitionID,
			Position: p.Position,
			Rotation: p.Rotation,
			Color:    p.Color,
		}
		if p.Orientation != grid.OrientY {
			o := p.Orientation
			rec.Orientation = &o
		}
		f.Parts = append(f.Parts, rec)
	}
	return f
}

// Load clears the assembly and replays AddPart for every record. Records
// that fail validation are skipped; their errors are joined into the return
// value while every valid record is still applied. Instance IDs are freshly
// assigned - a serialized file carries no identities.
func (a *Assembly) Load(f File) error {
	a.Clear()
	a.name = f.Name

	var errs []error
	for i, rec := range f.Parts {
		orient := grid.OrientY
		if rec.Orientation != nil {
			orient = *rec.Orientation
		}
		if _, err := a.AddPart(rec.Type, rec.Position, rec.Rotation, orient, rec.Color); err != nil {
			errs = append(errs, fmt.Errorf("part %d (%s): %w", i, rec.Type, err))
		}
	}
	return errors.Join(errs...)
}
