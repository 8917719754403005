package store

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/framegrid/framegrid/pkg/assembly"
	"github.com/framegrid/framegrid/pkg/catalog"
	"github.com/framegrid/framegrid/pkg/grid"
	"github.com/framegrid/framegrid/pkg/observability"
)

func sampleFile(t *testing.T, name string) *assembly.File {
	t.Helper()
	a := assembly.New(catalog.Builtin(), assembly.WithName(name))
	if _, err := a.AddPart("support-4", grid.V(0, 0, 0), grid.Rotation{}, grid.OrientY, ""); err != nil {
		t.Fatalf("AddPart: %v", err)
	}
	f := a.Serialize()
	return &f
}

// backends returns a fresh instance of each locally testable store.
func backends(t *testing.T) map[string]Store {
	t.Helper()
	fileStore, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	return map[string]Store{
		"memory": NewMemory(),
		"file":   fileStore,
	}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()

	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			orig := sampleFile(t, "workbench")
			if err := st.Save(ctx, orig); err != nil {
				t.Fatalf("Save: %v", err)
			}

			got, err := st.Load(ctx, "workbench")
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if got.Name != "workbench" {
				t.Errorf("Name = %q, want %q", got.Name, "workbench")
			}
			if len(got.Parts) != len(orig.Parts) {
				t.Fatalf("len(Parts) = %d, want %d", len(got.Parts), len(orig.Parts))
			}
			if got.Parts[0] != orig.Parts[0] {
				t.Errorf("Parts[0] = %+v, want %+v", got.Parts[0], orig.Parts[0])
			}
		})
	}
}

func TestStoreLoadMissing(t *testing.T) {
	ctx := context.Background()

	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := st.Load(ctx, "nope"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Load(missing) error = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestStoreSaveOverwrites(t *testing.T) {
	ctx := context.Background()

	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := st.Save(ctx, sampleFile(t, "rack")); err != nil {
				t.Fatalf("Save: %v", err)
			}

			// Second save under the same name replaces the document.
			updated := sampleFile(t, "rack")
			updated.Parts = nil
			if err := st.Save(ctx, updated); err != nil {
				t.Fatalf("Save: %v", err)
			}

			got, err := st.Load(ctx, "rack")
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if len(got.Parts) != 0 {
				t.Errorf("len(Parts) = %d, want 0 after overwrite", len(got.Parts))
			}
		})
	}
}

func TestStoreDeleteAndList(t *testing.T) {
	ctx := context.Background()

	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for _, n := range []string{"zeta", "alpha", "mid"} {
				if err := st.Save(ctx, sampleFile(t, n)); err != nil {
					t.Fatalf("Save(%s): %v", n, err)
				}
			}

			names, err := st.List(ctx)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			want := []string{"alpha", "mid", "zeta"}
			if !slices.Equal(names, want) {
				t.Errorf("List() = %v, want %v", names, want)
			}

			if err := st.Delete(ctx, "mid"); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if _, err := st.Load(ctx, "mid"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Load(deleted) error = %v, want ErrNotFound", err)
			}

			// Deleting a missing name is not an error.
			if err := st.Delete(ctx, "mid"); err != nil {
				t.Errorf("Delete(missing) = %v, want nil", err)
			}
		})
	}
}

func TestStoreRejectsInvalidName(t *testing.T) {
	ctx := context.Background()

	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			bad := &assembly.File{Version: assembly.FileVersion, Name: "../escape"}
			if err := st.Save(ctx, bad); err == nil {
				t.Error("Save with traversal name should fail")
			}

			empty := &assembly.File{Version: assembly.FileVersion}
			if err := st.Save(ctx, empty); err == nil {
				t.Error("Save with empty name should fail")
			}
		})
	}
}

// recordingStoreHooks captures store events for assertions.
type recordingStoreHooks struct {
	observability.NoopStoreHooks
	saves   int
	loads   int
	deletes int
}

func (h *recordingStoreHooks) OnSave(ctx context.Context, backend, name string, parts int, d time.Duration, err error) {
	h.saves++
}

func (h *recordingStoreHooks) OnLoad(ctx context.Context, backend, name string, d time.Duration, err error) {
	h.loads++
}

func (h *recordingStoreHooks) OnDelete(ctx context.Context, backend, name string, err error) {
	h.deletes++
}

func TestInstrumentEmitsStoreEvents(t *testing.T) {
	ctx := context.Background()
	hooks := &recordingStoreHooks{}
	observability.SetStoreHooks(hooks)
	defer observability.Reset()

	st := Instrument(NewMemory(), "memory")

	if err := st.Save(ctx, sampleFile(t, "workbench")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := st.Load(ctx, "workbench"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := st.Delete(ctx, "workbench"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if hooks.saves != 1 || hooks.loads != 1 || hooks.deletes != 1 {
		t.Errorf("events = %d saves, %d loads, %d deletes; want 1 each",
			hooks.saves, hooks.loads, hooks.deletes)
	}
}
