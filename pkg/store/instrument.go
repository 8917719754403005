package store

import (
	"context"
	"time"

	"github.com/framegrid/framegrid/pkg/assembly"
	"github.com/framegrid/framegrid/pkg/observability"
)

// Instrument wraps a store so that every operation emits events to the
// registered [observability.StoreHooks]. backend names the wrapped
// implementation in emitted events (e.g. "redis", "file").
func Instrument(s Store, backend string) Store {
	return &instrumented{inner: s, backend: backend}
}

type instrumented struct {
	inner   Store
	backend string
}

func (s *instrumented) Save(ctx context.Context, f *assembly.File) error {
	start := time.Now()
	err := s.inner.Save(ctx, f)
	observability.Store().OnSave(ctx, s.backend, f.Name, len(f.Parts), time.Since(start), err)
	return err
}

func (s *instrumented) Load(ctx context.Context, name string) (*assembly.File, error) {
	start := time.Now()
	f, err := s.inner.Load(ctx, name)
	observability.Store().OnLoad(ctx, s.backend, name, time.Since(start), err)
	return f, err
}

func (s *instrumented) Delete(ctx context.Context, name string) error {
	err := s.inner.Delete(ctx, name)
	observability.Store().OnDelete(ctx, s.backend, name, err)
	return err
}

func (s *instrumented) List(ctx context.Context) ([]string, error) {
	return s.inner.List(ctx)
}

func (s *instrumented) Close(ctx context.Context) error {
	return s.inner.Close(ctx)
}
