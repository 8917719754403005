package cli

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/framegrid/framegrid/pkg/assembly"
	"github.com/framegrid/framegrid/pkg/bom"
	"github.com/framegrid/framegrid/pkg/catalog"
	fgerrors "github.com/framegrid/framegrid/pkg/errors"
	"github.com/framegrid/framegrid/pkg/grid"
	"github.com/framegrid/framegrid/pkg/snap"
	"github.com/framegrid/framegrid/pkg/store"
)

// api serves the HTTP surface over the core packages.
type api struct {
	catalog *catalog.Set
	store   store.Store
	logger  *log.Logger
}

func newAPI(set *catalog.Set, st store.Store, logger *log.Logger) *api {
	return &api{catalog: set, store: st, logger: logger}
}

// routes builds the router.
func (s *api) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(withLogger(req.Context(), s.logger)))
		})
	})

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/parts", s.handleParts)

		r.Route("/assemblies", func(r chi.Router) {
			r.Get("/", s.handleList)
			r.Route("/{name}", func(r chi.Router) {
				r.Get("/", s.handleGet)
				r.Put("/", s.handlePut)
				r.Delete("/", s.handleDelete)
				r.Get("/bom", s.handleBOM)
				r.Post("/snap", s.handleSnap)
			})
		})
	})

	return r
}

func (s *api) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *api) handleParts(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.catalog.All())
}

func (s *api) handleList(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, fgerrors.Wrap(fgerrors.ErrCodeStore, err, "list assemblies"))
		return
	}
	if names == nil {
		names = []string{}
	}
	s.writeJSON(w, http.StatusOK, names)
}

func (s *api) handleGet(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	f, err := s.store.Load(r.Context(), name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.writeError(w, fgerrors.New(fgerrors.ErrCodeAssemblyNotFound, "no assembly named %s", name))
			return
		}
		s.writeError(w, fgerrors.Wrap(fgerrors.ErrCodeStore, err, "load assembly"))
		return
	}
	s.writeJSON(w, http.StatusOK, f)
}

// handlePut validates the submitted assembly by replaying it, then stores
// it under the URL name. The URL name wins over the document's name field.
func (s *api) handlePut(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := fgerrors.ValidateAssemblyName(name); err != nil {
		s.writeError(w, err)
		return
	}

	var f assembly.File
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		s.writeError(w, fgerrors.Wrap(fgerrors.ErrCodeInvalidFormat, err, "decode assembly"))
		return
	}
	f.Name = name
	if f.Version == 0 {
		f.Version = assembly.FileVersion
	}
	if f.Version > assembly.FileVersion {
		s.writeError(w, fgerrors.New(fgerrors.ErrCodeInvalidFormat, "unsupported file version %d", f.Version))
		return
	}

	a := assembly.New(s.catalog, assembly.WithName(name))
	if err := a.Load(f); err != nil {
		s.writeError(w, fgerrors.Wrap(placementCode(err), err, "assembly has invalid records"))
		return
	}

	if err := s.store.Save(r.Context(), &f); err != nil {
		s.writeError(w, fgerrors.Wrap(fgerrors.ErrCodeStore, err, "save assembly"))
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"name": name, "parts": len(f.Parts)})
}

func (s *api) handleDelete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := s.store.Delete(r.Context(), name); err != nil {
		s.writeError(w, fgerrors.Wrap(fgerrors.ErrCodeStore, err, "delete assembly"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *api) handleBOM(w http.ResponseWriter, r *http.Request) {
	a, err := s.loadAssembly(r, chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, bom.Materials(a))
}

// snapRequest is the body of POST /api/assemblies/{name}/snap.
type snapRequest struct {
	Part        string         `json:"part"`
	Cursor      grid.Vec       `json:"cursor"`
	Ray         *snapRay       `json:"ray,omitempty"`
	Rotation    *grid.Rotation `json:"rotation,omitempty"`
	MaxDistance float64        `json:"max_distance,omitempty"`
	All         bool           `json:"all,omitempty"`
}

type snapRay struct {
	Origin    grid.Vec `json:"origin"`
	Direction grid.Vec `json:"direction"`
}

func (s *api) handleSnap(w http.ResponseWriter, r *http.Request) {
	a, err := s.loadAssembly(r, chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	var req snapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, fgerrors.Wrap(fgerrors.ErrCodeInvalidFormat, err, "decode snap request"))
		return
	}

	def, ok := s.catalog.Definition(req.Part)
	if !ok {
		s.writeError(w, fgerrors.New(fgerrors.ErrCodePartNotFound, "unknown part type: %s", req.Part))
		return
	}
	loggerFromContext(r.Context()).Debug("snap query", "part", req.Part, "cursor", req.Cursor)

	maxDistance := req.MaxDistance
	if maxDistance <= 0 {
		maxDistance = 6
	}
	var ray *snap.Ray
	if req.Ray != nil {
		ray = &snap.Ray{Origin: snap.PointAt(req.Ray.Origin), Direction: snap.PointAt(req.Ray.Direction)}
	}
	var fallback grid.Rotation
	if req.Rotation != nil {
		fallback = *req.Rotation
	}

	switch {
	case def.IsSupport():
		if req.All {
			s.writeJSON(w, http.StatusOK, snap.FindSnapPoints(a, def.ID, req.Cursor, maxDistance, ray))
			return
		}
		best, ok := snap.FindBestSnap(a, def.ID, req.Cursor, maxDistance, ray)
		if !ok {
			s.writeJSON(w, http.StatusOK, nil)
			return
		}
		s.writeJSON(w, http.StatusOK, best)

	case def.IsConnector():
		if req.All {
			s.writeJSON(w, http.StatusOK, snap.FindConnectorSnapPoints(a, def.ID, req.Cursor, maxDistance, ray, fallback))
			return
		}
		best, ok := snap.FindBestConnectorSnap(a, def.ID, req.Cursor, maxDistance, ray, fallback)
		if !ok {
			s.writeJSON(w, http.StatusOK, nil)
			return
		}
		s.writeJSON(w, http.StatusOK, best)

	default:
		s.writeError(w, fgerrors.New(fgerrors.ErrCodeUnsupported, "part type %s is neither a support nor a connector", req.Part))
	}
}

// loadAssembly replays the named stored assembly for read-only queries.
func (s *api) loadAssembly(r *http.Request, name string) (*assembly.Assembly, error) {
	f, err := s.store.Load(r.Context(), name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fgerrors.New(fgerrors.ErrCodeAssemblyNotFound, "no assembly named %s", name)
		}
		return nil, fgerrors.Wrap(fgerrors.ErrCodeStore, err, "load assembly")
	}

	a := assembly.New(s.catalog, assembly.WithName(name))
	if err := a.Load(*f); err != nil {
		// Stored assemblies were validated on PUT; a replay failure means
		// the catalog changed underneath them.
		return nil, fgerrors.Wrap(fgerrors.ErrCodeInternal, err, "stored assembly no longer replays")
	}
	return a, nil
}

// placementCode picks the error code that best describes a failed replay.
func placementCode(err error) fgerrors.Code {
	switch {
	case errors.Is(err, assembly.ErrUnknownPart):
		return fgerrors.ErrCodeInvalidPart
	case errors.Is(err, assembly.ErrBelowGround), errors.Is(err, assembly.ErrArmBelowGround):
		return fgerrors.ErrCodePlacementGround
	default:
		return fgerrors.ErrCodePlacementOccupied
	}
}

// writeJSON writes v as a JSON response.
func (s *api) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("write response", "err", err)
	}
}

// apiError is the JSON error body.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError maps an error to an HTTP status via its error code and writes
// the JSON error body.
func (s *api) writeError(w http.ResponseWriter, err error) {
	code := fgerrors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case fgerrors.ErrCodeInvalidInput, fgerrors.ErrCodeInvalidPart, fgerrors.ErrCodeInvalidFormat,
		fgerrors.ErrCodeInvalidName, fgerrors.ErrCodeInvalidRotation:
		status = http.StatusBadRequest
	case fgerrors.ErrCodePlacementOccupied, fgerrors.ErrCodePlacementGround:
		status = http.StatusUnprocessableEntity
	case fgerrors.ErrCodeNotFound, fgerrors.ErrCodePartNotFound, fgerrors.ErrCodeAssemblyNotFound,
		fgerrors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case fgerrors.ErrCodeStore:
		status = http.StatusBadGateway
	case fgerrors.ErrCodeUnsupported:
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	s.writeJSON(w, status, apiError{Code: string(code), Message: fgerrors.UserMessage(err)})
}
