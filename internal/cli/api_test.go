package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/framegrid/framegrid/pkg/assembly"
	"github.com/framegrid/framegrid/pkg/bom"
	"github.com/framegrid/framegrid/pkg/catalog"
	"github.com/framegrid/framegrid/pkg/grid"
	"github.com/framegrid/framegrid/pkg/store"
)

func newTestAPI(t *testing.T) http.Handler {
	t.Helper()
	s := newAPI(catalog.Builtin(), store.NewMemory(), newLogger(io.Discard, log.ErrorLevel))
	return s.routes()
}

func doRequest(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, r)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func validFile(t *testing.T) assembly.File {
	t.Helper()
	a := assembly.New(catalog.Builtin(), assembly.WithName("workbench"))
	if _, err := a.AddPart("support-4", grid.V(0, 0, 0), grid.Rotation{}, grid.OrientY, ""); err != nil {
		t.Fatalf("AddPart: %v", err)
	}
	if _, err := a.AddPart("connector-3d6w", grid.V(0, 4, 0), grid.Rotation{}, grid.OrientY, ""); err != nil {
		t.Fatalf("AddPart: %v", err)
	}
	return a.Serialize()
}

func TestAPIHealth(t *testing.T) {
	h := newTestAPI(t)
	rec := doRequest(t, h, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestAPIParts(t *testing.T) {
	h := newTestAPI(t)
	rec := doRequest(t, h, http.MethodGet, "/api/parts", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var defs []catalog.Definition
	if err := json.Unmarshal(rec.Body.Bytes(), &defs); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(defs) == 0 {
		t.Error("parts listing should not be empty")
	}
}

func TestAPIAssemblyLifecycle(t *testing.T) {
	h := newTestAPI(t)
	f := validFile(t)

	// Put
	rec := doRequest(t, h, http.MethodPut, "/api/assemblies/workbench/", f)
	if rec.Code != http.StatusOK {
		t.Fatalf("put status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	// List
	rec = doRequest(t, h, http.MethodGet, "/api/assemblies/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200", rec.Code)
	}
	var names []string
	if err := json.Unmarshal(rec.Body.Bytes(), &names); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(names) != 1 || names[0] != "workbench" {
		t.Errorf("names = %v, want [workbench]", names)
	}

	// Get
	rec = doRequest(t, h, http.MethodGet, "/api/assemblies/workbench/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d, want 200", rec.Code)
	}
	var got assembly.File
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode assembly: %v", err)
	}
	if len(got.Parts) != len(f.Parts) {
		t.Errorf("len(Parts) = %d, want %d", len(got.Parts), len(f.Parts))
	}

	// Delete
	rec = doRequest(t, h, http.MethodDelete, "/api/assemblies/workbench/", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", rec.Code)
	}
	rec = doRequest(t, h, http.MethodGet, "/api/assemblies/workbench/", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", rec.Code)
	}
}

func TestAPIPutRejectsInvalidAssembly(t *testing.T) {
	h := newTestAPI(t)

	// Two hubs on the same cell collide.
	f := assembly.File{
		Version: assembly.FileVersion,
		Parts: []assembly.Record{
			{Type: "connector-3d6w", Position: grid.V(0, 1, 0)},
			{Type: "connector-3d6w", Position: grid.V(0, 1, 0)},
		},
	}

	rec := doRequest(t, h, http.MethodPut, "/api/assemblies/bad/", f)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422: %s", rec.Code, rec.Body.String())
	}
}

func TestAPIPutRejectsUnknownPart(t *testing.T) {
	h := newTestAPI(t)

	f := assembly.File{
		Version: assembly.FileVersion,
		Parts:   []assembly.Record{{Type: "no-such-part", Position: grid.V(0, 0, 0)}},
	}

	rec := doRequest(t, h, http.MethodPut, "/api/assemblies/bad/", f)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}

	var apiErr apiError
	if err := json.Unmarshal(rec.Body.Bytes(), &apiErr); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if apiErr.Code != "INVALID_PART" {
		t.Errorf("error code = %q, want INVALID_PART", apiErr.Code)
	}
}

func TestAPIPutRejectsBadName(t *testing.T) {
	h := newTestAPI(t)
	rec := doRequest(t, h, http.MethodPut, "/api/assemblies/a..b/", validFile(t))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}
}

func TestAPIBOM(t *testing.T) {
	h := newTestAPI(t)
	rec := doRequest(t, h, http.MethodPut, "/api/assemblies/workbench/", validFile(t))
	if rec.Code != http.StatusOK {
		t.Fatalf("put status = %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, h, http.MethodGet, "/api/assemblies/workbench/bom", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("bom status = %d, want 200", rec.Code)
	}

	var entries []bom.Entry
	if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
		t.Fatalf("decode bom: %v", err)
	}
	if len(entries) == 0 {
		t.Error("bom should not be empty")
	}
}

func TestAPISnap(t *testing.T) {
	h := newTestAPI(t)
	rec := doRequest(t, h, http.MethodPut, "/api/assemblies/workbench/", validFile(t))
	if rec.Code != http.StatusOK {
		t.Fatalf("put status = %d: %s", rec.Code, rec.Body.String())
	}

	// A beam dragged near the hub on top of the assembly should find the
	// hub's open sockets.
	req := snapRequest{Part: "support-2", Cursor: grid.V(1, 4, 0), All: true}
	rec = doRequest(t, h, http.MethodPost, "/api/assemblies/workbench/snap", req)
	if rec.Code != http.StatusOK {
		t.Fatalf("snap status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var points []json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &points); err != nil {
		t.Fatalf("decode snap points: %v", err)
	}
	if len(points) == 0 {
		t.Error("snap query should find the hub's open sockets")
	}
}

func TestAPISnapUnknownPart(t *testing.T) {
	h := newTestAPI(t)
	rec := doRequest(t, h, http.MethodPut, "/api/assemblies/workbench/", validFile(t))
	if rec.Code != http.StatusOK {
		t.Fatalf("put status = %d: %s", rec.Code, rec.Body.String())
	}

	req := snapRequest{Part: "no-such-part", Cursor: grid.V(0, 0, 0)}
	rec = doRequest(t, h, http.MethodPost, "/api/assemblies/workbench/snap", req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404: %s", rec.Code, rec.Body.String())
	}
}
