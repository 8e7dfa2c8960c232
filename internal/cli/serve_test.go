package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/planfab/interio/pkg/cache"
	"github.com/planfab/interio/pkg/pipeline"
)

const testTreeDoc = `{
	"id": "root",
	"content_type": "nested",
	"division": "vertical",
	"height": {"mode": "ratio", "ratio": 1},
	"children": [
		{"id": "a", "content_type": "shelves", "height": {"mode": "ratio", "ratio": 1}, "shelves": {"mode": "uniform", "count": 2, "depth_preset": "full"}},
		{"id": "b", "content_type": "empty", "height": {"mode": "ratio", "ratio": 1}}
	],
	"partitions": [{"id": "p1", "enabled": true, "depth_preset": "full"}]
}`

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	return newTestServerWithCache(t, cache.NewNullCache())
}

func newTestServerWithCache(t *testing.T, store cache.Cache) http.Handler {
	t.Helper()
	c := New(os.Stderr, log.ErrorLevel)
	runner := pipeline.NewRunner(store, nil, c.Logger)
	srv := &apiServer{runner: runner, cli: c}
	return srv.routes()
}

func TestServeHealth(t *testing.T) {
	h := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /healthz = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status = %q, want ok", body["status"])
	}
}

func TestServeSolve(t *testing.T) {
	h := newTestServer(t)

	reqBody := `{"tree": ` + testTreeDoc + `, "options": {"cabinet_width_mm": 900}}`
	req := httptest.NewRequest(http.MethodPost, "/v1/solve", strings.NewReader(reqBody))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("POST /v1/solve = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		TreeHash string             `json:"tree_hash"`
		Solution *pipeline.Solution `json:"solution"`
		Cached   bool               `json:"cached"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.TreeHash == "" {
		t.Error("tree_hash should not be empty")
	}
	if body.Solution == nil {
		t.Fatal("solution should not be nil")
	}
	if body.Solution.CabinetWidthMM != 900 {
		t.Errorf("cabinet width = %v, want 900", body.Solution.CabinetWidthMM)
	}
	if len(body.Solution.Zones) != 2 {
		t.Errorf("got %d leaf zones, want 2", len(body.Solution.Zones))
	}
}

func TestServeValidate(t *testing.T) {
	h := newTestServer(t)

	reqBody := `{"tree": ` + testTreeDoc + `}`
	req := httptest.NewRequest(http.MethodPost, "/v1/validate", strings.NewReader(reqBody))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("POST /v1/validate = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		OK     bool  `json:"ok"`
		Issues []any `json:"issues"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.OK {
		t.Errorf("validation should pass, issues: %v", body.Issues)
	}
}

func TestServeTreeRoundTrip(t *testing.T) {
	store, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error: %v", err)
	}
	h := newTestServerWithCache(t, store)

	reqBody := `{"tree": ` + testTreeDoc + `}`
	req := httptest.NewRequest(http.MethodPost, "/v1/solve", strings.NewReader(reqBody))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("POST /v1/solve = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	var solveResp struct {
		TreeHash string `json:"tree_hash"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &solveResp); err != nil {
		t.Fatalf("decode solve response: %v", err)
	}
	if solveResp.TreeHash == "" {
		t.Fatal("tree_hash should not be empty")
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/trees/"+solveResp.TreeHash, nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /v1/trees/{hash} = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	var tree struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &tree); err != nil {
		t.Fatalf("decode stored tree: %v", err)
	}
	if tree.ID != "root" {
		t.Errorf("stored tree id = %q, want root", tree.ID)
	}
}

func TestServeTreeNotFound(t *testing.T) {
	h := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/trees/deadbeef", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("GET /v1/trees/deadbeef = %d, want 404", rec.Code)
	}
}

func TestServeCommandRedisFlag(t *testing.T) {
	c := New(os.Stderr, log.ErrorLevel)
	cmd := c.serveCommand()

	if cmd.Flags().Lookup("redis") == nil {
		t.Fatal("serve command should register the --redis flag")
	}
}

func TestServeBadRequests(t *testing.T) {
	h := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"tree": `},
		{"missing tree", `{"options": {}}`},
		{"bad tree", `{"tree": {"content_type": "empty"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/solve", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode error response: %v", err)
			}
			if resp.Error == "" {
				t.Error("error message should not be empty")
			}
		})
	}
}
