package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-agriculture/isobus-ddi/pkg/ddi"
	"github.com/open-agriculture/isobus-ddi/pkg/store"
)

var testEntries = []ddi.Entry{
	{DDI: 1, Name: "Setpoint Volume Per Area Application Rate", UnitSymbol: "mm³/m²", UnitName: "Capacity per area unit", Resolution: 0.01},
	{DDI: 141, Name: "Actual Work State", UnitName: "n.a.", Resolution: 1},
}

func newDDIAPI() *DDIAPI {
	return NewDDIAPI(ddi.NewDictionary(testEntries))
}

func serve(h http.HandlerFunc, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func TestHandleList(t *testing.T) {
	w := serve(newDDIAPI().HandleList, http.MethodGet, "/api/v1/ddi")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp EntryListResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, uint16(141), resp.Entries[1].DDI)
}

func TestHandleByID(t *testing.T) {
	a := newDDIAPI()

	tests := []struct {
		name   string
		target string
		status int
	}{
		{"decimal", "/api/v1/ddi/1", http.StatusOK},
		{"hex", "/api/v1/ddi/0x8D", http.StatusOK},
		{"unknown", "/api/v1/ddi/2", http.StatusNotFound},
		{"not a number", "/api/v1/ddi/abc", http.StatusBadRequest},
		{"out of range", "/api/v1/ddi/70000", http.StatusBadRequest},
		{"unknown action", "/api/v1/ddi/1/other", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(a.HandleByID, http.MethodGet, tt.target)
			if w.Code != tt.status {
				t.Errorf("GET %s: expected status %d, got %d", tt.target, tt.status, w.Code)
			}
		})
	}

	w := serve(a.HandleByID, http.MethodGet, "/api/v1/ddi/1")
	var e Entry
	require.NoError(t, json.NewDecoder(w.Body).Decode(&e))
	assert.Equal(t, "mm³/m² - Capacity per area unit", e.Units)
}

func TestHandleFormat(t *testing.T) {
	a := newDDIAPI()

	w := serve(a.HandleByID, http.MethodGet, "/api/v1/ddi/1/format?value=250")
	require.Equal(t, http.StatusOK, w.Code)
	var resp FormatResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, int32(250), resp.Value)
	assert.Equal(t, testEntries[0].FormatValue(250), resp.Formatted)

	w = serve(a.HandleByID, http.MethodGet, "/api/v1/ddi/1/format")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(a.HandleByID, http.MethodGet, "/api/v1/ddi/1/format?value=x")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var errResp ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&errResp))
	assert.Equal(t, "Invalid value", errResp.Error)
	assert.Equal(t, "x", errResp.Details)
}

func TestHandleSearch(t *testing.T) {
	a := newDDIAPI()

	w := serve(a.HandleSearch, http.MethodGet, "/api/v1/search?q=work")
	require.Equal(t, http.StatusOK, w.Code)
	var resp EntryListResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Actual Work State", resp.Entries[0].Name)

	w = serve(a.HandleSearch, http.MethodGet, "/api/v1/search?q=")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	a := newDDIAPI()
	for _, h := range []http.HandlerFunc{a.HandleList, a.HandleByID, a.HandleSearch} {
		w := serve(h, http.MethodPost, "/api/v1/ddi/1")
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	}
}

func newRunsAPI(t *testing.T) *RunsAPI {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	base := time.Date(2025, 1, 16, 9, 0, 0, 0, time.UTC)
	tables := map[string][]ddi.Entry{
		"run-a": testEntries[:1],
		"run-b": testEntries,
	}
	for i, id := range []string{"run-a", "run-b"} {
		started := base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, s.CreateRun(&store.Run{ID: id, SourceURL: "https://example.org", StartedAt: &started}))
		require.NoError(t, s.SaveEntries(id, tables[id]))
		require.NoError(t, s.CompleteRun(id, len(tables[id]), 0))
	}
	return NewRunsAPI(s)
}

func TestHandleRuns(t *testing.T) {
	a := newRunsAPI(t)

	w := serve(a.HandleRuns, http.MethodGet, "/api/v1/runs")
	require.Equal(t, http.StatusOK, w.Code)
	var resp RunListResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 2, resp.Total)

	w = serve(a.HandleRuns, http.MethodGet, "/api/v1/runs?limit=1")
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 1, resp.Total)

	w = serve(a.HandleRuns, http.MethodGet, "/api/v1/runs?limit=-3")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleRunByID(t *testing.T) {
	a := newRunsAPI(t)

	w := serve(a.HandleRunByID, http.MethodGet, "/api/v1/runs/run-a")
	require.Equal(t, http.StatusOK, w.Code)
	var run store.Run
	require.NoError(t, json.NewDecoder(w.Body).Decode(&run))
	assert.Equal(t, store.RunStatusCompleted, run.Status)

	w = serve(a.HandleRunByID, http.MethodGet, "/api/v1/runs/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleRunDiff(t *testing.T) {
	a := newRunsAPI(t)

	w := serve(a.HandleRunByID, http.MethodGet, "/api/v1/runs/run-b/diff")
	require.Equal(t, http.StatusOK, w.Code)
	var d store.Diff
	require.NoError(t, json.NewDecoder(w.Body).Decode(&d))
	assert.Equal(t, "run-a", d.OldRunID)
	require.Len(t, d.Added, 1)
	assert.Equal(t, uint16(141), d.Added[0].DDI)

	w = serve(a.HandleRunByID, http.MethodGet, "/api/v1/runs/run-a/diff?against=run-b")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&d))
	assert.Len(t, d.Removed, 1)
}
