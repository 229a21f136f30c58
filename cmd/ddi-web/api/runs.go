package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/open-agriculture/isobus-ddi/pkg/store"
)

// RunsAPI exposes the generation history.
type RunsAPI struct {
	store *store.Store
}

// NewRunsAPI creates the history handlers.
func NewRunsAPI(s *store.Store) *RunsAPI {
	return &RunsAPI{store: s}
}

// HandleRuns handles GET /api/v1/runs?limit=N.
func (a *RunsAPI) HandleRuns(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	limit := 100
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			writeJSONError(w, http.StatusBadRequest, "Invalid limit", s)
			return
		}
		limit = n
	}

	runs, err := a.store.ListRuns(limit)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Failed to list runs", err.Error())
		return
	}
	if runs == nil {
		runs = []store.Run{}
	}
	writeJSONResponse(w, http.StatusOK, RunListResponse{Runs: runs, Total: len(runs)})
}

// HandleRunByID handles GET /api/v1/runs/{id} and
// GET /api/v1/runs/{id}/diff?against={other}.
func (a *RunsAPI) HandleRunByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/v1/runs/")
	if id, ok := strings.CutSuffix(path, "/diff"); ok {
		a.handleDiff(w, r, id)
		return
	}
	a.handleGetRun(w, path)
}

func (a *RunsAPI) handleGetRun(w http.ResponseWriter, id string) {
	run, err := a.store.GetRun(id)
	if errors.Is(err, store.ErrNotFound) {
		writeJSONError(w, http.StatusNotFound, "Run not found", id)
		return
	}
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Failed to get run", err.Error())
		return
	}
	writeJSONResponse(w, http.StatusOK, run)
}

// handleDiff compares id with the run given in ?against=, or with the
// latest completed run before it.
func (a *RunsAPI) handleDiff(w http.ResponseWriter, r *http.Request, id string) {
	against := r.URL.Query().Get("against")
	if against == "" {
		prev, err := a.store.LatestCompleted(id)
		if errors.Is(err, store.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "No run to compare with", id)
			return
		}
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, "Failed to find previous run", err.Error())
			return
		}
		against = prev.ID
	}

	d, err := a.store.Diff(against, id)
	if errors.Is(err, store.ErrNotFound) {
		writeJSONError(w, http.StatusNotFound, "Run not found", err.Error())
		return
	}
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Failed to diff runs", err.Error())
		return
	}
	writeJSONResponse(w, http.StatusOK, d)
}
