package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/open-agriculture/isobus-ddi/pkg/ddi"
)

// DDIAPI serves lookups against a dictionary.
type DDIAPI struct {
	dict *ddi.Dictionary
}

// NewDDIAPI creates the lookup handlers.
func NewDDIAPI(dict *ddi.Dictionary) *DDIAPI {
	return &DDIAPI{dict: dict}
}

// HandleList handles GET /api/v1/ddi.
func (a *DDIAPI) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSONResponse(w, http.StatusOK, a.list(a.dict.Entries()))
}

// HandleByID handles GET /api/v1/ddi/{id} and GET /api/v1/ddi/{id}/format?value=N.
func (a *DDIAPI) HandleByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/v1/ddi/")
	idText, action, _ := strings.Cut(path, "/")

	id, err := strconv.ParseUint(idText, 0, 16)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid DDI", idText)
		return
	}

	switch action {
	case "":
		a.handleGet(w, uint16(id))
	case "format":
		a.handleFormat(w, r, uint16(id))
	default:
		http.NotFound(w, r)
	}
}

func (a *DDIAPI) handleGet(w http.ResponseWriter, id uint16) {
	e := a.dict.Lookup(id)
	if e.IsDefault() {
		writeJSONError(w, http.StatusNotFound, "DDI not defined", strconv.Itoa(int(id)))
		return
	}
	writeJSONResponse(w, http.StatusOK, toEntry(e))
}

func (a *DDIAPI) handleFormat(w http.ResponseWriter, r *http.Request, id uint16) {
	raw := r.URL.Query().Get("value")
	if raw == "" {
		writeJSONError(w, http.StatusBadRequest, "value is required", "")
		return
	}
	v, err := strconv.ParseInt(raw, 0, 32)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid value", raw)
		return
	}
	e := a.dict.Lookup(id)
	writeJSONResponse(w, http.StatusOK, FormatResponse{
		DDI:       id,
		Name:      e.Name,
		Value:     int32(v),
		Formatted: e.FormatValue(int32(v)),
	})
}

// HandleSearch handles GET /api/v1/search?q=text.
func (a *DDIAPI) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query().Get("q")
	if strings.TrimSpace(q) == "" {
		writeJSONError(w, http.StatusBadRequest, "q is required", "")
		return
	}
	writeJSONResponse(w, http.StatusOK, a.list(a.dict.Search(q)))
}

func (a *DDIAPI) list(entries []ddi.Entry) EntryListResponse {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntry(e))
	}
	return EntryListResponse{Entries: out, Total: len(out)}
}
