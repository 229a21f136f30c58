package api

import (
	"time"

	"github.com/open-agriculture/isobus-ddi/pkg/ddi"
	"github.com/open-agriculture/isobus-ddi/pkg/store"
)

// ErrorResponse is a standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Entry is a dictionary entry as served by the API.
type Entry struct {
	ddi.Entry
	Units string `json:"units"`
}

// EntryListResponse is the response for GET /api/v1/ddi and /api/v1/search.
type EntryListResponse struct {
	Entries []Entry `json:"entries"`
	Total   int     `json:"total"`
}

// FormatResponse is the response for GET /api/v1/ddi/{id}/format.
type FormatResponse struct {
	DDI       uint16 `json:"ddi"`
	Name      string `json:"name"`
	Value     int32  `json:"value"`
	Formatted string `json:"formatted"`
}

// RunListResponse is the response for GET /api/v1/runs.
type RunListResponse struct {
	Runs  []store.Run `json:"runs"`
	Total int         `json:"total"`
}

// Server is a peer found via mDNS.
type Server struct {
	Instance    string   `json:"instance"`
	Host        string   `json:"host"`
	Port        int      `json:"port"`
	Addresses   []string `json:"addresses"`
	Version     string   `json:"version"`
	APIPath     string   `json:"api_path"`
	Entries     int      `json:"entries"`
	Fingerprint string   `json:"fingerprint,omitempty"`
}

// ServerListResponse is the response for GET /api/v1/servers.
type ServerListResponse struct {
	Servers      []Server  `json:"servers"`
	DiscoveredAt time.Time `json:"discovered_at"`
	Timeout      string    `json:"timeout"`
}

func toEntry(e ddi.Entry) Entry {
	return Entry{Entry: e, Units: e.Units()}
}
