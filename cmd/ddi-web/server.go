package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/open-agriculture/isobus-ddi/cmd/ddi-web/api"
	"github.com/open-agriculture/isobus-ddi/pkg/ddi"
	"github.com/open-agriculture/isobus-ddi/pkg/discovery"
	"github.com/open-agriculture/isobus-ddi/pkg/store"
	"github.com/open-agriculture/isobus-ddi/pkg/version"
)

// ServerConfig holds configuration for the HTTP server.
type ServerConfig struct {
	Listen string

	// DBPath of the history database. When set, the table of the latest
	// completed run is served and the runs endpoints are enabled.
	DBPath string

	// Advertise announces the server via mDNS under Instance.
	Advertise bool
	Instance  string

	Logger *slog.Logger
}

// advertiser is satisfied by *discovery.Advertiser.
type advertiser interface {
	Advertise(info *discovery.Info) error
	Stop()
}

// Server is the HTTP server for DDI lookups.
type Server struct {
	config ServerConfig
	mux    *http.ServeMux
	server *http.Server
	logger *slog.Logger

	dict        *ddi.Dictionary
	fingerprint string
	store       *store.Store
	ddiAPI      *api.DDIAPI
	runsAPI     *api.RunsAPI
	finder      api.Finder
	advertiser  advertiser
}

// NewServer creates a new server with the given configuration.
func NewServer(cfg ServerConfig) (*Server, error) {
	s := &Server{
		config:     cfg,
		mux:        http.NewServeMux(),
		logger:     cfg.Logger,
		dict:       ddi.Standard(),
		finder:     discovery.NewBrowser(discovery.Config{}),
		advertiser: discovery.NewAdvertiser(discovery.Config{}),
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	if cfg.DBPath != "" {
		st, err := store.Open(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize store: %w", err)
		}
		s.store = st
		if err := s.loadLatest(); err != nil {
			st.Close()
			return nil, err
		}
		s.runsAPI = api.NewRunsAPI(st)
	}
	s.ddiAPI = api.NewDDIAPI(s.dict)

	s.registerRoutes()

	s.server = &http.Server{
		Addr:              cfg.Listen,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// loadLatest switches to the table of the latest completed run, if any.
func (s *Server) loadLatest() error {
	run, err := s.store.LatestCompleted("")
	if errors.Is(err, store.ErrNotFound) {
		s.logger.Info("history is empty, serving the built-in table")
		return nil
	}
	if err != nil {
		return fmt.Errorf("latest run: %w", err)
	}
	entries, err := s.store.Entries(run.ID)
	if err != nil {
		return fmt.Errorf("entries of run %s: %w", run.ID, err)
	}
	if len(entries) == 0 {
		return nil
	}
	s.dict = ddi.NewDictionary(entries)
	s.fingerprint = run.Fingerprint
	s.logger.Info("serving table from history", "run_id", run.ID, "entries", len(entries))
	return nil
}

// registerRoutes sets up all HTTP routes.
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/api/v1/health", s.handleHealth)
	s.mux.HandleFunc("/api/v1/servers", s.handleServers)

	s.mux.HandleFunc("/api/v1/ddi", s.ddiAPI.HandleList)
	s.mux.HandleFunc("/api/v1/ddi/", s.ddiAPI.HandleByID)
	s.mux.HandleFunc("/api/v1/search", s.ddiAPI.HandleSearch)

	if s.runsAPI != nil {
		s.mux.HandleFunc("/api/v1/runs", s.runsAPI.HandleRuns)
		s.mux.HandleFunc("/api/v1/runs/", s.runsAPI.HandleRunByID)
	}
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	resp := map[string]string{
		"status":  "ok",
		"version": version.Current,
		"entries": strconv.Itoa(s.dict.Len()),
	}
	if s.fingerprint != "" {
		resp["fingerprint"] = s.fingerprint
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleServers lists other DDI servers on the local network.
func (s *Server) handleServers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, api.DiscoverServers(r.Context(), s.finder, r.URL.Query().Get("timeout")))
}

// Serve accepts connections on l until ctx is done, advertising the
// server while it runs when configured to.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	if s.config.Advertise {
		info := &discovery.Info{
			Instance:    s.config.Instance,
			Port:        l.Addr().(*net.TCPAddr).Port,
			Version:     version.Current,
			APIPath:     discovery.DefaultAPIPath,
			Entries:     s.dict.Len(),
			Fingerprint: s.fingerprint,
		}
		if err := s.advertiser.Advertise(info); err != nil {
			s.logger.Warn("mDNS advertisement failed", "error", err)
		} else {
			s.logger.Info("advertising", "instance", info.Instance, "service", discovery.ServiceType)
			defer s.advertiser.Stop()
		}
	}

	errCh := make(chan error, 1)
	go func() { errCh <- s.server.Serve(l) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.server.Shutdown(shutdownCtx)
	}
}

// Close closes the store.
func (s *Server) Close() error {
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
