// Package server exposes a loaded game session over HTTP: JSON endpoints
// for the identified text tables and decoded records, plus a websocket feed
// broadcasting every decode to connected viewers.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/retroenv/retrogolib/log"

	"github.com/Creative-Genius2/LinkPlay/internal/header"
	"github.com/Creative-Genius2/LinkPlay/internal/session"
)

// Server serves one session.
type Server struct {
	logger  *log.Logger
	session *session.Session
	info    *header.Info
	router  *mux.Router
	hub     *hub
}

// New creates a server for a bootstrapped session. The header info is
// optional, it is only known when a cartridge image was given.
func New(logger *log.Logger, sess *session.Session, info *header.Info) *Server {
	s := &Server{
		logger:  logger,
		session: sess,
		info:    info,
		router:  mux.NewRouter(),
		hub:     newHub(logger),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.HandleFunc("/ws", s.hub.handleWebsocket)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/game", s.handleGame).Methods(http.MethodGet)
	api.HandleFunc("/header", s.handleHeader).Methods(http.MethodGet)
	api.HandleFunc("/tables", s.handleTables).Methods(http.MethodGet)
	api.HandleFunc("/tables/{key}", s.handleTable).Methods(http.MethodGet)
	api.HandleFunc("/tables/{key}/{index:[0-9]+}", s.handleTableEntry).Methods(http.MethodGet)
	api.HandleFunc("/entries/{ref:.+}", s.handleEntry).Methods(http.MethodGet)
}

// Handler returns the root HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until the context is canceled.
func (s *Server) Run(ctx context.Context, addr string) error {
	go s.hub.run(ctx)

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Info("server listening", log.String("addr", addr))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving: %w", err)
	}
}

type gameResponse struct {
	GameCode   string         `json:"game_code"`
	Title      string         `json:"title"`
	Generation int            `json:"generation"`
	Mult       string         `json:"text_key_mult,omitempty"`
	Tables     map[string]int `json:"tables"`
}

func (s *Server) handleGame(w http.ResponseWriter, _ *http.Request) {
	profile := s.session.Profile()
	resp := gameResponse{
		GameCode:   profile.Code,
		Title:      profile.Title,
		Generation: profile.Generation,
		Tables:     map[string]int{},
	}
	if mult := s.session.Mult(); mult != 0 {
		resp.Mult = fmt.Sprintf("0x%04X", mult)
	}
	for alias, idx := range s.session.Aliases() {
		resp.Tables[string(alias)] = idx
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHeader(w http.ResponseWriter, _ *http.Request) {
	if s.info == nil {
		s.writeError(w, http.StatusNotFound, errors.New("no cartridge image loaded"))
		return
	}
	s.writeJSON(w, http.StatusOK, s.info)
}

type tablesResponse struct {
	Count   int            `json:"count"`
	Indices []int          `json:"indices"`
	Aliases map[string]int `json:"aliases"`
}

func (s *Server) handleTables(w http.ResponseWriter, _ *http.Request) {
	resp := tablesResponse{
		Indices: s.session.TableIndices(),
		Aliases: map[string]int{},
	}
	resp.Count = len(resp.Indices)
	for alias, idx := range s.session.Aliases() {
		resp.Aliases[string(alias)] = idx
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	entries, ok := s.session.Table(key)
	if !ok {
		s.writeError(w, http.StatusNotFound, fmt.Errorf("table %q not found", key))
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"table":   key,
		"count":   len(entries),
		"entries": entries,
	})
}

func (s *Server) handleTableEntry(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	key := vars["key"]
	entries, ok := s.session.Table(key)
	if !ok {
		s.writeError(w, http.StatusNotFound, fmt.Errorf("table %q not found", key))
		return
	}

	var index int
	if _, err := fmt.Sscanf(vars["index"], "%d", &index); err != nil || index >= len(entries) {
		s.writeError(w, http.StatusNotFound, fmt.Errorf("table %q has no entry %s", key, vars["index"]))
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"table": key,
		"index": index,
		"entry": entries[index],
	})
}

type entryResponse struct {
	Path   string `json:"path"`
	Index  int    `json:"index"`
	Role   string `json:"role"`
	Kind   string `json:"compression"`
	Size   int    `json:"size"`
	Record any    `json:"record,omitempty"`
	Hex    string `json:"hex,omitempty"`
}

func (s *Server) handleEntry(w http.ResponseWriter, r *http.Request) {
	ref := mux.Vars(r)["ref"]
	entry, err := s.session.EntryByRef(r.Context(), ref)
	if err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return
	}

	resp := entryResponse{
		Path:  entry.Path,
		Index: entry.Index,
		Role:  entry.Role.String(),
		Kind:  entry.Kind.String(),
		Size:  len(entry.Raw),
	}
	if entry.Record != nil {
		resp.Record = entry.Record
	} else {
		// No structured layout, fall back to a bounded hex dump.
		resp.Hex = hexDump(entry.Raw, 0, 512)
	}

	s.hub.publish(event{
		Type: "decode",
		Ref:  ref,
		Role: entry.Role.String(),
	})
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("encoding response", log.Err(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
