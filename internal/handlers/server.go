// Package handlers contains the HTTP handler logic for the hostel management
// API.
//
// All handler files share the one "handlers" package so they can use each
// other's helpers without exporting them; files are split by domain (auth,
// owners, hostels, rooms, bookings, ...) purely for readability. The central
// type is Server: it holds the shared dependencies every handler needs, so
// tests can spin up many independent Server instances over in-memory storage
// without state leaking between them.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/praneeth-grandhi/Hostel-Management/internal/data"
	"github.com/praneeth-grandhi/Hostel-Management/internal/seed"
	"github.com/praneeth-grandhi/Hostel-Management/internal/session"
	"github.com/praneeth-grandhi/Hostel-Management/internal/store"
)

// Server holds shared dependencies for all handlers.
type Server struct {
	Store    *store.Store
	Cols     *data.Collections
	Sessions *session.Sessions
	Seeder   *seed.Manager
	Secret   string
	Log      *slog.Logger
}

// NewServer wires a Server. A nil logger falls back to slog.Default().
func NewServer(st *store.Store, cols *data.Collections, sess *session.Sessions, seeder *seed.Manager, secret string, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{Store: st, Cols: cols, Sessions: sess, Seeder: seeder, Secret: secret, Log: log}
}

// respond writes v as JSON with the given status code. The encode error is
// ignored: if the client disconnected mid-write there is nothing useful left
// to do.
func respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// respondError sends a JSON object with a single "error" key.
func respondError(w http.ResponseWriter, status int, msg string) {
	respond(w, status, map[string]string{"error": msg})
}

// decode reads and parses a JSON request body into v.
func decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
