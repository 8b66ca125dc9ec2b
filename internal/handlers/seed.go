package handlers

import (
	"net/http"
)

// SeedDemo handles POST /api/admin/seed.
//
// Populates the baseline demo dataset: three owners (owner_1..owner_3, all
// accepting the shared demo password), two hostels, the rooms_v4 sample
// rooms, three B-NNN floor bookings, the guest stay history, complaints,
// notifications, and the resident dashboard state.
//
// Safe to call any number of times — the seeder is guarded by the "seeded"
// marker and reports {"status":"skipped"} once the marker exists. Pass
// ?force=true to overwrite everything back to the defaults (the marker
// timestamp is refreshed too).
func (s *Server) SeedDemo(w http.ResponseWriter, r *http.Request) {
	force := r.URL.Query().Get("force") == "true"
	res := s.Seeder.Seed(force)
	s.Log.Info("seed requested", "force", force, "status", res.Status)
	respond(w, http.StatusOK, res)
}
