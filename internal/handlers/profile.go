package handlers

import (
	"net/http"
	"strings"

	"github.com/praneeth-grandhi/Hostel-Management/internal/data"
	"github.com/praneeth-grandhi/Hostel-Management/internal/models"
)

// PasswordChangeRequest is the body of POST /api/profile/password.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// GetProfile handles GET /api/profile. An unset profile reads back as an
// empty record rather than a 404 — the settings form starts blank either
// way.
func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	var p models.Profile
	s.Store.Get(data.KeyProfile, &p)
	respond(w, http.StatusOK, p)
}

// SaveProfile handles PUT /api/profile, replacing the singleton profile
// record wholesale.
func (s *Server) SaveProfile(w http.ResponseWriter, r *http.Request) {
	var p models.Profile
	if err := decode(r, &p); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if strings.TrimSpace(p.FirstName) == "" || strings.TrimSpace(p.LastName) == "" {
		respondError(w, http.StatusBadRequest, "first and last name are required")
		return
	}
	if p.Email != "" && !emailPattern.MatchString(strings.ToLower(p.Email)) {
		respondError(w, http.StatusBadRequest, "enter a valid email")
		return
	}
	s.Store.Set(data.KeyProfile, p)
	respond(w, http.StatusOK, p)
}

// ChangePassword handles POST /api/profile/password. The profile record
// carries no credential — validation mirrors the settings form and the
// change itself is acknowledged without storage, matching the demo account
// model.
func (s *Server) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req PasswordChangeRequest
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.CurrentPassword == "" {
		respondError(w, http.StatusBadRequest, "current password is required")
		return
	}
	if len(req.NewPassword) < 6 {
		respondError(w, http.StatusBadRequest, "new password must be at least 6 characters")
		return
	}
	if req.NewPassword != req.ConfirmPassword {
		respondError(w, http.StatusBadRequest, "passwords do not match")
		return
	}
	respond(w, http.StatusOK, map[string]bool{"changed": true})
}

// DeleteProfile handles DELETE /api/profile: the account-deletion flow
// removes the profile record and the session record, then broadcasts so
// every session reader observes the sign-out.
func (s *Server) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	s.Store.Remove(data.KeyProfile)
	s.Sessions.SignOut()
	respond(w, http.StatusOK, map[string]bool{"deleted": true})
}
