package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/praneeth-grandhi/Hostel-Management/internal/models"
	"github.com/praneeth-grandhi/Hostel-Management/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// CreateOwnerRequest is the body of POST /api/owners.
type CreateOwnerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	IsSuper   bool   `json:"isSuper"`
}

// ListOwners handles GET /api/owners.
func (s *Server) ListOwners(w http.ResponseWriter, r *http.Request) {
	owners := s.Cols.Owners.LoadAll()
	out := make([]models.Owner, len(owners))
	for i, o := range owners {
		out[i] = o.Sanitized()
	}
	respond(w, http.StatusOK, out)
}

// CreateOwner handles POST /api/owners.
//
// Email uniqueness is enforced here, at write time, by a case-insensitive
// linear scan — there is no index underneath, so this is the only guard. A
// collision is a validation-style rejection (409), not a server error, and
// leaves the collection untouched.
func (s *Server) CreateOwner(w http.ResponseWriter, r *http.Request) {
	var req CreateOwnerRequest
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if req.FirstName == "" || req.LastName == "" {
		respondError(w, http.StatusBadRequest, "first and last name are required")
		return
	}
	if !emailPattern.MatchString(req.Email) {
		respondError(w, http.StatusBadRequest, "enter a valid email")
		return
	}
	if len(req.Password) < 6 {
		respondError(w, http.StatusBadRequest, "password must be at least 6 characters")
		return
	}

	for _, o := range s.Cols.Owners.LoadAll() {
		if strings.EqualFold(o.Email, req.Email) {
			respondError(w, http.StatusConflict, "an owner with this email already exists")
			return
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	role := models.OwnerRoleOwner
	if req.IsSuper {
		role = models.OwnerRoleSuper
	}

	owner := models.Owner{
		ID:           store.NewID("owner"),
		Role:         role,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Documents:    []string{},
		CreatedAt:    time.Now().UTC(),
	}
	s.Cols.Owners.Upsert(owner)

	respond(w, http.StatusCreated, owner.Sanitized())
}

// DeleteOwner handles DELETE /api/owners/{id}. Hostels referencing the owner
// keep their stored id — relationships are identifiers only, with no
// integrity enforcement.
func (s *Server) DeleteOwner(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !s.Cols.Owners.Remove(id) {
		respondError(w, http.StatusNotFound, "owner not found")
		return
	}
	respond(w, http.StatusOK, map[string]bool{"deleted": true})
}
