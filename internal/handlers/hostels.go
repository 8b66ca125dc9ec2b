package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/praneeth-grandhi/Hostel-Management/internal/models"
	"github.com/praneeth-grandhi/Hostel-Management/internal/store"
)

// HostelRequest is the body for hostel create and update. Amenities accepts
// both the canonical array form and the legacy comma-separated string.
type HostelRequest struct {
	Name          string           `json:"name"`
	Address       string           `json:"address"`
	ContactPhone  string           `json:"contactPhone"`
	ContactEmail  string           `json:"contactEmail"`
	TotalRooms    int              `json:"totalRooms"`
	Floors        int              `json:"floors"`
	BusinessHours string           `json:"businessHours"`
	Description   string           `json:"description"`
	Amenities     models.Amenities `json:"amenities"`
	Owners        []string         `json:"owners"`
}

// ListHostels handles GET /api/hostels. This is the one admin collection
// also served publicly — the marketing site lists properties to anonymous
// visitors.
func (s *Server) ListHostels(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, s.Cols.Hostels.LoadAll())
}

// CreateHostel handles POST /api/hostels.
func (s *Server) CreateHostel(w http.ResponseWriter, r *http.Request) {
	var req HostelRequest
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := validateHostel(req); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	h := hostelFromRequest(req)
	h.ID = store.NewID("h")
	h.CreatedAt = time.Now().UTC()
	s.Cols.Hostels.Upsert(h)

	respond(w, http.StatusCreated, models.NormalizeHostel(h))
}

// UpdateHostel handles PUT /api/hostels/{id}. The stored record is replaced
// wholesale — record mutation is always full-record replacement here, never
// a field merge.
func (s *Server) UpdateHostel(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	existing, ok := s.Cols.Hostels.Find(id)
	if !ok {
		respondError(w, http.StatusNotFound, "hostel not found")
		return
	}

	var req HostelRequest
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := validateHostel(req); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	h := hostelFromRequest(req)
	h.ID = existing.ID
	h.Status = existing.Status
	h.CreatedAt = existing.CreatedAt
	h.UpdatedAt = time.Now().UTC()
	s.Cols.Hostels.Upsert(h)

	respond(w, http.StatusOK, models.NormalizeHostel(h))
}

// DeleteHostel handles DELETE /api/hostels/{id}.
func (s *Server) DeleteHostel(w http.ResponseWriter, r *http.Request) {
	if !s.Cols.Hostels.Remove(r.PathValue("id")) {
		respondError(w, http.StatusNotFound, "hostel not found")
		return
	}
	respond(w, http.StatusOK, map[string]bool{"deleted": true})
}

func validateHostel(req HostelRequest) string {
	if strings.TrimSpace(req.Name) == "" {
		return "hostel name is required"
	}
	if strings.TrimSpace(req.Address) == "" {
		return "address is required"
	}
	return ""
}

func hostelFromRequest(req HostelRequest) models.Hostel {
	return models.Hostel{
		Name:          strings.TrimSpace(req.Name),
		Address:       strings.TrimSpace(req.Address),
		ContactPhone:  req.ContactPhone,
		ContactEmail:  req.ContactEmail,
		TotalRooms:    req.TotalRooms,
		Floors:        req.Floors,
		BusinessHours: req.BusinessHours,
		Description:   req.Description,
		Amenities:     req.Amenities,
		Owners:        req.Owners,
		Status:        models.HostelStatusActive,
	}
}
