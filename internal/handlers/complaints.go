package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/praneeth-grandhi/Hostel-Management/internal/models"
	"github.com/praneeth-grandhi/Hostel-Management/internal/store"
)

// ComplaintRequest is the body of POST /api/complaints (admin-side quick
// entry).
type ComplaintRequest struct {
	User string `json:"user"`
	Text string `json:"text"`
}

// ListComplaints handles GET /api/complaints. Optional filters: status, q
// (user or text substring), from, to (inclusive date range).
func (s *Server) ListComplaints(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	q := strings.ToLower(r.URL.Query().Get("q"))
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	complaints := s.Cols.Complaints.LoadAll()
	out := make([]models.Complaint, 0, len(complaints))
	for _, c := range complaints {
		if status != "" && c.Status != status {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(c.User+" "+c.Text+" "+c.Subject), q) {
			continue
		}
		if from != "" && c.Date != "" && c.Date < from {
			continue
		}
		if to != "" && c.Date != "" && c.Date > to {
			continue
		}
		out = append(out, c)
	}
	respond(w, http.StatusOK, out)
}

// CreateComplaint handles POST /api/complaints.
func (s *Server) CreateComplaint(w http.ResponseWriter, r *http.Request) {
	var req ComplaintRequest
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		respondError(w, http.StatusBadRequest, "complaint text is required")
		return
	}

	now := time.Now().UTC()
	c := models.Complaint{
		ID:        store.NewID("C"),
		User:      strings.TrimSpace(req.User),
		Text:      strings.TrimSpace(req.Text),
		Date:      now.Format(time.DateOnly),
		Status:    models.ComplaintStatusPending,
		CreatedAt: now,
	}
	s.Cols.Complaints.Upsert(c)
	respond(w, http.StatusCreated, c)
}

// ResolveComplaint handles POST /api/complaints/{id}/resolve. The dashboard
// transition is one-directional: pending or open becomes resolved, and
// resolving an already resolved complaint is a harmless no-op.
func (s *Server) ResolveComplaint(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	c, ok := s.Cols.Complaints.Find(id)
	if !ok {
		respondError(w, http.StatusNotFound, "complaint not found")
		return
	}
	c.Status = models.ComplaintStatusResolved
	s.Cols.Complaints.Upsert(c)
	respond(w, http.StatusOK, c)
}
