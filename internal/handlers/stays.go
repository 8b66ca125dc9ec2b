package handlers

import (
	"net/http"
	"strings"

	"github.com/praneeth-grandhi/Hostel-Management/internal/models"
)

// FeedbackRequest is the body of POST /api/stays/{id}/feedback.
type FeedbackRequest struct {
	Feedback string `json:"feedback"`
}

// ListStays handles GET /api/stays — the signed-in guest's stay history.
// Optional filters: q (hostel name substring), paid=true|false.
func (s *Server) ListStays(w http.ResponseWriter, r *http.Request) {
	q := strings.ToLower(r.URL.Query().Get("q"))
	paid := r.URL.Query().Get("paid")

	stays := s.Cols.Stays.LoadAll()
	out := make([]models.StayBooking, 0, len(stays))
	for _, stay := range stays {
		if q != "" && !strings.Contains(strings.ToLower(stay.HostelName), q) {
			continue
		}
		if paid == "true" && !stay.Paid {
			continue
		}
		if paid == "false" && stay.Paid {
			continue
		}
		out = append(out, stay)
	}
	respond(w, http.StatusOK, out)
}

// SaveStayFeedback handles POST /api/stays/{id}/feedback, replacing the
// feedback text on one stay record.
func (s *Server) SaveStayFeedback(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	stay, ok := s.Cols.Stays.Find(id)
	if !ok {
		respondError(w, http.StatusNotFound, "booking not found")
		return
	}

	var req FeedbackRequest
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	stay.Feedback = strings.TrimSpace(req.Feedback)
	s.Cols.Stays.Upsert(stay)
	respond(w, http.StatusOK, stay)
}
