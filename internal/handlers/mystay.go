package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/praneeth-grandhi/Hostel-Management/internal/data"
	"github.com/praneeth-grandhi/Hostel-Management/internal/middleware"
	"github.com/praneeth-grandhi/Hostel-Management/internal/models"
	"github.com/praneeth-grandhi/Hostel-Management/internal/store"
)

// BookRoomRequest is the body of POST /api/mystay/bookings.
type BookRoomRequest struct {
	RoomID string `json:"roomId"`
}

// StayComplaintRequest is the body of POST /api/mystay/complaints — the
// richer resident complaint form.
type StayComplaintRequest struct {
	Subject     string `json:"subject"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// myStay reads the composite resident state. The zero value is served when
// nothing is stored; seeding normally provides the baseline.
func (s *Server) myStay() models.MyHostelState {
	var state models.MyHostelState
	s.Store.Get(data.KeyMyHostel, &state)
	if state.Rooms == nil {
		state.Rooms = []models.StayRoom{}
	}
	if state.BookedRoomIDs == nil {
		state.BookedRoomIDs = []string{}
	}
	if state.Complaints == nil {
		state.Complaints = []models.Complaint{}
	}
	return state
}

// GetMyStay handles GET /api/mystay.
func (s *Server) GetMyStay(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, s.myStay())
}

// BookStayRoom handles POST /api/mystay/bookings. Only a room that is
// neither occupied nor already booked can be added.
func (s *Server) BookStayRoom(w http.ResponseWriter, r *http.Request) {
	var req BookRoomRequest
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	state := s.myStay()
	var room *models.StayRoom
	for i := range state.Rooms {
		if state.Rooms[i].ID == req.RoomID {
			room = &state.Rooms[i]
			break
		}
	}
	if room == nil {
		respondError(w, http.StatusNotFound, "room not found")
		return
	}
	if room.Occupied {
		respondError(w, http.StatusConflict, "room is occupied")
		return
	}
	for _, id := range state.BookedRoomIDs {
		if id == req.RoomID {
			respondError(w, http.StatusConflict, "room is already booked")
			return
		}
	}

	state.BookedRoomIDs = append(state.BookedRoomIDs, req.RoomID)
	s.Store.Set(data.KeyMyHostel, state)
	respond(w, http.StatusOK, state)
}

// CancelStayBooking handles DELETE /api/mystay/bookings/{roomId}.
func (s *Server) CancelStayBooking(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("roomId")
	state := s.myStay()

	kept := state.BookedRoomIDs[:0]
	for _, id := range state.BookedRoomIDs {
		if id != roomID {
			kept = append(kept, id)
		}
	}
	if len(kept) == len(state.BookedRoomIDs) {
		respondError(w, http.StatusNotFound, "booking not found")
		return
	}
	state.BookedRoomIDs = kept
	s.Store.Set(data.KeyMyHostel, state)
	respond(w, http.StatusOK, state)
}

// SubmitStayComplaint handles POST /api/mystay/complaints. The complaint is
// appended to the resident state and mirrored into the shared complaints
// collection so the admin dashboard sees it too.
func (s *Server) SubmitStayComplaint(w http.ResponseWriter, r *http.Request) {
	var req StayComplaintRequest
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.Description) == "" {
		respondError(w, http.StatusBadRequest, "subject and description are required")
		return
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = "Maintenance"
	}

	now := time.Now().UTC()
	c := models.Complaint{
		ID:          store.NewID("cmp"),
		Subject:     strings.TrimSpace(req.Subject),
		Category:    category,
		Description: strings.TrimSpace(req.Description),
		Status:      models.ComplaintStatusOpen,
		CreatedAt:   now,
	}

	state := s.myStay()
	state.Complaints = append([]models.Complaint{c}, state.Complaints...)
	s.Store.Set(data.KeyMyHostel, state)

	mirror := c
	mirror.User = middleware.GetEmail(r.Context())
	mirror.Text = c.Subject
	mirror.Date = now.Format(time.DateOnly)
	s.Cols.Complaints.Upsert(mirror)

	respond(w, http.StatusCreated, c)
}
