package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/praneeth-grandhi/Hostel-Management/internal/models"
	"github.com/praneeth-grandhi/Hostel-Management/internal/store"
)

// BookingRequest is the body for admin booking create and update.
type BookingRequest struct {
	Guest       string `json:"guest"`
	RoomNumber  string `json:"roomNumber"`
	Floor       int    `json:"floor"`
	BookingDate string `json:"bookingDate"`
	CheckIn     string `json:"checkIn"`
	CheckOut    string `json:"checkOut"`
}

// ListBookings handles GET /api/bookings. Optional query filters: q (guest or
// room substring), floor, from, to (inclusive check-in date range).
func (s *Server) ListBookings(w http.ResponseWriter, r *http.Request) {
	q := strings.ToLower(r.URL.Query().Get("q"))
	floor := r.URL.Query().Get("floor")
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	out := []models.Booking{}
	for _, b := range s.Cols.Bookings.LoadAll() {
		if q != "" && !strings.Contains(strings.ToLower(b.Guest+" "+b.RoomNumber), q) {
			continue
		}
		if floor != "" && floor != strconv.Itoa(b.Floor) {
			continue
		}
		// ISO dates compare correctly as strings.
		if from != "" && b.CheckIn < from {
			continue
		}
		if to != "" && b.CheckIn > to {
			continue
		}
		out = append(out, b)
	}
	respond(w, http.StatusOK, out)
}

// CreateBooking handles POST /api/bookings. New bookings keep the legacy
// sequential B-NNN id scheme for compatibility with data stored under it.
func (s *Server) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req BookingRequest
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	b, msg := s.bookingFromRequest(req)
	if msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	b.ID = store.SequentialID("B", len(s.Cols.Bookings.LoadAll()))
	s.Cols.Bookings.Upsert(b)
	respond(w, http.StatusCreated, b)
}

// UpdateBooking handles PUT /api/bookings/{id}.
func (s *Server) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := s.Cols.Bookings.Find(id); !ok {
		respondError(w, http.StatusNotFound, "booking not found")
		return
	}

	var req BookingRequest
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	b, msg := s.bookingFromRequest(req)
	if msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	b.ID = id
	s.Cols.Bookings.Upsert(b)
	respond(w, http.StatusOK, b)
}

// DeleteBooking handles DELETE /api/bookings/{id}.
func (s *Server) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	if !s.Cols.Bookings.Remove(r.PathValue("id")) {
		respondError(w, http.StatusNotFound, "booking not found")
		return
	}
	respond(w, http.StatusOK, map[string]bool{"deleted": true})
}

// bookingFromRequest validates the request and resolves the weak room
// reference: when a room with a matching code exists, its id is stored
// alongside the display string so readers can resolve the live room instead
// of trusting the denormalized number.
func (s *Server) bookingFromRequest(req BookingRequest) (models.Booking, string) {
	guest := strings.TrimSpace(req.Guest)
	roomNumber := strings.TrimSpace(req.RoomNumber)
	if guest == "" || roomNumber == "" {
		return models.Booking{}, "guest and roomNumber are required"
	}

	if req.BookingDate == "" {
		req.BookingDate = time.Now().UTC().Format(time.DateOnly)
	}
	for _, d := range []string{req.BookingDate, req.CheckIn} {
		if _, err := time.Parse(time.DateOnly, d); err != nil {
			return models.Booking{}, "dates must be in YYYY-MM-DD form"
		}
	}
	if req.CheckOut != "" {
		if _, err := time.Parse(time.DateOnly, req.CheckOut); err != nil {
			return models.Booking{}, "dates must be in YYYY-MM-DD form"
		}
		if req.CheckOut <= req.CheckIn {
			return models.Booking{}, "checkOut must be after checkIn"
		}
	}

	b := models.Booking{
		Guest:       guest,
		RoomNumber:  roomNumber,
		Floor:       req.Floor,
		BookingDate: req.BookingDate,
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
	}
	for _, room := range s.Cols.Rooms.LoadAll() {
		if room.Code == roomNumber {
			b.RoomID = room.ID
			break
		}
	}
	return b, ""
}
