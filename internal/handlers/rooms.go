package handlers

import (
	"net/http"
	"sort"
	"strings"

	"github.com/praneeth-grandhi/Hostel-Management/internal/models"
	"github.com/praneeth-grandhi/Hostel-Management/internal/store"
)

// RoomRequest is the body for room create and update.
type RoomRequest struct {
	Code     string              `json:"code"`
	Name     string              `json:"name"`
	Floor    int                 `json:"floor"`
	Type     string              `json:"type"`
	Rent     int                 `json:"rent"`
	Status   string              `json:"status"`
	Features models.RoomFeatures `json:"features"`
}

// FloorRooms is one entry of the derived floor grouping.
type FloorRooms struct {
	Floor int           `json:"floor"`
	Rooms []models.Room `json:"rooms"`
}

// ListRooms handles GET /api/rooms.
func (s *Server) ListRooms(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, s.Cols.Rooms.LoadAll())
}

// ListRoomFloors handles GET /api/rooms/floors. The grouping is derived from
// each room's floor at read time, never stored.
func (s *Server) ListRoomFloors(w http.ResponseWriter, r *http.Request) {
	byFloor := make(map[int][]models.Room)
	for _, room := range s.Cols.Rooms.LoadAll() {
		byFloor[room.Floor] = append(byFloor[room.Floor], room)
	}

	floors := make([]FloorRooms, 0, len(byFloor))
	for floor, rooms := range byFloor {
		floors = append(floors, FloorRooms{Floor: floor, Rooms: rooms})
	}
	sort.Slice(floors, func(i, j int) bool { return floors[i].Floor < floors[j].Floor })

	respond(w, http.StatusOK, floors)
}

// CreateRoom handles POST /api/rooms.
func (s *Server) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req RoomRequest
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	room, msg := roomFromRequest(req)
	if msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	room.ID = store.NewID("r")
	s.Cols.Rooms.Upsert(room)
	respond(w, http.StatusCreated, room)
}

// UpdateRoom handles PUT /api/rooms/{id}.
func (s *Server) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := s.Cols.Rooms.Find(id); !ok {
		respondError(w, http.StatusNotFound, "room not found")
		return
	}

	var req RoomRequest
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	room, msg := roomFromRequest(req)
	if msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	room.ID = id
	s.Cols.Rooms.Upsert(room)
	respond(w, http.StatusOK, room)
}

// DeleteRoom handles DELETE /api/rooms/{id}.
func (s *Server) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	if !s.Cols.Rooms.Remove(r.PathValue("id")) {
		respondError(w, http.StatusNotFound, "room not found")
		return
	}
	respond(w, http.StatusOK, map[string]bool{"deleted": true})
}

func roomFromRequest(req RoomRequest) (models.Room, string) {
	code := strings.TrimSpace(req.Code)
	if code == "" {
		return models.Room{}, "room code is required"
	}

	switch req.Type {
	case "":
		req.Type = models.RoomTypeSingle
	case models.RoomTypeSingle, models.RoomTypeDouble, models.RoomTypeTriple:
	default:
		return models.Room{}, "type must be single, double, or triple"
	}

	switch req.Status {
	case "":
		req.Status = models.RoomStatusAvailable
	case models.RoomStatusAvailable, models.RoomStatusOccupied, models.RoomStatusMaintenance:
	default:
		return models.Room{}, "status must be available, occupied, or maintenance"
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = "Room " + code
	}

	return models.Room{
		Code:     code,
		Name:     name,
		Floor:    req.Floor,
		Type:     req.Type,
		Rent:     req.Rent,
		Status:   req.Status,
		Features: req.Features,
	}, ""
}
