package handlers

import (
	"net/http"
	"strings"

	"github.com/praneeth-grandhi/Hostel-Management/internal/models"
)

// ListNotifications handles GET /api/notifications. Optional filters:
// filter=read|unread, q (title or message substring). The response includes
// the unread count so the dashboard badge needs no second request.
func (s *Server) ListNotifications(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("filter")
	q := strings.ToLower(r.URL.Query().Get("q"))

	all := s.Cols.Notifications.LoadAll()
	unread := 0
	out := make([]models.Notification, 0, len(all))
	for _, n := range all {
		if !n.Read {
			unread++
		}
		if filter == "unread" && n.Read {
			continue
		}
		if filter == "read" && !n.Read {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(n.Title+" "+n.Message), q) {
			continue
		}
		out = append(out, n)
	}

	respond(w, http.StatusOK, map[string]any{
		"notifications": out,
		"unreadCount":   unread,
	})
}

// MarkNotificationRead handles POST /api/notifications/{id}/read.
func (s *Server) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	n, ok := s.Cols.Notifications.Find(id)
	if !ok {
		respondError(w, http.StatusNotFound, "notification not found")
		return
	}
	n.Read = true
	s.Cols.Notifications.Upsert(n)
	respond(w, http.StatusOK, n)
}

// MarkAllNotificationsRead handles POST /api/notifications/read-all.
func (s *Server) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	all := s.Cols.Notifications.LoadAll()
	for i := range all {
		all[i].Read = true
	}
	s.Cols.Notifications.SaveAll(all)
	respond(w, http.StatusOK, map[string]int{"marked": len(all)})
}

// DeleteNotification handles DELETE /api/notifications/{id}.
func (s *Server) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	if !s.Cols.Notifications.Remove(r.PathValue("id")) {
		respondError(w, http.StatusNotFound, "notification not found")
		return
	}
	respond(w, http.StatusOK, map[string]bool{"deleted": true})
}
