// main is the entry point for the hostel management API server.
//
// This file is the composition root: configuration, logging, the storage
// backend, the session broadcaster, the seeder, and all HTTP routes are
// wired together here so every other package stays independently testable.
package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/crypto/bcrypt"

	"github.com/praneeth-grandhi/Hostel-Management/internal/config"
	"github.com/praneeth-grandhi/Hostel-Management/internal/data"
	"github.com/praneeth-grandhi/Hostel-Management/internal/handlers"
	"github.com/praneeth-grandhi/Hostel-Management/internal/middleware"
	"github.com/praneeth-grandhi/Hostel-Management/internal/models"
	"github.com/praneeth-grandhi/Hostel-Management/internal/seed"
	"github.com/praneeth-grandhi/Hostel-Management/internal/session"
	"github.com/praneeth-grandhi/Hostel-Management/internal/store"
)

func main() {
	cfg := config.Load()

	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      cfg.LogLevel,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(log)

	// ── Storage ──────────────────────────────────────────────────────
	// ":memory:" runs entirely in-process; anything else is a SQLite DSN
	// for the durable key-value backend.
	var backend store.Backend
	if cfg.DatabaseURL == ":memory:" {
		backend = store.NewMemoryBackend()
	} else {
		sqlite, err := store.OpenSQLite(cfg.DatabaseURL)
		if err != nil {
			log.Error("open database", "err", err)
			os.Exit(1)
		}
		defer sqlite.Close()
		backend = sqlite
	}

	st := store.New(backend, log)
	cols := data.NewCollections(st)
	bus := session.NewBroadcaster()
	sessions := session.NewSessions(st, cols, bus)
	seeder := seed.NewManager(st, cols, hashPassword)

	// Components observe auth changes through the broadcaster, never
	// through each other; the server itself subscribes only to log the
	// transitions.
	unsubscribe := bus.Subscribe(func() {
		if sess, ok := sessions.Current(); ok {
			log.Info("session changed", "role", sess.Role, "email", sess.Email)
		} else {
			log.Info("session changed", "role", "anonymous")
		}
	})
	defer unsubscribe()

	if cfg.SeedOnStart {
		res := seeder.Seed(false)
		log.Info("startup seed", "status", res.Status, "counts", res.Counts)
	}

	srv := handlers.NewServer(st, cols, sessions, seeder, cfg.JWTSecret, log)

	// ── Routes ───────────────────────────────────────────────────────
	mux := http.NewServeMux()

	// Public routes — no token required.
	mux.HandleFunc("POST /api/auth/signin", srv.SignIn)
	mux.HandleFunc("POST /api/auth/signout", srv.SignOut)
	mux.HandleFunc("GET /api/hostels", srv.ListHostels)
	// Demo seed — marker-guarded, safe to call repeatedly. Gate behind an
	// env flag before any real deployment.
	mux.HandleFunc("POST /api/admin/seed", srv.SeedDemo)

	auth := middleware.Authenticate(cfg.JWTSecret)
	adminOnly := middleware.RequireRole(models.RoleSuperAdmin, models.RoleCoAdmin)

	// Authenticated — any signed-in role.
	handle := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, auth(h))
	}
	handle("GET /api/auth/me", srv.Me)
	handle("GET /api/profile", srv.GetProfile)
	handle("PUT /api/profile", srv.SaveProfile)
	handle("DELETE /api/profile", srv.DeleteProfile)
	handle("POST /api/profile/password", srv.ChangePassword)
	handle("GET /api/mystay", srv.GetMyStay)
	handle("POST /api/mystay/bookings", srv.BookStayRoom)
	handle("DELETE /api/mystay/bookings/{roomId}", srv.CancelStayBooking)
	handle("POST /api/mystay/complaints", srv.SubmitStayComplaint)
	handle("GET /api/stays", srv.ListStays)
	handle("POST /api/stays/{id}/feedback", srv.SaveStayFeedback)
	handle("GET /api/notifications", srv.ListNotifications)
	handle("POST /api/notifications/{id}/read", srv.MarkNotificationRead)
	handle("POST /api/notifications/read-all", srv.MarkAllNotificationsRead)
	handle("DELETE /api/notifications/{id}", srv.DeleteNotification)

	// Admin-only routes.
	admin := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, auth(adminOnly(h)))
	}
	admin("GET /api/owners", srv.ListOwners)
	admin("POST /api/owners", srv.CreateOwner)
	admin("DELETE /api/owners/{id}", srv.DeleteOwner)
	admin("POST /api/hostels", srv.CreateHostel)
	admin("PUT /api/hostels/{id}", srv.UpdateHostel)
	admin("DELETE /api/hostels/{id}", srv.DeleteHostel)
	admin("GET /api/rooms", srv.ListRooms)
	admin("GET /api/rooms/floors", srv.ListRoomFloors)
	admin("POST /api/rooms", srv.CreateRoom)
	admin("PUT /api/rooms/{id}", srv.UpdateRoom)
	admin("DELETE /api/rooms/{id}", srv.DeleteRoom)
	admin("GET /api/bookings", srv.ListBookings)
	admin("POST /api/bookings", srv.CreateBooking)
	admin("PUT /api/bookings/{id}", srv.UpdateBooking)
	admin("DELETE /api/bookings/{id}", srv.DeleteBooking)
	admin("GET /api/complaints", srv.ListComplaints)
	admin("POST /api/complaints", srv.CreateComplaint)
	admin("POST /api/complaints/{id}/resolve", srv.ResolveComplaint)

	handler := middleware.CORS(middleware.Logging(log)(mux))

	log.Info("hostel management API listening", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		log.Error("server", "err", err)
		os.Exit(1)
	}
}

// hashPassword is the seeder's credential hasher.
func hashPassword(plain string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("bcrypt", "err", err)
		return ""
	}
	return string(hash)
}
