package handlers

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/praneeth-grandhi/Hostel-Management/internal/auth"
	"github.com/praneeth-grandhi/Hostel-Management/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// SignInRequest is the body of POST /api/auth/signin. Role selects the
// public ("user") or admin login path.
type SignInRequest struct {
	Role     string `json:"role"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInResponse returns the token plus the session record as stored, so the
// client starts from exactly the state every other session reader will see.
type SignInResponse struct {
	Token   string         `json:"token"`
	Session models.Session `json:"session"`
}

// SignIn handles POST /api/auth/signin.
//
// The public path signs the visitor in as a guest. The admin path resolves
// the role by the owners lookup: a matching owner email means co-admin (and
// the stored credential is verified), anything else falls through to the
// demo super-admin identity. Either way the singleton session record is
// rewritten and every broadcast subscriber is notified before the response
// is sent.
func (s *Server) SignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if req.Email == "" {
		respondError(w, http.StatusBadRequest, "email is required")
		return
	}
	if len(req.Password) < 6 {
		respondError(w, http.StatusBadRequest, "password must be at least 6 characters")
		return
	}

	var sess models.Session
	switch req.Role {
	case "admin":
		role, owner := s.Sessions.LookupAdmin(req.Email)
		if role == models.RoleCoAdmin {
			if err := bcrypt.CompareHashAndPassword([]byte(owner.PasswordHash), []byte(req.Password)); err != nil {
				respondError(w, http.StatusUnauthorized, "invalid credentials")
				return
			}
		}
		sess = s.Sessions.SignInAdmin(req.Email)
	default:
		if !emailPattern.MatchString(req.Email) {
			respondError(w, http.StatusBadRequest, "enter a valid email")
			return
		}
		sess = s.Sessions.SignInGuest(req.Email)
	}

	token, err := auth.GenerateToken(sess.Email, sess.Role, s.Secret)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "could not generate token")
		return
	}
	respond(w, http.StatusOK, SignInResponse{Token: token, Session: sess})
}

// SignOut handles POST /api/auth/signout. Any state transitions to
// anonymous; signing out an anonymous session is a no-op that still
// broadcasts, matching the "re-read on signal" contract.
func (s *Server) SignOut(w http.ResponseWriter, r *http.Request) {
	s.Sessions.SignOut()
	respond(w, http.StatusOK, map[string]bool{"signedOut": true})
}

// Me handles GET /api/auth/me. It re-reads the stored session record rather
// than echoing the token claims, so the response reflects the same state a
// broadcast subscriber would read.
func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.Sessions.Current()
	if !ok {
		respondError(w, http.StatusNotFound, "no active session")
		return
	}
	respond(w, http.StatusOK, sess)
}
