package session

import (
	"strings"
	"time"

	"github.com/praneeth-grandhi/Hostel-Management/internal/data"
	"github.com/praneeth-grandhi/Hostel-Management/internal/models"
	"github.com/praneeth-grandhi/Hostel-Management/internal/store"
)

// Sessions manages the singleton auth record.
//
// State machine: anonymous (no record) → authenticated(role) via SignInGuest
// or SignInAdmin; any state → anonymous via SignOut. Every transition
// rewrites the record wholesale and publishes a zero-payload notification on
// the broadcaster.
type Sessions struct {
	store *store.Store
	cols  *data.Collections
	bus   *Broadcaster
}

// NewSessions wires the session layer to its store, the owners collection
// (for admin role lookup) and the broadcast channel.
func NewSessions(st *store.Store, cols *data.Collections, bus *Broadcaster) *Sessions {
	return &Sessions{store: st, cols: cols, bus: bus}
}

// Bus returns the broadcaster so callers can subscribe for change signals.
func (s *Sessions) Bus() *Broadcaster { return s.bus }

// Current re-reads the session record. It reports false when no record is
// stored (anonymous).
func (s *Sessions) Current() (models.Session, bool) {
	var sess models.Session
	if !s.store.Get(data.KeyAuth, &sess) {
		return models.Session{}, false
	}
	return sess, true
}

// SignInGuest signs the public-site visitor in with the fixed guest role.
func (s *Sessions) SignInGuest(email string) models.Session {
	sess := models.Session{
		Role:          models.RoleGuest,
		Authenticated: true,
		Email:         strings.ToLower(strings.TrimSpace(email)),
		At:            time.Now().UTC(),
	}
	s.write(sess)
	return sess
}

// LookupAdmin determines the admin role for an email without touching the
// session record: a linear scan of the owners collection with
// case-insensitive comparison. A match means co-admin (the matched owner is
// returned so the caller can verify credentials); anything else is treated
// as the super admin.
func (s *Sessions) LookupAdmin(email string) (role string, owner *models.Owner) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, o := range s.cols.Owners.LoadAll() {
		if strings.EqualFold(o.Email, email) {
			matched := o
			return models.RoleCoAdmin, &matched
		}
	}
	return models.RoleSuperAdmin, nil
}

// SignInAdmin signs an admin in under the role LookupAdmin resolves for the
// email. Credential checks are the caller's job and must happen before this
// writes the record.
func (s *Sessions) SignInAdmin(email string) models.Session {
	role, owner := s.LookupAdmin(email)
	sess := models.Session{
		Role:          role,
		Authenticated: true,
		Email:         strings.ToLower(strings.TrimSpace(email)),
		At:            time.Now().UTC(),
	}
	if owner != nil {
		sess.Name = owner.DisplayName
	}
	s.write(sess)
	return sess
}

// SignOut removes the session record and notifies subscribers.
func (s *Sessions) SignOut() {
	s.store.Remove(data.KeyAuth)
	s.bus.Publish()
}

func (s *Sessions) write(sess models.Session) {
	s.store.Set(data.KeyAuth, sess)
	s.bus.Publish()
}
