// Package auth holds the per-browser authentication state: the bearer token
// and role issued by the backend, where they are persisted, and the
// notifier that tells the rest of the UI about login and logout.
package auth

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/iliyamo/hotel-booking-web/internal/model"
)

// AuthState is what a browser session knows about its user.
type AuthState struct {
	Token string     `json:"token"`
	Role  model.Role `json:"role"`
}

// LoggedIn reports whether a token is present.
func (s AuthState) LoggedIn() bool { return s.Token != "" }

// IsAdmin reports whether the session belongs to an administrator.
func (s AuthState) IsAdmin() bool { return s.LoggedIn() && s.Role == model.RoleAdmin }

// Store binds one session id to its persisted state. Login and Logout
// persist first and then notify every listener with the new state.
type Store struct {
	sessionID string
	storage   Storage
	notifier  *Notifier

	mu     sync.Mutex
	loaded bool
	state  AuthState
}

// NewStore creates the store for sessionID. The state is read lazily from
// storage on first use.
func NewStore(sessionID string, storage Storage, notifier *Notifier) *Store {
	return &Store{sessionID: sessionID, storage: storage, notifier: notifier}
}

// SessionID returns the id the store is bound to.
func (s *Store) SessionID() string { return s.sessionID }

// State returns the current auth state. A storage failure is logged and
// treated as logged out.
func (s *Store) State(ctx context.Context) AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		st, err := s.storage.Load(ctx, s.sessionID)
		if err != nil {
			log.Warn().Err(err).Str("session", s.sessionID).Msg("load auth state failed")
		}
		s.state = st
		s.loaded = true
	}
	return s.state
}

// Login persists st and notifies listeners.
func (s *Store) Login(ctx context.Context, st AuthState) error {
	if err := s.storage.Save(ctx, s.sessionID, st); err != nil {
		return err
	}
	s.mu.Lock()
	s.state, s.loaded = st, true
	s.mu.Unlock()

	s.notifier.Notify(Event{SessionID: s.sessionID, State: st})
	return nil
}

// Logout clears the persisted token and role and notifies listeners with
// the zero state. Listeners are notified even when clearing storage fails,
// since the in-memory state is already logged out.
func (s *Store) Logout(ctx context.Context) error {
	err := s.storage.Clear(ctx, s.sessionID)

	s.mu.Lock()
	s.state, s.loaded = AuthState{}, true
	s.mu.Unlock()

	s.notifier.Notify(Event{SessionID: s.sessionID})
	return err
}
