package store

import (
	"sync"

	"github.com/forkful/client/internal/types"
)

// AuthStore holds at most one session user. It is set by successful login or
// session check and cleared by logout or a failed session check; no other
// component mutates it.
type AuthStore struct {
	mu   sync.RWMutex
	user *types.User
}

// NewAuthStore creates an empty auth store
func NewAuthStore() *AuthStore {
	return &AuthStore{}
}

// SetUser stores the authenticated user
func (s *AuthStore) SetUser(u *types.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}

// ClearUser removes the authenticated user
func (s *AuthStore) ClearUser() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

// User returns the authenticated user, or nil when no session exists
func (s *AuthStore) User() *types.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// IsAuthenticated reports whether a session user is present
func (s *AuthStore) IsAuthenticated() bool {
	return s.User() != nil
}
