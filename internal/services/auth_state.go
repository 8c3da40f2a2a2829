package services

import "sync"

// AuthorizationState holds the process-wide bearer header and login flag.
// The auth service is the single writer; gated operations and middleware
// only read. Reset to logged-out at process start.
type AuthorizationState struct {
	mu       sync.RWMutex
	header   string
	loggedIn bool
}

// NewAuthorizationState creates a logged-out authorization state
func NewAuthorizationState() *AuthorizationState {
	return &AuthorizationState{}
}

// Set stores the authorization header and marks the process logged in.
func (s *AuthorizationState) Set(header string) {
	s.mu.Lock()
	s.header = header
	s.loggedIn = true
	s.mu.Unlock()
}

// Clear drops the authorization header and marks the process logged out.
func (s *AuthorizationState) Clear() {
	s.mu.Lock()
	s.header = ""
	s.loggedIn = false
	s.mu.Unlock()
}

// IsLoggedIn implements domain.AuthState
func (s *AuthorizationState) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loggedIn
}

// AuthorizationHeader implements domain.AuthState
func (s *AuthorizationState) AuthorizationHeader() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.header, s.loggedIn
}
