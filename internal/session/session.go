// Package session holds the process-wide current-user slot.
package session

import (
	"sync"

	"budgeteer/internal/model"
)

// Session is a single mutable slot holding at most one authenticated user.
// Observers registered with OnLogin/OnLogout are invoked synchronously from
// the mutating call.
type Session struct {
	mu       sync.Mutex
	current  *model.User
	onLogin  []func(*model.User)
	onLogout []func()
}

// New creates an empty session. Most callers want Default instead.
func New() *Session {
	return &Session{}
}

var (
	defaultMu      sync.Mutex
	defaultSession *Session
)

// Default returns the process-wide session, creating it on first use.
func Default() *Session {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultSession == nil {
		defaultSession = New()
	}
	return defaultSession
}

// Reset clears the process-wide session. Test isolation only.
func Reset() {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultSession != nil {
		defaultSession.Logout()
	}
	defaultSession = nil
}

// Login sets the current user and notifies login observers.
func (s *Session) Login(user *model.User) {
	s.mu.Lock()
	s.current = user
	observers := append([]func(*model.User){}, s.onLogin...)
	s.mu.Unlock()

	for _, observe := range observers {
		observe(user)
	}
}

// Logout clears the slot and notifies logout observers. Logging out of an
// empty session is a no-op.
func (s *Session) Logout() {
	s.mu.Lock()
	wasLoggedIn := s.current != nil
	s.current = nil
	observers := append([]func(){}, s.onLogout...)
	s.mu.Unlock()

	if !wasLoggedIn {
		return
	}
	for _, observe := range observers {
		observe()
	}
}

// Current returns the logged-in user, or ok=false when the slot is empty.
func (s *Session) Current() (*model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.current != nil
}

// IsLoggedIn reports whether the slot is non-empty.
func (s *Session) IsLoggedIn() bool {
	_, ok := s.Current()
	return ok
}

// OnLogin registers an observer called after every successful login.
func (s *Session) OnLogin(observe func(*model.User)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLogin = append(s.onLogin, observe)
}

// OnLogout registers an observer called after every logout.
func (s *Session) OnLogout(observe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLogout = append(s.onLogout, observe)
}
