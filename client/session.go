package client

import "sync"

// SessionStore persists the bearer token and the logged-in user between
// calls. Implementations must be safe for concurrent use.
type SessionStore interface {
	Token() string
	SetToken(token string)
	User() *User
	SetUser(user *User)
	Clear()
}

// MemorySession is the default in-process session store.
type MemorySession struct {
	mu    sync.RWMutex
	token string
	user  *User
}

func NewMemorySession() *MemorySession {
	return &MemorySession{}
}

func (s *MemorySession) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *MemorySession) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *MemorySession) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *MemorySession) SetUser(user *User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

func (s *MemorySession) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
}
