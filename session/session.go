package session

import (
	"net/url"
	"sync"
)

// Session is the process-wide handle to the remote session id.
// The zero value is an inactive session.
type Session struct {
	mux      sync.RWMutex
	id       string
	endpoint *url.URL
}

// New creates an inactive session.
func New() *Session {
	return &Session{}
}

// ID returns the current session id and whether the session is active.
func (s *Session) ID() (string, bool) {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.id, s.id != ""
}

// Endpoint returns a copy of the endpoint announced by the server, or nil.
func (s *Session) Endpoint() *url.URL {
	s.mux.RLock()
	defer s.mux.RUnlock()
	if s.endpoint == nil {
		return nil
	}
	ret := *s.endpoint
	return &ret
}

// Active reports whether a session id is held.
func (s *Session) Active() bool {
	_, ok := s.ID()
	return ok
}

// Assign records the server assigned id and the endpoint it was announced with.
func (s *Session) Assign(id string, endpoint *url.URL) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.id = id
	s.endpoint = endpoint
}

// Invalidate clears the session; it reports whether a session was active.
func (s *Session) Invalidate() bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	wasActive := s.id != ""
	s.id = ""
	s.endpoint = nil
	return wasActive
}
