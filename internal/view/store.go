package view

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type session struct {
	shell    *Shell
	lastSeen time.Time
}

// Store keeps one Shell per browser session in memory.
// Sessions idle for longer than the TTL are dropped on the next access.
type Store struct {
	mu              sync.Mutex
	sessions        map[string]*session
	ttl             time.Duration
	defaultLocation string
	now             func() time.Time
}

// NewStore creates an empty store. A non-positive ttl disables expiry.
func NewStore(defaultLocation string, ttl time.Duration) *Store {
	return &Store{
		sessions:        make(map[string]*session),
		ttl:             ttl,
		defaultLocation: defaultLocation,
		now:             time.Now,
	}
}

// Get returns the shell for id, creating a new session when id is unknown or
// expired. The returned id is the one to hand back to the browser.
func (s *Store) Get(id string) (string, *Shell, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.pruneLocked(now)

	if sess, ok := s.sessions[id]; ok && id != "" {
		sess.lastSeen = now
		return id, sess.shell, false
	}

	id = uuid.NewString()
	shell := NewShell(s.defaultLocation)
	s.sessions[id] = &session{shell: shell, lastSeen: now}
	return id, shell, true
}

// Len returns the number of live sessions
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) pruneLocked(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.sessions, id)
		}
	}
}
