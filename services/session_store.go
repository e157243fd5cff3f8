package services

import (
	"log"
	"sync"
	"time"

	"swasthyaguide-backend/models"
)

// SessionStore holds one SessionContext per user identifier. It is safe for
// concurrent use by requests for different users; serialization of messages
// from the same user is done through the session's own lock.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.SessionContext
	ttl      time.Duration

	stopOnce sync.Once
	done     chan struct{}
}

// NewSessionStore creates a store evicting sessions idle longer than ttl.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*models.SessionContext),
		ttl:      ttl,
		done:     make(chan struct{}),
	}
}

// GetOrCreate returns the session for id, creating it on first contact. A
// missing or previously evicted session is simply a new session, never an
// error.
func (s *SessionStore) GetOrCreate(id string) *models.SessionContext {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if ok {
		return session
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if session, ok = s.sessions[id]; ok {
		return session
	}
	session = models.NewSessionContext(id)
	s.sessions[id] = session
	return session
}

// Touch updates the session's last-activity timestamp. Last-writer-wins is
// acceptable for concurrent messages from the same user.
func (s *SessionStore) Touch(id string) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if ok {
		session.LastActivity = time.Now()
	}
}

// Evict removes a session immediately.
func (s *SessionStore) Evict(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Count returns the number of live sessions.
func (s *SessionStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// StartSweeper runs the TTL sweep in the background until Stop is called.
func (s *SessionStore) StartSweeper(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if evicted := s.Sweep(); evicted > 0 {
					log.Printf("Session sweep evicted %d idle sessions", evicted)
				}
			case <-s.done:
				return
			}
		}
	}()
}

// Sweep evicts every session idle past the TTL and returns how many went.
func (s *SessionStore) Sweep() int {
	cutoff := time.Now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	evicted := 0
	for id, session := range s.sessions {
		if session.LastActivity.Before(cutoff) {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}

// Stop terminates the background sweeper.
func (s *SessionStore) Stop() {
	s.stopOnce.Do(func() { close(s.done) })
}
