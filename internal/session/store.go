// Package session owns the in-memory conversation state.
package session

import (
	"sync"
	"time"

	"github.com/vosokin/ledgerbot/internal/model"
)

// Store maps user IDs to their in-progress sessions. Access for a single
// user is serialized through Lock; different users proceed in parallel.
// Sessions live only in memory and do not survive a restart.
type Store struct {
	mu       sync.Mutex
	sessions map[int64]model.UserSession
	locks    map[int64]*sync.Mutex
}

// NewStore returns an empty session store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[int64]model.UserSession),
		locks:    make(map[int64]*sync.Mutex),
	}
}

// Lock acquires the per-user mutex and returns its release func. Callers
// hold it across the whole read-modify-write of one event.
func (s *Store) Lock(userID int64) func() {
	s.mu.Lock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// Get returns a copy of the user's session, if one exists.
func (s *Store) Get(userID int64) (model.UserSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	return sess, ok
}

// Put replaces the user's session wholesale and stamps UpdatedAt.
func (s *Store) Put(userID int64, sess model.UserSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	sess.UserID = userID
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = now
	}
	sess.UpdatedAt = now
	s.sessions[userID] = sess
}

// Delete drops the user's session, if any.
func (s *Store) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops sessions idle for longer than maxIdle and reports how many
// were evicted. Abandoned conversations go away here; everything else is
// deleted on completion or restart.
func (s *Store) Sweep(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)
	s.mu.Lock()
	defer s.mu.Unlock()
	evicted := 0
	for id, sess := range s.sessions {
		if sess.UpdatedAt.Before(cutoff) {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}
