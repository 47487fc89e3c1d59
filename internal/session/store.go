// Package session tracks the admin's in-progress wizard step (reply
// composition or block-duration entry). State is in memory and keyed
// by admin ID; it does not survive a restart.
package session

import "sync"

// Action identifies which wizard is waiting for free-text input
type Action int

const (
	// ActionReply waits for the reply text to a message
	ActionReply Action = iota
	// ActionBlockTemporary waits for the block duration in hours
	ActionBlockTemporary
)

// Session is one pending wizard step. TargetID is a message ID for
// ActionReply and a sender ID for ActionBlockTemporary.
type Session struct {
	Action   Action
	TargetID int64
}

// Store keeps at most one pending wizard step per admin
type Store struct {
	sessions map[int64]Session
	mu       sync.Mutex
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{
		sessions: make(map[int64]Session),
	}
}

// Set starts a wizard step for the admin, silently discarding any
// step already in progress.
func (s *Store) Set(adminID int64, sess Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[adminID] = sess
}

// Get returns the pending step for the admin, if any
func (s *Store) Get(adminID int64) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[adminID]
	return sess, ok
}

// Clear removes the pending step for the admin
func (s *Store) Clear(adminID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, adminID)
}
