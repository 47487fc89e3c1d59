// Package tokens holds submitted form texts until their deep link is
// opened in Telegram. The mapping lives in memory only: a token not
// redeemed before a restart is gone, which the product accepts.
package tokens

import (
	"strconv"
	"sync"
	"time"
)

// Store maps opaque tokens to submitted texts
type Store struct {
	pending map[string]string
	mu      sync.Mutex

	// now is swappable for tests
	now func() time.Time
}

// NewStore creates an empty token store
func NewStore() *Store {
	return &Store{
		pending: make(map[string]string),
		now:     time.Now,
	}
}

// Put stores the text under a fresh token and returns the token.
// The token is the current epoch-millisecond timestamp; a collision
// overwrites the previous entry rather than erroring.
func (s *Store) Put(text string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := strconv.FormatInt(s.now().UnixMilli(), 10)
	s.pending[token] = text
	return token
}

// Take atomically removes and returns the text for a token.
// A second Take with the same token reports ok=false, so a deep link
// can only ever produce one inbox message.
func (s *Store) Take(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	text, ok := s.pending[token]
	if ok {
		delete(s.pending, token)
	}
	return text, ok
}

// Restore puts a taken token back, keeping its deep link usable when
// storing the redeemed message failed.
func (s *Store) Restore(token, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[token] = text
}

// Len returns the number of unredeemed tokens
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
