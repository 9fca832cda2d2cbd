package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/colorbook-app/lineart/internal/pipeline"
)

// Store maps opaque session tokens to the prepared cache of the image each
// session is currently editing.
//
// Request handling receives a Store explicitly rather than reaching for
// process-wide state, so independent sessions never share mutable state:
// each token owns exactly one immutable *pipeline.Cache at a time.
//
// Store is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*pipeline.Cache
}

// NewStore creates an empty session store ready for use.
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*pipeline.Cache),
	}
}

// Put registers a freshly prepared cache under a new opaque token and
// returns the token. The only error source is the system randomness used
// to mint tokens.
func (s *Store) Put(c *pipeline.Cache) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.sessions[token] = c
	s.mu.Unlock()
	return token, nil
}

// Replace swaps the cache held under an existing token. Choosing a new
// source image discards the old cache wholesale; there is no incremental
// update path between unrelated images. Returns false if the token is
// unknown.
func (s *Store) Replace(token string, c *pipeline.Cache) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[token]; !ok {
		return false
	}
	s.sessions[token] = c
	return true
}

// Get returns the cache for a token, or false if the session is unknown
// or already evicted.
func (s *Store) Get(token string) (*pipeline.Cache, bool) {
	s.mu.RLock()
	c, ok := s.sessions[token]
	s.mu.RUnlock()
	return c, ok
}

// Evict drops a session and its cache. Evicting an unknown token does
// nothing.
func (s *Store) Evict(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Clear drops every session, freeing all cached Phase-1 buffers.
func (s *Store) Clear() {
	s.mu.Lock()
	s.sessions = make(map[string]*pipeline.Cache)
	s.mu.Unlock()
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// newToken mints a 128-bit random token, hex encoded.
func newToken() (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return hex.EncodeToString(b[:]), nil
}
