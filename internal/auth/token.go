package auth

import (
	"sync"
	"time"
)

// Token is a bearer token as the CloudIQ token endpoint returns it. The
// wire fields are PascalCase. ExpiresAt is local bookkeeping computed from
// ExpiresIn when the token is fetched.
type Token struct {
	AccessToken string    `json:"AccessToken"`
	TokenType   string    `json:"TokenType"`
	ExpiresIn   int       `json:"ExpiresIn"`
	ExpiresAt   time.Time `json:"-"`
}

// Valid reports whether the token can be used at now. A token inside the
// refresh window of its expiry counts as invalid so callers refresh it
// before it lapses mid-request. Tokens without an expiry never lapse.
func (t *Token) Valid(now time.Time, window time.Duration) bool {
	if t == nil || t.AccessToken == "" {
		return false
	}

	if t.ExpiresAt.IsZero() {
		return true
	}

	return t.ExpiresAt.Sub(now) > window
}

// TokenStore owns the mutable cached token. Client configuration stays
// immutable; this is the one piece of shared state, guarded for concurrent
// use.
type TokenStore struct {
	mu    sync.RWMutex
	token *Token
}

// NewTokenStore creates an empty token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Get returns the cached token, or nil if none has been stored.
func (s *TokenStore) Get() *Token {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// Set replaces the cached token wholesale.
func (s *TokenStore) Set(token *Token) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
}

// Clear drops the cached token.
func (s *TokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = nil
}
