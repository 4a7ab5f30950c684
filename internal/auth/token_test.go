package auth_test

import (
	"testing"
	"time"

	"github.com/fivetwenty-io/cloudiq/internal/auth"
	"github.com/stretchr/testify/assert"
)

func TestToken_Valid(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	window := 10 * time.Minute

	tests := []struct {
		name     string
		token    *auth.Token
		expected bool
	}{
		{
			name:     "nil token",
			token:    nil,
			expected: false,
		},
		{
			name: "empty access token",
			token: &auth.Token{
				AccessToken: "",
			},
			expected: false,
		},
		{
			name: "valid token without expiry",
			token: &auth.Token{
				AccessToken: "test-token",
			},
			expected: true,
		},
		{
			name: "valid token with distant expiry",
			token: &auth.Token{
				AccessToken: "test-token",
				ExpiresAt:   now.Add(1 * time.Hour),
			},
			expected: true,
		},
		{
			name: "expired token",
			token: &auth.Token{
				AccessToken: "test-token",
				ExpiresAt:   now.Add(-1 * time.Hour),
			},
			expected: false,
		},
		{
			name: "token expiring inside the refresh window",
			token: &auth.Token{
				AccessToken: "test-token",
				ExpiresAt:   now.Add(5 * time.Minute),
			},
			expected: false,
		},
		{
			name: "token expiring exactly at the window boundary",
			token: &auth.Token{
				AccessToken: "test-token",
				ExpiresAt:   now.Add(window),
			},
			expected: false,
		},
		{
			name: "token expiring just outside the window",
			token: &auth.Token{
				AccessToken: "test-token",
				ExpiresAt:   now.Add(window + time.Second),
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.token.Valid(now, window))
		})
	}
}

// Reuse decisions depend only on the distance between expiry and now, never
// on absolute time.
func TestToken_ValidWindowProperty(t *testing.T) {
	t.Parallel()

	window := 10 * time.Minute
	token := &auth.Token{
		AccessToken: "test-token",
		ExpiresAt:   time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	for _, lead := range []time.Duration{
		time.Second, time.Minute, 9 * time.Minute, window, window + time.Millisecond, time.Hour,
	} {
		now := token.ExpiresAt.Add(-lead)
		wantValid := lead > window
		assert.Equal(t, wantValid, token.Valid(now, window),
			"lead %s should give valid=%v", lead, wantValid)
	}
}

func TestTokenStore(t *testing.T) {
	t.Parallel()
	t.Run("new store is empty", testNewStoreEmpty)
	t.Run("set and get token", testSetAndGetToken)
	t.Run("clear token", testClearToken)
	t.Run("concurrent access", testConcurrentTokenAccess)
}

func testNewStoreEmpty(t *testing.T) {
	t.Parallel()

	store := auth.NewTokenStore()
	assert.Nil(t, store.Get())
}

func testSetAndGetToken(t *testing.T) {
	t.Parallel()

	store := auth.NewTokenStore()
	token := &auth.Token{
		AccessToken: "test-token",
		TokenType:   "bearer",
	}

	store.Set(token)
	retrieved := store.Get()
	assert.NotNil(t, retrieved)
	assert.Equal(t, token.AccessToken, retrieved.AccessToken)
	assert.Equal(t, token.TokenType, retrieved.TokenType)
}

func testClearToken(t *testing.T) {
	t.Parallel()

	store := auth.NewTokenStore()
	token := &auth.Token{
		AccessToken: "test-token",
	}

	store.Set(token)
	assert.NotNil(t, store.Get())

	store.Clear()
	assert.Nil(t, store.Get())
}

func testConcurrentTokenAccess(t *testing.T) {
	t.Parallel()

	store := auth.NewTokenStore()
	done := make(chan bool)

	startTokenSetters(store, done)
	startTokenGetters(store, done)

	for range 4 {
		<-done
	}

	// Should not panic and should have a token
	finalToken := store.Get()
	assert.NotNil(t, finalToken)
	assert.True(t, finalToken.AccessToken == "token-1" || finalToken.AccessToken == "token-2")
}

func startTokenSetters(store *auth.TokenStore, done chan bool) {
	go func() {
		for range 100 {
			store.Set(&auth.Token{
				AccessToken: "token-1",
			})
		}

		done <- true
	}()

	go func() {
		for range 100 {
			store.Set(&auth.Token{
				AccessToken: "token-2",
			})
		}

		done <- true
	}()
}

func startTokenGetters(store *auth.TokenStore, done chan bool) {
	go func() {
		for range 100 {
			_ = store.Get()
		}

		done <- true
	}()

	go func() {
		for range 100 {
			_ = store.Get()
		}

		done <- true
	}()
}
