package auth

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"
)

// Static errors for err113 compliance.
var (
	ErrNoConfigPersister = errors.New("no config persister configured")
)

// ConfigPersister saves a refreshed token so later CLI invocations can reuse
// it instead of re-authenticating.
type ConfigPersister interface {
	UpdateToken(endpoint, token string, expiresAt time.Time) error
}

// ConfigTokenManager wraps PasswordTokenManager and persists every refreshed
// token through a ConfigPersister.
type ConfigTokenManager struct {
	passwordManager *PasswordTokenManager
	configPersister ConfigPersister
	endpoint        string
	mutex           sync.RWMutex
	lastToken       string
	lastExpiry      time.Time
}

// NewConfigTokenManager creates a config-persisting token manager. When a
// stored token is supplied it seeds the cache so a still-valid token skips
// the first grant entirely.
func NewConfigTokenManager(config *Config, persister ConfigPersister, endpoint, storedToken string, storedExpiry time.Time) *ConfigTokenManager {
	passwordManager := NewPasswordTokenManager(config)

	if storedToken != "" {
		passwordManager.SetToken(storedToken, storedExpiry)
	}

	return &ConfigTokenManager{
		passwordManager: passwordManager,
		configPersister: persister,
		endpoint:        endpoint,
		lastToken:       storedToken,
		lastExpiry:      storedExpiry,
	}
}

// GetToken returns a valid access token, refreshing and persisting if necessary.
func (m *ConfigTokenManager) GetToken(ctx context.Context) (string, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	token, err := m.passwordManager.GetToken(ctx)
	if err != nil {
		return "", err
	}

	// Persist when the underlying manager handed out a fresher token than
	// the one loaded from config.
	current := m.passwordManager.Store().Get()
	if current != nil && (current.AccessToken != m.lastToken || !current.ExpiresAt.Equal(m.lastExpiry)) {
		persistErr := m.persistToken(current)
		if persistErr != nil {
			// A failed save must not fail the request.
			_, _ = fmt.Fprintf(os.Stderr, "Warning: failed to persist refreshed token: %v\n", persistErr)
		}

		m.lastToken = current.AccessToken
		m.lastExpiry = current.ExpiresAt
	}

	return token, nil
}

// RefreshToken forces a token refresh and persists the result.
func (m *ConfigTokenManager) RefreshToken(ctx context.Context) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	err := m.passwordManager.RefreshToken(ctx)
	if err != nil {
		return err
	}

	current := m.passwordManager.Store().Get()
	if current != nil {
		persistErr := m.persistToken(current)
		if persistErr != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: failed to persist refreshed token: %v\n", persistErr)
		}

		m.lastToken = current.AccessToken
		m.lastExpiry = current.ExpiresAt
	}

	return nil
}

// SetToken manually sets the access token.
func (m *ConfigTokenManager) SetToken(token string, expiresAt time.Time) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.passwordManager.SetToken(token, expiresAt)
	m.lastToken = token
	m.lastExpiry = expiresAt
}

// TokenExpiry returns the current token's expiration time.
func (m *ConfigTokenManager) TokenExpiry() time.Time {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	token := m.passwordManager.Store().Get()
	if token == nil {
		return time.Time{}
	}

	return token.ExpiresAt
}

func (m *ConfigTokenManager) persistToken(token *Token) error {
	if m.configPersister == nil {
		return ErrNoConfigPersister
	}

	err := m.configPersister.UpdateToken(m.endpoint, token.AccessToken, token.ExpiresAt)
	if err != nil {
		return fmt.Errorf("updating stored token: %w", err)
	}

	return nil
}
