package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fivetwenty-io/cloudiq/internal/clock"
	"github.com/fivetwenty-io/cloudiq/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrNoCredentials = errors.New("no valid credentials available")
	ErrTokenRequest  = errors.New("token request failed")
)

// TokenManager provides access tokens for API requests.
type TokenManager interface {
	// GetToken returns a valid access token, fetching or refreshing as needed.
	GetToken(ctx context.Context) (string, error)
	// RefreshToken forces a new token fetch regardless of cached state.
	RefreshToken(ctx context.Context) error
	// SetToken manually seeds the cached token.
	SetToken(token string, expiresAt time.Time)
}

// Config holds everything the password grant needs. Values are read only
// after construction; the mutable token lives in the manager's TokenStore.
type Config struct {
	// TokenURL is the full URL of the token endpoint.
	TokenURL string

	// ClientID and ClientSecret authenticate the API client via HTTP Basic.
	ClientID     string
	ClientSecret string

	// Username and Password are the resource owner credentials.
	Username string
	Password string

	// Scope requested with the grant. Defaults to the CustomerApi scope.
	Scope string

	// RefreshWindow is how far before expiry a cached token is refreshed
	// rather than reused. Zero means the default window.
	RefreshWindow time.Duration

	// HTTPClient used for the token request. Defaults to a client with the
	// standard timeout.
	HTTPClient *http.Client

	// Clock supplies the current time. Defaults to the system clock.
	Clock clock.Clock
}

// PasswordTokenManager fetches and caches bearer tokens with the OAuth2
// resource owner password grant, the only grant CloudIQ supports.
type PasswordTokenManager struct {
	config *Config
	store  *TokenStore
	client *http.Client
	clock  clock.Clock
}

// NewPasswordTokenManager creates a token manager for the given credentials.
func NewPasswordTokenManager(config *Config) *PasswordTokenManager {
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: constants.DefaultHTTPTimeout}
	}

	clk := config.Clock
	if clk == nil {
		clk = clock.RealClock{}
	}

	return &PasswordTokenManager{
		config: config,
		store:  NewTokenStore(),
		client: httpClient,
		clock:  clk,
	}
}

// Store exposes the token store so callers owning persistence can observe
// refreshed tokens.
func (m *PasswordTokenManager) Store() *TokenStore {
	return m.store
}

// GetToken returns the cached token when it is still outside the refresh
// window, otherwise fetches a fresh one first.
func (m *PasswordTokenManager) GetToken(ctx context.Context) (string, error) {
	token := m.store.Get()
	if token.Valid(m.clock.Now(), m.refreshWindow()) {
		return token.AccessToken, nil
	}

	err := m.RefreshToken(ctx)
	if err != nil {
		return "", err
	}

	return m.store.Get().AccessToken, nil
}

// RefreshToken fetches a new token unconditionally and replaces the cached
// one.
func (m *PasswordTokenManager) RefreshToken(ctx context.Context) error {
	if m.config.ClientID == "" || m.config.ClientSecret == "" ||
		m.config.Username == "" || m.config.Password == "" {
		return ErrNoCredentials
	}

	token, err := m.requestToken(ctx)
	if err != nil {
		return err
	}

	m.store.Set(token)

	return nil
}

// SetToken seeds the cache with an externally obtained token.
func (m *PasswordTokenManager) SetToken(token string, expiresAt time.Time) {
	m.store.Set(&Token{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	})
}

func (m *PasswordTokenManager) refreshWindow() time.Duration {
	if m.config.RefreshWindow > 0 {
		return m.config.RefreshWindow
	}

	return constants.DefaultTokenRefreshWindow
}

func (m *PasswordTokenManager) scope() string {
	if m.config.Scope != "" {
		return m.config.Scope
	}

	return constants.TokenScope
}

func (m *PasswordTokenManager) requestToken(ctx context.Context) (*Token, error) {
	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("username", m.config.Username)
	form.Set("password", m.config.Password)
	form.Set("scope", m.scope())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.config.TokenURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating token request: %w", err)
	}

	req.SetBasicAuth(m.config.ClientID, m.config.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting token: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, tokenRequestError(resp.StatusCode, body)
	}

	var token Token

	err = json.Unmarshal(body, &token)
	if err != nil {
		return nil, fmt.Errorf("parsing token response: %w", err)
	}

	if token.ExpiresIn > 0 {
		token.ExpiresAt = m.clock.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	}

	return &token, nil
}

// tokenRequestError folds the OAuth error body into the returned error when
// the endpoint sent one.
func tokenRequestError(statusCode int, body []byte) error {
	var oauthErr struct {
		Error       string `json:"error"`
		Description string `json:"error_description"`
	}

	if json.Unmarshal(body, &oauthErr) == nil && oauthErr.Error != "" {
		if oauthErr.Description != "" {
			return fmt.Errorf("%w (status %d): %s: %s",
				ErrTokenRequest, statusCode, oauthErr.Error, oauthErr.Description)
		}

		return fmt.Errorf("%w (status %d): %s", ErrTokenRequest, statusCode, oauthErr.Error)
	}

	return fmt.Errorf("%w (status %d): %s", ErrTokenRequest, statusCode, strings.TrimSpace(string(body)))
}
