package ciqclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/cloudiq/internal/client"
	"github.com/fivetwenty-io/cloudiq/internal/constants"
	"github.com/fivetwenty-io/cloudiq/pkg/cloudiq"
)

// New creates a new CloudIQ API client from the given configuration.
//
// The config is normalized before use: an empty endpoint falls back to the
// production API, a missing scheme becomes https, and the token URL is
// derived from the endpoint unless set explicitly. Credentials are validated
// up front so an incomplete password grant fails at construction rather than
// on the first call.
func New(ctx context.Context, config *cloudiq.Config) (cloudiq.Client, error) {
	if config == nil {
		return nil, cloudiq.ErrConfigRequired
	}

	config.APIEndpoint = normalizeEndpoint(config.APIEndpoint)

	if err := validateCredentials(config); err != nil {
		return nil, err
	}

	if config.TokenURL == "" {
		config.TokenURL = config.APIEndpoint + constants.TokenPath
	}

	if config.Scope == "" {
		config.Scope = constants.TokenScope
	}

	cloudiqClient, err := client.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return cloudiqClient, nil
}

// normalizeEndpoint trims a trailing slash and defaults the scheme and the
// endpoint itself.
func normalizeEndpoint(endpoint string) string {
	if endpoint == "" {
		return constants.DefaultAPIEndpoint
	}

	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}

// validateCredentials rejects half-configured password grants. CloudIQ only
// supports the resource owner password grant, which needs all four values;
// a static token or no credentials at all are both fine.
func validateCredentials(config *cloudiq.Config) error {
	if config.AccessToken != "" {
		return nil
	}

	partial := config.ClientID != "" || config.ClientSecret != "" ||
		config.Username != "" || config.Password != ""
	complete := config.ClientID != "" && config.ClientSecret != "" &&
		config.Username != "" && config.Password != ""

	if partial && !complete {
		return cloudiq.ErrMissingCredentials
	}

	return nil
}

// NewWithEndpoint creates a new client with just an API endpoint (no auth).
// Only the unauthenticated ping endpoint will work.
func NewWithEndpoint(ctx context.Context, endpoint string) (cloudiq.Client, error) {
	return New(ctx, &cloudiq.Config{
		APIEndpoint: endpoint,
	})
}

// NewWithToken creates a new client with an API endpoint and access token.
func NewWithToken(ctx context.Context, endpoint, token string) (cloudiq.Client, error) {
	return New(ctx, &cloudiq.Config{
		APIEndpoint: endpoint,
		AccessToken: token,
	})
}

// NewWithPassword creates a new client using the OAuth2 resource owner
// password grant. An empty endpoint targets the production API.
func NewWithPassword(ctx context.Context, endpoint, clientID, clientSecret, username, password string) (cloudiq.Client, error) {
	return New(ctx, &cloudiq.Config{
		APIEndpoint:  endpoint,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Username:     username,
		Password:     password,
	})
}
