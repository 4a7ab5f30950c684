package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/cloudiq/internal/http"
	"github.com/fivetwenty-io/cloudiq/pkg/cloudiq"
)

// UsersClient implements cloudiq.UsersClient
type UsersClient struct {
	httpClient *http.Client
}

// NewUsersClient creates a new users client
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{
		httpClient: httpClient,
	}
}

// List implements cloudiq.UsersClient.List
func (c *UsersClient) List(ctx context.Context, params *cloudiq.QueryParams) (*cloudiq.ListResponse[cloudiq.User], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/Users", query)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	var result cloudiq.ListResponse[cloudiq.User]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing users list response: %w", err)
	}

	return &result, nil
}

// Get implements cloudiq.UsersClient.Get
func (c *UsersClient) Get(ctx context.Context, userID string) (*cloudiq.User, error) {
	path := fmt.Sprintf("/Users/%s", userID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	var user cloudiq.User
	if err := json.Unmarshal(resp.Body, &user); err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	return &user, nil
}

// GetByUsername implements cloudiq.UsersClient.GetByUsername
func (c *UsersClient) GetByUsername(ctx context.Context, username string) (*cloudiq.User, error) {
	query := url.Values{"userName": []string{username}}

	resp, err := c.httpClient.Get(ctx, "/Users/user", query)
	if err != nil {
		return nil, fmt.Errorf("getting user by username: %w", err)
	}

	var user cloudiq.User
	if err := json.Unmarshal(resp.Body, &user); err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	return &user, nil
}

// Delete implements cloudiq.UsersClient.Delete
func (c *UsersClient) Delete(ctx context.Context, userID string) error {
	path := fmt.Sprintf("/Users/%s", userID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	return nil
}
