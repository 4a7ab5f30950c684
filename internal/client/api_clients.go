package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/cloudiq/internal/http"
	"github.com/fivetwenty-io/cloudiq/pkg/cloudiq"
)

// APIClientsClient implements cloudiq.ClientsClient
type APIClientsClient struct {
	httpClient *http.Client
}

// NewAPIClientsClient creates a new API clients client
func NewAPIClientsClient(httpClient *http.Client) *APIClientsClient {
	return &APIClientsClient{
		httpClient: httpClient,
	}
}

// List implements cloudiq.ClientsClient.List
func (c *APIClientsClient) List(ctx context.Context, params *cloudiq.QueryParams) (*cloudiq.ListResponse[cloudiq.APIClient], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/Clients", query)
	if err != nil {
		return nil, fmt.Errorf("listing api clients: %w", err)
	}

	var result cloudiq.ListResponse[cloudiq.APIClient]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing api clients list response: %w", err)
	}

	return &result, nil
}

// Get implements cloudiq.ClientsClient.Get
func (c *APIClientsClient) Get(ctx context.Context, clientID string) (*cloudiq.APIClient, error) {
	path := fmt.Sprintf("/Clients/%s", clientID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting api client: %w", err)
	}

	var apiClient cloudiq.APIClient
	if err := json.Unmarshal(resp.Body, &apiClient); err != nil {
		return nil, fmt.Errorf("parsing api client response: %w", err)
	}

	return &apiClient, nil
}

// Create implements cloudiq.ClientsClient.Create
func (c *APIClientsClient) Create(ctx context.Context, request *cloudiq.APIClientCreateRequest) (*cloudiq.APIClient, error) {
	resp, err := c.httpClient.Post(ctx, "/Clients", request)
	if err != nil {
		return nil, fmt.Errorf("creating api client: %w", err)
	}

	var created cloudiq.APIClient
	if err := json.Unmarshal(resp.Body, &created); err != nil {
		return nil, fmt.Errorf("parsing api client response: %w", err)
	}

	return &created, nil
}

// Update implements cloudiq.ClientsClient.Update
func (c *APIClientsClient) Update(ctx context.Context, clientID string, request *cloudiq.APIClientCreateRequest) (*cloudiq.APIClient, error) {
	path := fmt.Sprintf("/Clients/%s", clientID)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating api client: %w", err)
	}

	var updated cloudiq.APIClient
	if err := json.Unmarshal(resp.Body, &updated); err != nil {
		return nil, fmt.Errorf("parsing api client response: %w", err)
	}

	return &updated, nil
}

// Delete implements cloudiq.ClientsClient.Delete
func (c *APIClientsClient) Delete(ctx context.Context, clientID string) error {
	path := fmt.Sprintf("/Clients/%s", clientID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting api client: %w", err)
	}

	return nil
}
