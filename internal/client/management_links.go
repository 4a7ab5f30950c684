package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/cloudiq/internal/http"
	"github.com/fivetwenty-io/cloudiq/pkg/cloudiq"
)

// ManagementLinksClient implements cloudiq.ManagementLinksClient
type ManagementLinksClient struct {
	httpClient *http.Client
}

// NewManagementLinksClient creates a new management links client
func NewManagementLinksClient(httpClient *http.Client) *ManagementLinksClient {
	return &ManagementLinksClient{
		httpClient: httpClient,
	}
}

// List implements cloudiq.ManagementLinksClient.List
func (c *ManagementLinksClient) List(ctx context.Context, params *cloudiq.QueryParams) (*cloudiq.ListResponse[cloudiq.ManagementLink], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/ManagementLinks", query)
	if err != nil {
		return nil, fmt.Errorf("listing management links: %w", err)
	}

	var result cloudiq.ListResponse[cloudiq.ManagementLink]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing management links list response: %w", err)
	}

	return &result, nil
}

// ListGrouped implements cloudiq.ManagementLinksClient.ListGrouped
func (c *ManagementLinksClient) ListGrouped(ctx context.Context, params *cloudiq.QueryParams) (*cloudiq.ListResponse[cloudiq.GroupedManagementLink], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/ManagementLinks/grouped", query)
	if err != nil {
		return nil, fmt.Errorf("listing grouped management links: %w", err)
	}

	var result cloudiq.ListResponse[cloudiq.GroupedManagementLink]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing grouped management links response: %w", err)
	}

	return &result, nil
}
