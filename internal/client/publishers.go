package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/cloudiq/internal/http"
	"github.com/fivetwenty-io/cloudiq/pkg/cloudiq"
)

// PublishersClient implements cloudiq.PublishersClient
type PublishersClient struct {
	httpClient *http.Client
}

// NewPublishersClient creates a new publishers client
func NewPublishersClient(httpClient *http.Client) *PublishersClient {
	return &PublishersClient{
		httpClient: httpClient,
	}
}

// List implements cloudiq.PublishersClient.List
func (c *PublishersClient) List(ctx context.Context, params *cloudiq.QueryParams) (*cloudiq.ListResponse[cloudiq.Publisher], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/publishers", query)
	if err != nil {
		return nil, fmt.Errorf("listing publishers: %w", err)
	}

	var result cloudiq.ListResponse[cloudiq.Publisher]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing publishers list response: %w", err)
	}

	return &result, nil
}

// Get implements cloudiq.PublishersClient.Get
func (c *PublishersClient) Get(ctx context.Context, publisherID int) (*cloudiq.Publisher, error) {
	path := fmt.Sprintf("/publishers/%d", publisherID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting publisher: %w", err)
	}

	var publisher cloudiq.Publisher
	if err := json.Unmarshal(resp.Body, &publisher); err != nil {
		return nil, fmt.Errorf("parsing publisher response: %w", err)
	}

	return &publisher, nil
}
