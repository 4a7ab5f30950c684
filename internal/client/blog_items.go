package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/cloudiq/internal/http"
	"github.com/fivetwenty-io/cloudiq/pkg/cloudiq"
)

// BlogItemsClient implements cloudiq.BlogItemsClient
type BlogItemsClient struct {
	httpClient *http.Client
}

// NewBlogItemsClient creates a new blog items client
func NewBlogItemsClient(httpClient *http.Client) *BlogItemsClient {
	return &BlogItemsClient{
		httpClient: httpClient,
	}
}

// List implements cloudiq.BlogItemsClient.List
func (c *BlogItemsClient) List(ctx context.Context, params *cloudiq.QueryParams) (*cloudiq.ListResponse[cloudiq.BlogItem], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/BlogItems", query)
	if err != nil {
		return nil, fmt.Errorf("listing blog items: %w", err)
	}

	var result cloudiq.ListResponse[cloudiq.BlogItem]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing blog items list response: %w", err)
	}

	return &result, nil
}
