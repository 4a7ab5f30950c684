package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/cloudiq/internal/http"
	"github.com/fivetwenty-io/cloudiq/pkg/cloudiq"
)

// RegionsClient implements cloudiq.RegionsClient
type RegionsClient struct {
	httpClient *http.Client
}

// NewRegionsClient creates a new regions client
func NewRegionsClient(httpClient *http.Client) *RegionsClient {
	return &RegionsClient{
		httpClient: httpClient,
	}
}

// List implements cloudiq.RegionsClient.List
func (c *RegionsClient) List(ctx context.Context, params *cloudiq.QueryParams) (*cloudiq.ListResponse[cloudiq.Region], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/Regions", query)
	if err != nil {
		return nil, fmt.Errorf("listing regions: %w", err)
	}

	var result cloudiq.ListResponse[cloudiq.Region]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing regions list response: %w", err)
	}

	return &result, nil
}

// GetByCode implements cloudiq.RegionsClient.GetByCode
func (c *RegionsClient) GetByCode(ctx context.Context, regionCode string) (*cloudiq.Region, error) {
	query := url.Values{"regionCode": []string{regionCode}}

	resp, err := c.httpClient.Get(ctx, "/Regions/bycode", query)
	if err != nil {
		return nil, fmt.Errorf("getting region by code: %w", err)
	}

	var region cloudiq.Region
	if err := json.Unmarshal(resp.Body, &region); err != nil {
		return nil, fmt.Errorf("parsing region response: %w", err)
	}

	return &region, nil
}
