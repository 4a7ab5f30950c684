package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/fivetwenty-io/cloudiq/internal/http"
	"github.com/fivetwenty-io/cloudiq/pkg/cloudiq"
)

// ConsumersClient implements cloudiq.ConsumersClient
type ConsumersClient struct {
	httpClient *http.Client
}

// NewConsumersClient creates a new consumers client
func NewConsumersClient(httpClient *http.Client) *ConsumersClient {
	return &ConsumersClient{
		httpClient: httpClient,
	}
}

// List implements cloudiq.ConsumersClient.List
func (c *ConsumersClient) List(ctx context.Context, orgID int, params *cloudiq.QueryParams) (*cloudiq.ListResponse[cloudiq.Consumer], error) {
	query := url.Values{}
	if params != nil {
		query = params.ToValues()
	}

	query.Set("OrganizationId", strconv.Itoa(orgID))

	resp, err := c.httpClient.Get(ctx, "/Consumers", query)
	if err != nil {
		return nil, fmt.Errorf("listing consumers: %w", err)
	}

	var result cloudiq.ListResponse[cloudiq.Consumer]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing consumers list response: %w", err)
	}

	return &result, nil
}

// Get implements cloudiq.ConsumersClient.Get
func (c *ConsumersClient) Get(ctx context.Context, consumerID int) (*cloudiq.Consumer, error) {
	path := fmt.Sprintf("/Consumers/%d", consumerID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting consumer: %w", err)
	}

	var consumer cloudiq.Consumer
	if err := json.Unmarshal(resp.Body, &consumer); err != nil {
		return nil, fmt.Errorf("parsing consumer response: %w", err)
	}

	return &consumer, nil
}

// Delete implements cloudiq.ConsumersClient.Delete
func (c *ConsumersClient) Delete(ctx context.Context, consumerID int) error {
	path := fmt.Sprintf("/Consumers/%d", consumerID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting consumer: %w", err)
	}

	return nil
}
