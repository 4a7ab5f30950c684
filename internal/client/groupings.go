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

// GroupingsClient implements cloudiq.GroupingsClient
type GroupingsClient struct {
	httpClient *http.Client
}

// NewGroupingsClient creates a new groupings client
func NewGroupingsClient(httpClient *http.Client) *GroupingsClient {
	return &GroupingsClient{
		httpClient: httpClient,
	}
}

// List implements cloudiq.GroupingsClient.List
func (c *GroupingsClient) List(ctx context.Context, orgID int, params *cloudiq.QueryParams) (*cloudiq.ListResponse[cloudiq.Grouping], error) {
	query := url.Values{}
	if params != nil {
		query = params.ToValues()
	}

	query.Set("OrganizationId", strconv.Itoa(orgID))

	resp, err := c.httpClient.Get(ctx, "/Groupings", query)
	if err != nil {
		return nil, fmt.Errorf("listing groupings: %w", err)
	}

	var result cloudiq.ListResponse[cloudiq.Grouping]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing groupings list response: %w", err)
	}

	return &result, nil
}

// Get implements cloudiq.GroupingsClient.Get
func (c *GroupingsClient) Get(ctx context.Context, groupingID int) (*cloudiq.Grouping, error) {
	path := fmt.Sprintf("/Groupings/%d", groupingID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting grouping: %w", err)
	}

	var grouping cloudiq.Grouping
	if err := json.Unmarshal(resp.Body, &grouping); err != nil {
		return nil, fmt.Errorf("parsing grouping response: %w", err)
	}

	return &grouping, nil
}

// Delete implements cloudiq.GroupingsClient.Delete
func (c *GroupingsClient) Delete(ctx context.Context, groupingID int) error {
	path := fmt.Sprintf("/Groupings/%d", groupingID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting grouping: %w", err)
	}

	return nil
}
