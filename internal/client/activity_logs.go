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

// ActivityLogsClient implements cloudiq.ActivityLogsClient
type ActivityLogsClient struct {
	httpClient *http.Client
}

// NewActivityLogsClient creates a new activity logs client
func NewActivityLogsClient(httpClient *http.Client) *ActivityLogsClient {
	return &ActivityLogsClient{
		httpClient: httpClient,
	}
}

// List implements cloudiq.ActivityLogsClient.List
func (c *ActivityLogsClient) List(ctx context.Context, entityID int, params *cloudiq.QueryParams) (*cloudiq.ListResponse[cloudiq.ActivityLogItem], error) {
	query := url.Values{}
	if params != nil {
		query = params.ToValues()
	}

	query.Set("Id", strconv.Itoa(entityID))

	resp, err := c.httpClient.Get(ctx, "/ActivityLogs", query)
	if err != nil {
		return nil, fmt.Errorf("listing activity logs: %w", err)
	}

	var result cloudiq.ListResponse[cloudiq.ActivityLogItem]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing activity logs list response: %w", err)
	}

	return &result, nil
}
