package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/cloudiq/internal/http"
	"github.com/fivetwenty-io/cloudiq/pkg/cloudiq"
)

// UsageCostClient implements cloudiq.UsageCostClient
type UsageCostClient struct {
	httpClient *http.Client
}

// NewUsageCostClient creates a new usage cost client
func NewUsageCostClient(httpClient *http.Client) *UsageCostClient {
	return &UsageCostClient{
		httpClient: httpClient,
	}
}

// GetForOrganization implements cloudiq.UsageCostClient.GetForOrganization
func (c *UsageCostClient) GetForOrganization(ctx context.Context, orgID int, params *cloudiq.QueryParams) (*cloudiq.ListResponse[cloudiq.UsageCost], error) {
	path := fmt.Sprintf("/UsageCost/organization/%d", orgID)

	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting organization usage cost: %w", err)
	}

	var result cloudiq.ListResponse[cloudiq.UsageCost]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing usage cost response: %w", err)
	}

	return &result, nil
}
