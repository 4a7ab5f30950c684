package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/cloudiq/internal/http"
	"github.com/fivetwenty-io/cloudiq/pkg/cloudiq"
)

// AzurePlansClient implements cloudiq.AzurePlansClient
type AzurePlansClient struct {
	httpClient *http.Client
}

// NewAzurePlansClient creates a new Azure plans client
func NewAzurePlansClient(httpClient *http.Client) *AzurePlansClient {
	return &AzurePlansClient{
		httpClient: httpClient,
	}
}

// Get implements cloudiq.AzurePlansClient.Get
func (c *AzurePlansClient) Get(ctx context.Context, planID int) (*cloudiq.AzurePlan, error) {
	path := fmt.Sprintf("/AzurePlans/%d", planID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting azure plan: %w", err)
	}

	var plan cloudiq.AzurePlan
	if err := json.Unmarshal(resp.Body, &plan); err != nil {
		return nil, fmt.Errorf("parsing azure plan response: %w", err)
	}

	return &plan, nil
}

// ListSubscriptions implements cloudiq.AzurePlansClient.ListSubscriptions
func (c *AzurePlansClient) ListSubscriptions(ctx context.Context, planID int, params *cloudiq.QueryParams) (*cloudiq.ListResponse[cloudiq.AzureSubscription], error) {
	path := fmt.Sprintf("/AzurePlans/%d/azureSubscriptions", planID)

	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing azure subscriptions: %w", err)
	}

	var result cloudiq.ListResponse[cloudiq.AzureSubscription]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing azure subscriptions list response: %w", err)
	}

	return &result, nil
}

// RenameSubscription implements cloudiq.AzurePlansClient.RenameSubscription
func (c *AzurePlansClient) RenameSubscription(ctx context.Context, planID int, subscriptionID string, rename *cloudiq.AzureSubscriptionRename) (*cloudiq.AzureSubscription, error) {
	path := fmt.Sprintf("/AzurePlans/%d/azureSubscriptions/%s/rename", planID, subscriptionID)

	resp, err := c.httpClient.Patch(ctx, path, rename)
	if err != nil {
		return nil, fmt.Errorf("renaming azure subscription: %w", err)
	}

	var updated cloudiq.AzureSubscription
	if err := json.Unmarshal(resp.Body, &updated); err != nil {
		return nil, fmt.Errorf("parsing azure subscription response: %w", err)
	}

	return &updated, nil
}
