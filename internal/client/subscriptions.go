package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/cloudiq/internal/http"
	"github.com/fivetwenty-io/cloudiq/pkg/cloudiq"
)

// SubscriptionsClient implements cloudiq.SubscriptionsClient
type SubscriptionsClient struct {
	httpClient *http.Client
}

// NewSubscriptionsClient creates a new subscriptions client
func NewSubscriptionsClient(httpClient *http.Client) *SubscriptionsClient {
	return &SubscriptionsClient{
		httpClient: httpClient,
	}
}

// Create implements cloudiq.SubscriptionsClient.Create
func (c *SubscriptionsClient) Create(ctx context.Context, subscription *cloudiq.SubscriptionDetailed) (*cloudiq.SubscriptionDetailed, error) {
	resp, err := c.httpClient.Post(ctx, "/Subscriptions", subscription)
	if err != nil {
		return nil, fmt.Errorf("creating subscription: %w", err)
	}

	var created cloudiq.SubscriptionDetailed
	if err := json.Unmarshal(resp.Body, &created); err != nil {
		return nil, fmt.Errorf("parsing subscription response: %w", err)
	}

	return &created, nil
}

// DeleteTags implements cloudiq.SubscriptionsClient.DeleteTags
func (c *SubscriptionsClient) DeleteTags(ctx context.Context, subscriptionID int) error {
	path := fmt.Sprintf("/Subscriptions/%d/tags", subscriptionID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting subscription tags: %w", err)
	}

	return nil
}
