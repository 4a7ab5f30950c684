package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/cloudiq/internal/http"
)

// AssetsClient implements cloudiq.AssetsClient
type AssetsClient struct {
	httpClient *http.Client
}

// NewAssetsClient creates a new assets client
func NewAssetsClient(httpClient *http.Client) *AssetsClient {
	return &AssetsClient{
		httpClient: httpClient,
	}
}

// DeleteTags implements cloudiq.AssetsClient.DeleteTags
func (c *AssetsClient) DeleteTags(ctx context.Context, assetID int) error {
	path := fmt.Sprintf("/Assets/%d/tags", assetID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting asset tags: %w", err)
	}

	return nil
}
