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

// BillingCyclesClient implements cloudiq.BillingCyclesClient
type BillingCyclesClient struct {
	httpClient *http.Client
}

// NewBillingCyclesClient creates a new billing cycles client
func NewBillingCyclesClient(httpClient *http.Client) *BillingCyclesClient {
	return &BillingCyclesClient{
		httpClient: httpClient,
	}
}

// List implements cloudiq.BillingCyclesClient.List
func (c *BillingCyclesClient) List(ctx context.Context, includeUnknown bool) ([]cloudiq.BillingCycle, error) {
	query := url.Values{"includeUnknown": []string{strconv.FormatBool(includeUnknown)}}

	resp, err := c.httpClient.Get(ctx, "/BillingCycles", query)
	if err != nil {
		return nil, fmt.Errorf("listing billing cycles: %w", err)
	}

	var cycles []cloudiq.BillingCycle
	if err := json.Unmarshal(resp.Body, &cycles); err != nil {
		return nil, fmt.Errorf("parsing billing cycles response: %w", err)
	}

	return cycles, nil
}

// ListForProductVariant implements cloudiq.BillingCyclesClient.ListForProductVariant
func (c *BillingCyclesClient) ListForProductVariant(ctx context.Context, productVariantID int) ([]cloudiq.BillingCycle, error) {
	path := fmt.Sprintf("/BillingCycles/productVariant/%d", productVariantID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing product variant billing cycles: %w", err)
	}

	var cycles []cloudiq.BillingCycle
	if err := json.Unmarshal(resp.Body, &cycles); err != nil {
		return nil, fmt.Errorf("parsing billing cycles response: %w", err)
	}

	return cycles, nil
}

// GetCSPNameDictionary implements cloudiq.BillingCyclesClient.GetCSPNameDictionary
func (c *BillingCyclesClient) GetCSPNameDictionary(ctx context.Context) (map[string]string, error) {
	resp, err := c.httpClient.Get(ctx, "/BillingCycles/cspNameDictionary", nil)
	if err != nil {
		return nil, fmt.Errorf("getting csp name dictionary: %w", err)
	}

	var dictionary map[string]string
	if err := json.Unmarshal(resp.Body, &dictionary); err != nil {
		return nil, fmt.Errorf("parsing csp name dictionary response: %w", err)
	}

	return dictionary, nil
}
