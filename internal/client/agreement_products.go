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

// AgreementProductsClient implements cloudiq.AgreementProductsClient
type AgreementProductsClient struct {
	httpClient *http.Client
}

// NewAgreementProductsClient creates a new agreement products client
func NewAgreementProductsClient(httpClient *http.Client) *AgreementProductsClient {
	return &AgreementProductsClient{
		httpClient: httpClient,
	}
}

// List implements cloudiq.AgreementProductsClient.List
func (c *AgreementProductsClient) List(ctx context.Context, orgID int, params *cloudiq.QueryParams) (*cloudiq.ListResponse[cloudiq.AgreementProduct], error) {
	query := url.Values{}
	if params != nil {
		query = params.ToValues()
	}

	query.Set("OrganizationId", strconv.Itoa(orgID))

	resp, err := c.httpClient.Get(ctx, "/AgreementProducts", query)
	if err != nil {
		return nil, fmt.Errorf("listing agreement products: %w", err)
	}

	var result cloudiq.ListResponse[cloudiq.AgreementProduct]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing agreement products list response: %w", err)
	}

	return &result, nil
}

// GetSupportedBillingCycles implements cloudiq.AgreementProductsClient.GetSupportedBillingCycles
func (c *AgreementProductsClient) GetSupportedBillingCycles(ctx context.Context, partNumber string, params *cloudiq.QueryParams) ([]cloudiq.BillingCycle, error) {
	path := fmt.Sprintf("/AgreementProducts/%s/supportedbillingcycles", partNumber)

	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting supported billing cycles: %w", err)
	}

	// The endpoint returns a bare JSON array, not a paged envelope.
	var cycles []cloudiq.BillingCycle
	if err := json.Unmarshal(resp.Body, &cycles); err != nil {
		return nil, fmt.Errorf("parsing supported billing cycles response: %w", err)
	}

	return cycles, nil
}
