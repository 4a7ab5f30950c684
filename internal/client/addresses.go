package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/cloudiq/internal/http"
	"github.com/fivetwenty-io/cloudiq/pkg/cloudiq"
)

// AddressesClient implements cloudiq.AddressesClient
type AddressesClient struct {
	httpClient *http.Client
}

// NewAddressesClient creates a new addresses client
func NewAddressesClient(httpClient *http.Client) *AddressesClient {
	return &AddressesClient{
		httpClient: httpClient,
	}
}

// List implements cloudiq.AddressesClient.List
func (c *AddressesClient) List(ctx context.Context, orgID int, params *cloudiq.QueryParams) (*cloudiq.ListResponse[cloudiq.Address], error) {
	path := fmt.Sprintf("/organizations/%d/Addresses", orgID)

	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing addresses: %w", err)
	}

	var result cloudiq.ListResponse[cloudiq.Address]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing addresses list response: %w", err)
	}

	return &result, nil
}

// Get implements cloudiq.AddressesClient.Get
func (c *AddressesClient) Get(ctx context.Context, orgID, addressID int) (*cloudiq.Address, error) {
	path := fmt.Sprintf("/organizations/%d/Addresses/%d", orgID, addressID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting address: %w", err)
	}

	var address cloudiq.Address
	if err := json.Unmarshal(resp.Body, &address); err != nil {
		return nil, fmt.Errorf("parsing address response: %w", err)
	}

	return &address, nil
}
