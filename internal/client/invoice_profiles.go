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

// InvoiceProfilesClient implements cloudiq.InvoiceProfilesClient
type InvoiceProfilesClient struct {
	httpClient *http.Client
}

// NewInvoiceProfilesClient creates a new invoice profiles client
func NewInvoiceProfilesClient(httpClient *http.Client) *InvoiceProfilesClient {
	return &InvoiceProfilesClient{
		httpClient: httpClient,
	}
}

// List implements cloudiq.InvoiceProfilesClient.List
func (c *InvoiceProfilesClient) List(ctx context.Context, orgID int, params *cloudiq.QueryParams) (*cloudiq.ListResponse[cloudiq.InvoiceProfile], error) {
	query := url.Values{}
	if params != nil {
		query = params.ToValues()
	}

	query.Set("OrganizationId", strconv.Itoa(orgID))

	resp, err := c.httpClient.Get(ctx, "/InvoiceProfiles", query)
	if err != nil {
		return nil, fmt.Errorf("listing invoice profiles: %w", err)
	}

	var result cloudiq.ListResponse[cloudiq.InvoiceProfile]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing invoice profiles list response: %w", err)
	}

	return &result, nil
}

// Get implements cloudiq.InvoiceProfilesClient.Get
func (c *InvoiceProfilesClient) Get(ctx context.Context, profileID int) (*cloudiq.InvoiceProfile, error) {
	path := fmt.Sprintf("/InvoiceProfiles/%d", profileID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting invoice profile: %w", err)
	}

	var profile cloudiq.InvoiceProfile
	if err := json.Unmarshal(resp.Body, &profile); err != nil {
		return nil, fmt.Errorf("parsing invoice profile response: %w", err)
	}

	return &profile, nil
}

// Delete implements cloudiq.InvoiceProfilesClient.Delete
func (c *InvoiceProfilesClient) Delete(ctx context.Context, profileID int) error {
	path := fmt.Sprintf("/InvoiceProfiles/%d", profileID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting invoice profile: %w", err)
	}

	return nil
}
