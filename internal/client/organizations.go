package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/cloudiq/internal/http"
	"github.com/fivetwenty-io/cloudiq/pkg/cloudiq"
)

// OrganizationsClient implements cloudiq.OrganizationsClient
type OrganizationsClient struct {
	httpClient *http.Client
}

// NewOrganizationsClient creates a new organizations client
func NewOrganizationsClient(httpClient *http.Client) *OrganizationsClient {
	return &OrganizationsClient{
		httpClient: httpClient,
	}
}

// List implements cloudiq.OrganizationsClient.List
func (c *OrganizationsClient) List(ctx context.Context, params *cloudiq.QueryParams) (*cloudiq.ListResponse[cloudiq.Organization], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/Organizations", query)
	if err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}

	var result cloudiq.ListResponse[cloudiq.Organization]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing organizations list response: %w", err)
	}

	return &result, nil
}

// Get implements cloudiq.OrganizationsClient.Get
func (c *OrganizationsClient) Get(ctx context.Context, orgID int) (*cloudiq.Organization, error) {
	path := fmt.Sprintf("/Organizations/%d", orgID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting organization: %w", err)
	}

	var org cloudiq.Organization
	if err := json.Unmarshal(resp.Body, &org); err != nil {
		return nil, fmt.Errorf("parsing organization response: %w", err)
	}

	return &org, nil
}

// GetSalesContact implements cloudiq.OrganizationsClient.GetSalesContact
func (c *OrganizationsClient) GetSalesContact(ctx context.Context, orgID int) (*cloudiq.SalesContact, error) {
	path := fmt.Sprintf("/Organizations/%d/salescontact", orgID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting sales contact: %w", err)
	}

	var contact cloudiq.SalesContact
	if err := json.Unmarshal(resp.Body, &contact); err != nil {
		return nil, fmt.Errorf("parsing sales contact response: %w", err)
	}

	return &contact, nil
}

// HasAccess implements cloudiq.OrganizationsClient.HasAccess
func (c *OrganizationsClient) HasAccess(ctx context.Context, orgID int) (bool, error) {
	path := fmt.Sprintf("/Organizations/HasAccess/%d", orgID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return false, fmt.Errorf("checking organization access: %w", err)
	}

	// The endpoint returns a bare JSON boolean.
	var hasAccess bool
	if err := json.Unmarshal(resp.Body, &hasAccess); err != nil {
		return false, fmt.Errorf("parsing access response: %w", err)
	}

	return hasAccess, nil
}
