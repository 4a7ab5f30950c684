package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/cloudiq/internal/http"
	"github.com/fivetwenty-io/cloudiq/pkg/cloudiq"
)

// OrganizationAccessClient implements cloudiq.OrganizationAccessClient
type OrganizationAccessClient struct {
	httpClient *http.Client
}

// NewOrganizationAccessClient creates a new organization access client
func NewOrganizationAccessClient(httpClient *http.Client) *OrganizationAccessClient {
	return &OrganizationAccessClient{
		httpClient: httpClient,
	}
}

// List implements cloudiq.OrganizationAccessClient.List
func (c *OrganizationAccessClient) List(ctx context.Context, params *cloudiq.QueryParams) (*cloudiq.ListResponse[cloudiq.OrganizationAccess], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/OrganizationAccess", query)
	if err != nil {
		return nil, fmt.Errorf("listing organization access: %w", err)
	}

	var result cloudiq.ListResponse[cloudiq.OrganizationAccess]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing organization access list response: %w", err)
	}

	return &result, nil
}

// ListGrants implements cloudiq.OrganizationAccessClient.ListGrants
func (c *OrganizationAccessClient) ListGrants(ctx context.Context, params *cloudiq.QueryParams) (*cloudiq.ListResponse[cloudiq.OrganizationAccess], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/OrganizationAccess/grant", query)
	if err != nil {
		return nil, fmt.Errorf("listing organization access grants: %w", err)
	}

	var result cloudiq.ListResponse[cloudiq.OrganizationAccess]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing organization access grants response: %w", err)
	}

	return &result, nil
}
