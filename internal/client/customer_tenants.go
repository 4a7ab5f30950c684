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

// CustomerTenantsClient implements cloudiq.CustomerTenantsClient
type CustomerTenantsClient struct {
	httpClient *http.Client
}

// NewCustomerTenantsClient creates a new customer tenants client
func NewCustomerTenantsClient(httpClient *http.Client) *CustomerTenantsClient {
	return &CustomerTenantsClient{
		httpClient: httpClient,
	}
}

// List implements cloudiq.CustomerTenantsClient.List
func (c *CustomerTenantsClient) List(ctx context.Context, orgID int, params *cloudiq.QueryParams) (*cloudiq.ListResponse[cloudiq.CustomerTenant], error) {
	query := url.Values{}
	if params != nil {
		query = params.ToValues()
	}

	query.Set("OrganizationId", strconv.Itoa(orgID))

	resp, err := c.httpClient.Get(ctx, "/CustomerTenants", query)
	if err != nil {
		return nil, fmt.Errorf("listing customer tenants: %w", err)
	}

	var result cloudiq.ListResponse[cloudiq.CustomerTenant]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing customer tenants list response: %w", err)
	}

	return &result, nil
}

// Get implements cloudiq.CustomerTenantsClient.Get
func (c *CustomerTenantsClient) Get(ctx context.Context, tenantID int) (*cloudiq.CustomerTenant, error) {
	path := fmt.Sprintf("/CustomerTenants/%d", tenantID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting customer tenant: %w", err)
	}

	var tenant cloudiq.CustomerTenant
	if err := json.Unmarshal(resp.Body, &tenant); err != nil {
		return nil, fmt.Errorf("parsing customer tenant response: %w", err)
	}

	return &tenant, nil
}

// GetDetailed implements cloudiq.CustomerTenantsClient.GetDetailed
func (c *CustomerTenantsClient) GetDetailed(ctx context.Context, tenantID int) (*cloudiq.CustomerTenantDetailed, error) {
	path := fmt.Sprintf("/CustomerTenants/%d/detailed", tenantID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting detailed customer tenant: %w", err)
	}

	var tenant cloudiq.CustomerTenantDetailed
	if err := json.Unmarshal(resp.Body, &tenant); err != nil {
		return nil, fmt.Errorf("parsing detailed customer tenant response: %w", err)
	}

	return &tenant, nil
}

// GetAzurePlan implements cloudiq.CustomerTenantsClient.GetAzurePlan
func (c *CustomerTenantsClient) GetAzurePlan(ctx context.Context, tenantID int) (*cloudiq.AzurePlan, error) {
	path := fmt.Sprintf("/CustomerTenants/%d/AzurePlan", tenantID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting tenant azure plan: %w", err)
	}

	var plan cloudiq.AzurePlan
	if err := json.Unmarshal(resp.Body, &plan); err != nil {
		return nil, fmt.Errorf("parsing azure plan response: %w", err)
	}

	return &plan, nil
}

// Create implements cloudiq.CustomerTenantsClient.Create
func (c *CustomerTenantsClient) Create(ctx context.Context, tenant *cloudiq.CustomerTenantDetailed) (*cloudiq.CustomerTenantDetailed, error) {
	resp, err := c.httpClient.Post(ctx, "/CustomerTenants", tenant)
	if err != nil {
		return nil, fmt.Errorf("creating customer tenant: %w", err)
	}

	// The response repeats the envelope with the generated tenant id and
	// admin password filled in.
	var created cloudiq.CustomerTenantDetailed
	if err := json.Unmarshal(resp.Body, &created); err != nil {
		return nil, fmt.Errorf("parsing customer tenant response: %w", err)
	}

	return &created, nil
}

// Delete implements cloudiq.CustomerTenantsClient.Delete
func (c *CustomerTenantsClient) Delete(ctx context.Context, tenantID int) error {
	path := fmt.Sprintf("/CustomerTenants/%d", tenantID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting customer tenant: %w", err)
	}

	return nil
}

// GetAgreements implements cloudiq.CustomerTenantsClient.GetAgreements
func (c *CustomerTenantsClient) GetAgreements(ctx context.Context, tenantID int, agreementTypeConsent int) ([]cloudiq.ServiceAccountAgreement, error) {
	path := fmt.Sprintf("/CustomerTenants/%d/Agreements", tenantID)
	query := url.Values{"AgreementTypeConsent": []string{strconv.Itoa(agreementTypeConsent)}}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting tenant agreements: %w", err)
	}

	var agreements []cloudiq.ServiceAccountAgreement
	if err := json.Unmarshal(resp.Body, &agreements); err != nil {
		return nil, fmt.Errorf("parsing tenant agreements response: %w", err)
	}

	return agreements, nil
}

// CreateAgreement implements cloudiq.CustomerTenantsClient.CreateAgreement
func (c *CustomerTenantsClient) CreateAgreement(ctx context.Context, tenantID int, agreement *cloudiq.CustomerTenantAgreement) (*cloudiq.CustomerTenantAgreement, error) {
	path := fmt.Sprintf("/customertenants/%d/agreements", tenantID)

	resp, err := c.httpClient.Post(ctx, path, agreement)
	if err != nil {
		return nil, fmt.Errorf("creating tenant agreement: %w", err)
	}

	// The endpoint acknowledges with an empty body on some deployments.
	if len(resp.Body) == 0 {
		return agreement, nil
	}

	var created cloudiq.CustomerTenantAgreement
	if err := json.Unmarshal(resp.Body, &created); err != nil {
		return nil, fmt.Errorf("parsing tenant agreement response: %w", err)
	}

	return &created, nil
}
