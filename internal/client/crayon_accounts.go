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

// CrayonAccountsClient implements cloudiq.CrayonAccountsClient
type CrayonAccountsClient struct {
	httpClient *http.Client
}

// NewCrayonAccountsClient creates a new Crayon accounts client
func NewCrayonAccountsClient(httpClient *http.Client) *CrayonAccountsClient {
	return &CrayonAccountsClient{
		httpClient: httpClient,
	}
}

// List implements cloudiq.CrayonAccountsClient.List
func (c *CrayonAccountsClient) List(ctx context.Context, orgID int, params *cloudiq.QueryParams) (*cloudiq.ListResponse[cloudiq.CrayonAccount], error) {
	query := url.Values{}
	if params != nil {
		query = params.ToValues()
	}

	query.Set("OrganizationId", strconv.Itoa(orgID))

	resp, err := c.httpClient.Get(ctx, "/CrayonAccounts", query)
	if err != nil {
		return nil, fmt.Errorf("listing crayon accounts: %w", err)
	}

	var result cloudiq.ListResponse[cloudiq.CrayonAccount]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing crayon accounts list response: %w", err)
	}

	return &result, nil
}

// Get implements cloudiq.CrayonAccountsClient.Get
func (c *CrayonAccountsClient) Get(ctx context.Context, accountID int) (*cloudiq.CrayonAccount, error) {
	path := fmt.Sprintf("/CrayonAccounts/%d", accountID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting crayon account: %w", err)
	}

	var account cloudiq.CrayonAccount
	if err := json.Unmarshal(resp.Body, &account); err != nil {
		return nil, fmt.Errorf("parsing crayon account response: %w", err)
	}

	return &account, nil
}
