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

// BillingStatementsClient implements cloudiq.BillingStatementsClient
type BillingStatementsClient struct {
	httpClient *http.Client
}

// NewBillingStatementsClient creates a new billing statements client
func NewBillingStatementsClient(httpClient *http.Client) *BillingStatementsClient {
	return &BillingStatementsClient{
		httpClient: httpClient,
	}
}

// List implements cloudiq.BillingStatementsClient.List
func (c *BillingStatementsClient) List(ctx context.Context, orgID int, params *cloudiq.QueryParams) (*cloudiq.ListResponse[cloudiq.BillingStatement], error) {
	query := url.Values{}
	if params != nil {
		query = params.ToValues()
	}

	query.Set("OrganizationId", strconv.Itoa(orgID))

	resp, err := c.httpClient.Get(ctx, "/BillingStatements", query)
	if err != nil {
		return nil, fmt.Errorf("listing billing statements: %w", err)
	}

	var result cloudiq.ListResponse[cloudiq.BillingStatement]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing billing statements list response: %w", err)
	}

	return &result, nil
}

// ListGrouped implements cloudiq.BillingStatementsClient.ListGrouped
func (c *BillingStatementsClient) ListGrouped(ctx context.Context, orgID int, params *cloudiq.QueryParams) (*cloudiq.ListResponse[cloudiq.GroupedBillingStatement], error) {
	query := url.Values{}
	if params != nil {
		query = params.ToValues()
	}

	query.Set("OrganizationId", strconv.Itoa(orgID))

	resp, err := c.httpClient.Get(ctx, "/BillingStatements/grouped", query)
	if err != nil {
		return nil, fmt.Errorf("listing grouped billing statements: %w", err)
	}

	var result cloudiq.ListResponse[cloudiq.GroupedBillingStatement]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing grouped billing statements list response: %w", err)
	}

	return &result, nil
}

// GetExcelFile implements cloudiq.BillingStatementsClient.GetExcelFile
func (c *BillingStatementsClient) GetExcelFile(ctx context.Context, statementID int) ([]byte, error) {
	path := fmt.Sprintf("/BillingStatements/file/%d", statementID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("downloading billing statement excel file: %w", err)
	}

	return resp.Body, nil
}

// GetReconciliationFile implements cloudiq.BillingStatementsClient.GetReconciliationFile
func (c *BillingStatementsClient) GetReconciliationFile(ctx context.Context, statementID int) ([]byte, error) {
	path := fmt.Sprintf("/BillingStatements/%d/reconciliationfile", statementID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("downloading billing statement reconciliation file: %w", err)
	}

	return resp.Body, nil
}

// GetRecordsFile implements cloudiq.BillingStatementsClient.GetRecordsFile
func (c *BillingStatementsClient) GetRecordsFile(ctx context.Context, statementID int) ([]byte, error) {
	path := fmt.Sprintf("/BillingStatements/%d/billingrecordsfile", statementID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("downloading billing statement records file: %w", err)
	}

	return resp.Body, nil
}
