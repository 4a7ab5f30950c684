package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/cloudiq/internal/http"
	"github.com/fivetwenty-io/cloudiq/pkg/cloudiq"
)

// AgreementsClient implements cloudiq.AgreementsClient
type AgreementsClient struct {
	httpClient *http.Client
}

// NewAgreementsClient creates a new agreements client
func NewAgreementsClient(httpClient *http.Client) *AgreementsClient {
	return &AgreementsClient{
		httpClient: httpClient,
	}
}

// List implements cloudiq.AgreementsClient.List
func (c *AgreementsClient) List(ctx context.Context, params *cloudiq.QueryParams) (*cloudiq.ListResponse[cloudiq.Agreement], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/Agreements", query)
	if err != nil {
		return nil, fmt.Errorf("listing agreements: %w", err)
	}

	var result cloudiq.ListResponse[cloudiq.Agreement]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing agreements list response: %w", err)
	}

	return &result, nil
}
