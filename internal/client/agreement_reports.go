package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/cloudiq/internal/http"
	"github.com/fivetwenty-io/cloudiq/pkg/cloudiq"
)

// AgreementReportsClient implements cloudiq.AgreementReportsClient
type AgreementReportsClient struct {
	httpClient *http.Client
}

// NewAgreementReportsClient creates a new agreement reports client
func NewAgreementReportsClient(httpClient *http.Client) *AgreementReportsClient {
	return &AgreementReportsClient{
		httpClient: httpClient,
	}
}

// Get implements cloudiq.AgreementReportsClient.Get
func (c *AgreementReportsClient) Get(ctx context.Context, productContainerID int) (*cloudiq.AgreementReport, error) {
	path := fmt.Sprintf("/AgreementReports/%d", productContainerID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting agreement report: %w", err)
	}

	var report cloudiq.AgreementReport
	if err := json.Unmarshal(resp.Body, &report); err != nil {
		return nil, fmt.Errorf("parsing agreement report response: %w", err)
	}

	return &report, nil
}
