package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/cloudiq/internal/http"
	"github.com/fivetwenty-io/cloudiq/pkg/cloudiq"
)

// ProgramsClient implements cloudiq.ProgramsClient
type ProgramsClient struct {
	httpClient *http.Client
}

// NewProgramsClient creates a new programs client
func NewProgramsClient(httpClient *http.Client) *ProgramsClient {
	return &ProgramsClient{
		httpClient: httpClient,
	}
}

// List implements cloudiq.ProgramsClient.List
func (c *ProgramsClient) List(ctx context.Context, params *cloudiq.QueryParams) (*cloudiq.ListResponse[cloudiq.Program], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/Programs", query)
	if err != nil {
		return nil, fmt.Errorf("listing programs: %w", err)
	}

	var result cloudiq.ListResponse[cloudiq.Program]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing programs list response: %w", err)
	}

	return &result, nil
}

// Get implements cloudiq.ProgramsClient.Get
func (c *ProgramsClient) Get(ctx context.Context, programID int) (*cloudiq.Program, error) {
	path := fmt.Sprintf("/Programs/%d", programID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting program: %w", err)
	}

	var program cloudiq.Program
	if err := json.Unmarshal(resp.Body, &program); err != nil {
		return nil, fmt.Errorf("parsing program response: %w", err)
	}

	return &program, nil
}
