package client

import (
	"context"
	"encoding/json"
	"fmt"
	gohttp "net/http"
	"net/url"

	"github.com/fivetwenty-io/cloudiq/internal/http"
	"github.com/fivetwenty-io/cloudiq/pkg/cloudiq"
)

// SecretsClient implements cloudiq.SecretsClient
type SecretsClient struct {
	httpClient *http.Client
}

// NewSecretsClient creates a new secrets client
func NewSecretsClient(httpClient *http.Client) *SecretsClient {
	return &SecretsClient{
		httpClient: httpClient,
	}
}

// Create implements cloudiq.SecretsClient.Create
func (c *SecretsClient) Create(ctx context.Context, request *cloudiq.SecretCreateRequest) (*cloudiq.Secret, error) {
	resp, err := c.httpClient.Post(ctx, "/Secrets", request)
	if err != nil {
		return nil, fmt.Errorf("creating secret: %w", err)
	}

	var secret cloudiq.Secret
	if err := json.Unmarshal(resp.Body, &secret); err != nil {
		return nil, fmt.Errorf("parsing secret response: %w", err)
	}

	return &secret, nil
}

// Delete implements cloudiq.SecretsClient.Delete
func (c *SecretsClient) Delete(ctx context.Context, clientID, secretID string) error {
	// Both identifiers travel in the query string.
	query := url.Values{
		"clientID": []string{clientID},
		"secretID": []string{secretID},
	}

	_, err := c.httpClient.Do(ctx, &http.Request{
		Method: gohttp.MethodDelete,
		Path:   "/Secrets",
		Query:  query,
	})
	if err != nil {
		return fmt.Errorf("deleting secret: %w", err)
	}

	return nil
}
