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

// ProductContainersClient implements cloudiq.ProductContainersClient
type ProductContainersClient struct {
	httpClient *http.Client
}

// NewProductContainersClient creates a new product containers client
func NewProductContainersClient(httpClient *http.Client) *ProductContainersClient {
	return &ProductContainersClient{
		httpClient: httpClient,
	}
}

// List implements cloudiq.ProductContainersClient.List
func (c *ProductContainersClient) List(ctx context.Context, orgID int, params *cloudiq.QueryParams) (*cloudiq.ListResponse[cloudiq.ProductContainer], error) {
	query := url.Values{}
	if params != nil {
		query = params.ToValues()
	}

	query.Set("OrganizationId", strconv.Itoa(orgID))

	resp, err := c.httpClient.Get(ctx, "/ProductContainers", query)
	if err != nil {
		return nil, fmt.Errorf("listing product containers: %w", err)
	}

	var result cloudiq.ListResponse[cloudiq.ProductContainer]
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing product containers list response: %w", err)
	}

	return &result, nil
}

// Get implements cloudiq.ProductContainersClient.Get
func (c *ProductContainersClient) Get(ctx context.Context, containerID int) (*cloudiq.ProductContainer, error) {
	path := fmt.Sprintf("/ProductContainers/%d", containerID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting product container: %w", err)
	}

	var container cloudiq.ProductContainer
	if err := json.Unmarshal(resp.Body, &container); err != nil {
		return nil, fmt.Errorf("parsing product container response: %w", err)
	}

	return &container, nil
}

// GetRowIssues implements cloudiq.ProductContainersClient.GetRowIssues
func (c *ProductContainersClient) GetRowIssues(ctx context.Context, containerID int) (*cloudiq.ProductContainer, error) {
	path := fmt.Sprintf("/ProductContainers/rowissues/%d", containerID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting product container row issues: %w", err)
	}

	var container cloudiq.ProductContainer
	if err := json.Unmarshal(resp.Body, &container); err != nil {
		return nil, fmt.Errorf("parsing product container response: %w", err)
	}

	return &container, nil
}

// GetOrCreateShoppingCart implements cloudiq.ProductContainersClient.GetOrCreateShoppingCart
func (c *ProductContainersClient) GetOrCreateShoppingCart(ctx context.Context, orgID int) (*cloudiq.ProductContainer, error) {
	query := url.Values{"OrganizationId": []string{strconv.Itoa(orgID)}}

	resp, err := c.httpClient.Get(ctx, "/ProductContainers/getorcreateshoppingcart", query)
	if err != nil {
		return nil, fmt.Errorf("getting shopping cart: %w", err)
	}

	var container cloudiq.ProductContainer
	if err := json.Unmarshal(resp.Body, &container); err != nil {
		return nil, fmt.Errorf("parsing shopping cart response: %w", err)
	}

	return &container, nil
}

// PatchRow implements cloudiq.ProductContainersClient.PatchRow
func (c *ProductContainersClient) PatchRow(ctx context.Context, containerID, rowID int, row *cloudiq.ProductRow) (*cloudiq.ProductContainer, error) {
	path := fmt.Sprintf("/ProductContainers/%d/row/%d", containerID, rowID)

	resp, err := c.httpClient.Patch(ctx, path, row)
	if err != nil {
		return nil, fmt.Errorf("patching product container row: %w", err)
	}

	var container cloudiq.ProductContainer
	if err := json.Unmarshal(resp.Body, &container); err != nil {
		return nil, fmt.Errorf("parsing product container response: %w", err)
	}

	return &container, nil
}

// Delete implements cloudiq.ProductContainersClient.Delete
func (c *ProductContainersClient) Delete(ctx context.Context, containerID int) error {
	path := fmt.Sprintf("/ProductContainers/%d", containerID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting product container: %w", err)
	}

	return nil
}
