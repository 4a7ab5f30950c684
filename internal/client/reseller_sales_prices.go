package client

import (
	"context"
	"fmt"
	gohttp "net/http"
	"net/url"
	"strconv"

	"github.com/fivetwenty-io/cloudiq/internal/http"
	"github.com/fivetwenty-io/cloudiq/pkg/cloudiq"
)

// ResellerSalesPricesClient implements cloudiq.ResellerSalesPricesClient
type ResellerSalesPricesClient struct {
	httpClient *http.Client
}

// NewResellerSalesPricesClient creates a new reseller sales prices client
func NewResellerSalesPricesClient(httpClient *http.Client) *ResellerSalesPricesClient {
	return &ResellerSalesPricesClient{
		httpClient: httpClient,
	}
}

// Delete implements cloudiq.ResellerSalesPricesClient.Delete
func (c *ResellerSalesPricesClient) Delete(ctx context.Context, objectID int, params *cloudiq.QueryParams) error {
	query := url.Values{}
	if params != nil {
		query = params.ToValues()
	}

	query.Set("objectID", strconv.Itoa(objectID))

	// The object to delete is addressed through the query string.
	_, err := c.httpClient.Do(ctx, &http.Request{
		Method: gohttp.MethodDelete,
		Path:   "/ResellerSalesPrices",
		Query:  query,
	})
	if err != nil {
		return fmt.Errorf("deleting reseller sales prices: %w", err)
	}

	return nil
}
