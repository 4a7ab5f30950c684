package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/cloudiq/pkg/cloudiq"
)

func TestProductContainersClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/ProductContainers", request.URL.Path)
		assert.Equal(t, "100", request.URL.Query().Get("OrganizationId"))

		response := cloudiq.ListResponse[cloudiq.ProductContainer]{
			Items:     []cloudiq.ProductContainer{{ID: 71, Name: "cart"}},
			TotalHits: 1,
		}

		WriteJSON(writer, http.StatusOK, response)
	}))
	defer server.Close()

	c, err := New(context.Background(), &cloudiq.Config{APIEndpoint: server.URL})
	require.NoError(t, err)

	result, err := c.ProductContainers().List(context.Background(), 100, nil)
	require.NoError(t, err)
	assert.Equal(t, 71, result.Items[0].ID)
}

func TestProductContainersClient_GetRowIssues(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/ProductContainers/rowissues/71", request.URL.Path)

		WriteJSON(writer, http.StatusOK, cloudiq.ProductContainer{ID: 71})
	}))
	defer server.Close()

	c, err := New(context.Background(), &cloudiq.Config{APIEndpoint: server.URL})
	require.NoError(t, err)

	container, err := c.ProductContainers().GetRowIssues(context.Background(), 71)
	require.NoError(t, err)
	assert.Equal(t, 71, container.ID)
}

func TestProductContainersClient_GetOrCreateShoppingCart(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/ProductContainers/getorcreateshoppingcart", request.URL.Path)
		assert.Equal(t, "100", request.URL.Query().Get("OrganizationId"))

		WriteJSON(writer, http.StatusOK, cloudiq.ProductContainer{
			ID:           71,
			Organization: cloudiq.Organization{ID: 100},
		})
	}))
	defer server.Close()

	c, err := New(context.Background(), &cloudiq.Config{APIEndpoint: server.URL})
	require.NoError(t, err)

	cart, err := c.ProductContainers().GetOrCreateShoppingCart(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, 71, cart.ID)
	assert.Equal(t, 100, cart.Organization.ID)
}

func TestProductContainersClient_PatchRow(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/ProductContainers/71/row/3", request.URL.Path)
		assert.Equal(t, http.MethodPatch, request.Method)

		var row cloudiq.ProductRow

		_ = json.NewDecoder(request.Body).Decode(&row)
		assert.Equal(t, 50, row.Quantity)

		WriteJSON(writer, http.StatusOK, cloudiq.ProductContainer{
			ID:   71,
			Rows: []cloudiq.ProductRow{{ID: 3, Quantity: row.Quantity}},
		})
	}))
	defer server.Close()

	c, err := New(context.Background(), &cloudiq.Config{APIEndpoint: server.URL})
	require.NoError(t, err)

	container, err := c.ProductContainers().PatchRow(context.Background(), 71, 3,
		&cloudiq.ProductRow{ID: 3, Quantity: 50})
	require.NoError(t, err)
	require.Len(t, container.Rows, 1)
	assert.Equal(t, 50, container.Rows[0].Quantity)
}

func TestProductContainersClient_Delete(t *testing.T) {
	t.Parallel()

	tests := []TestDeleteOperation{
		{
			Name:         "success",
			ID:           71,
			ExpectedPath: "/ProductContainers/71",
			StatusCode:   http.StatusOK,
		},
	}

	RunDeleteTests(t, tests, func(c *Client) func(context.Context, int) error {
		return c.ProductContainers().Delete
	})
}
