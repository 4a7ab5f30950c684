package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/cloudiq/pkg/cloudiq"
)

func TestAddressesClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		// Lowercase organizations segment, uppercase Addresses
		assert.Equal(t, "/organizations/100/Addresses", request.URL.Path)

		response := cloudiq.ListResponse[cloudiq.Address]{
			Items: []cloudiq.Address{
				{AddressLine1: "Karl Johans gate 1", City: "Oslo", CountryCode: "NO"},
			},
			TotalHits: 1,
		}

		WriteJSON(writer, http.StatusOK, response)
	}))
	defer server.Close()

	c, err := New(context.Background(), &cloudiq.Config{APIEndpoint: server.URL})
	require.NoError(t, err)

	result, err := c.Addresses().List(context.Background(), 100, nil)
	require.NoError(t, err)
	assert.Equal(t, "Oslo", result.Items[0].City)
}

func TestAddressesClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/organizations/100/Addresses/7", request.URL.Path)

		WriteJSON(writer, http.StatusOK, cloudiq.Address{
			AddressLine1: "Karl Johans gate 1",
			City:          "Oslo",
			CountryCode:   "NO",
		})
	}))
	defer server.Close()

	c, err := New(context.Background(), &cloudiq.Config{APIEndpoint: server.URL})
	require.NoError(t, err)

	address, err := c.Addresses().Get(context.Background(), 100, 7)
	require.NoError(t, err)
	assert.Equal(t, "Karl Johans gate 1", address.AddressLine1)
}
