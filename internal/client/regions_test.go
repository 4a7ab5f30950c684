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

func TestRegionsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/Regions", request.URL.Path)

		response := cloudiq.ListResponse[cloudiq.Region]{
			Items: []cloudiq.Region{
				{ID: 1, Name: "Europe", Code: "EU"},
				{ID: 2, Name: "United States", Code: "US"},
			},
			TotalHits: 2,
		}

		WriteJSON(writer, http.StatusOK, response)
	}))
	defer server.Close()

	c, err := New(context.Background(), &cloudiq.Config{APIEndpoint: server.URL})
	require.NoError(t, err)

	result, err := c.Regions().List(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalHits)
	assert.Equal(t, "EU", result.Items[0].Code)
}

func TestRegionsClient_GetByCode(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/Regions/bycode", request.URL.Path)
		assert.Equal(t, "EU", request.URL.Query().Get("regionCode"))

		WriteJSON(writer, http.StatusOK, cloudiq.Region{ID: 1, Name: "Europe", Code: "EU"})
	}))
	defer server.Close()

	c, err := New(context.Background(), &cloudiq.Config{APIEndpoint: server.URL})
	require.NoError(t, err)

	region, err := c.Regions().GetByCode(context.Background(), "EU")
	require.NoError(t, err)
	assert.Equal(t, "Europe", region.Name)
}
