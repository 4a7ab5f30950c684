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

func TestResellerSalesPricesClient_Delete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/ResellerSalesPrices", request.URL.Path)
		assert.Equal(t, http.MethodDelete, request.Method)
		assert.Equal(t, "900017", request.URL.Query().Get("objectID"))
		assert.Equal(t, "subscription", request.URL.Query().Get("ObjectType"))

		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c, err := New(context.Background(), &cloudiq.Config{APIEndpoint: server.URL})
	require.NoError(t, err)

	params := cloudiq.NewQueryParams().WithFilter("ObjectType", "subscription")

	err = c.ResellerSalesPrices().Delete(context.Background(), 900017, params)
	require.NoError(t, err)
}
