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

func TestSubscriptionsClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/Subscriptions", request.URL.Path)
		assert.Equal(t, http.MethodPost, request.Method)

		// The subscription payload is camelCase on the wire.
		var body map[string]interface{}

		_ = json.NewDecoder(request.Body).Decode(&body)
		assert.Equal(t, "Exchange Online (Plan 1)", body["name"])
		assert.Equal(t, float64(25), body["quantity"])
		assert.Equal(t, float64(1), body["billingCycle"])
		assert.Equal(t, "P1M", body["termDuration"])

		tenant, _ := body["customerTenant"].(map[string]interface{})
		assert.Equal(t, float64(5001), tenant["id"])

		product, _ := body["product"].(map[string]interface{})
		assert.Equal(t, "CFQ7TTC0LH16:0001", product["partNumber"])

		WriteJSON(writer, http.StatusOK, cloudiq.SubscriptionDetailed{
			ID:             900017,
			Name:           "Exchange Online (Plan 1)",
			CustomerTenant: cloudiq.CustomerTenantRef{ID: 5001},
			Product:        cloudiq.ProductRef{PartNumber: "CFQ7TTC0LH16:0001"},
			Quantity:       25,
			BillingCycle:   1,
			TermDuration:   "P1M",
		})
	}))
	defer server.Close()

	c, err := New(context.Background(), &cloudiq.Config{APIEndpoint: server.URL})
	require.NoError(t, err)

	subscription := cloudiq.NewSubscriptionDetailed(
		"Exchange Online (Plan 1)", 5001, "CFQ7TTC0LH16:0001", 25, 1, "P1M")

	created, err := c.Subscriptions().Create(context.Background(), subscription)
	require.NoError(t, err)
	assert.Equal(t, 900017, created.ID)
	assert.Equal(t, 25, created.Quantity)
}

func TestSubscriptionsClient_Create_Error(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		WriteAPIError(writer, http.StatusBadRequest, "InvalidPartNumber", "Unknown part number")
	}))
	defer server.Close()

	c, err := New(context.Background(), &cloudiq.Config{APIEndpoint: server.URL})
	require.NoError(t, err)

	subscription := cloudiq.NewSubscriptionDetailed("Bad", 5001, "NOPE", 1, 1, "P1M")

	created, err := c.Subscriptions().Create(context.Background(), subscription)
	require.Error(t, err)
	assert.Nil(t, created)
	assert.Contains(t, err.Error(), "Unknown part number")
	assert.True(t, cloudiq.IsBadRequest(err))
}

func TestSubscriptionsClient_DeleteTags(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/Subscriptions/900017/tags", request.URL.Path)
		assert.Equal(t, http.MethodDelete, request.Method)

		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c, err := New(context.Background(), &cloudiq.Config{APIEndpoint: server.URL})
	require.NoError(t, err)

	err = c.Subscriptions().DeleteTags(context.Background(), 900017)
	require.NoError(t, err)
}
