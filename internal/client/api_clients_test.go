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

func TestAPIClientsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/Clients", request.URL.Path)

		response := cloudiq.ListResponse[cloudiq.APIClient]{
			Items: []cloudiq.APIClient{
				{ID: "3c9d1a7e-8f2b-4c5d-9e0f-1a2b3c4d5e6f", Name: "provisioning"},
			},
			TotalHits: 1,
		}

		WriteJSON(writer, http.StatusOK, response)
	}))
	defer server.Close()

	c, err := New(context.Background(), &cloudiq.Config{APIEndpoint: server.URL})
	require.NoError(t, err)

	result, err := c.Clients().List(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "provisioning", result.Items[0].Name)
}

func TestAPIClientsClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/Clients/3c9d1a7e-8f2b-4c5d-9e0f-1a2b3c4d5e6f", request.URL.Path)

		WriteJSON(writer, http.StatusOK, cloudiq.APIClient{
			ID:   "3c9d1a7e-8f2b-4c5d-9e0f-1a2b3c4d5e6f",
			Name: "provisioning",
		})
	}))
	defer server.Close()

	c, err := New(context.Background(), &cloudiq.Config{APIEndpoint: server.URL})
	require.NoError(t, err)

	apiClient, err := c.Clients().Get(context.Background(), "3c9d1a7e-8f2b-4c5d-9e0f-1a2b3c4d5e6f")
	require.NoError(t, err)
	assert.Equal(t, "provisioning", apiClient.Name)
}

func TestAPIClientsClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/Clients", request.URL.Path)
		assert.Equal(t, http.MethodPost, request.Method)

		var req cloudiq.APIClientCreateRequest

		_ = json.NewDecoder(request.Body).Decode(&req)
		assert.Equal(t, "provisioning", req.Name)

		WriteJSON(writer, http.StatusOK, cloudiq.APIClient{
			ID:   "3c9d1a7e-8f2b-4c5d-9e0f-1a2b3c4d5e6f",
			Name: req.Name,
		})
	}))
	defer server.Close()

	c, err := New(context.Background(), &cloudiq.Config{APIEndpoint: server.URL})
	require.NoError(t, err)

	created, err := c.Clients().Create(context.Background(), &cloudiq.APIClientCreateRequest{Name: "provisioning"})
	require.NoError(t, err)
	assert.Equal(t, "3c9d1a7e-8f2b-4c5d-9e0f-1a2b3c4d5e6f", created.ID)
}

func TestAPIClientsClient_Update(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/Clients/3c9d1a7e-8f2b-4c5d-9e0f-1a2b3c4d5e6f", request.URL.Path)
		assert.Equal(t, http.MethodPut, request.Method)

		var req cloudiq.APIClientCreateRequest

		_ = json.NewDecoder(request.Body).Decode(&req)

		WriteJSON(writer, http.StatusOK, cloudiq.APIClient{
			ID:   "3c9d1a7e-8f2b-4c5d-9e0f-1a2b3c4d5e6f",
			Name: req.Name,
		})
	}))
	defer server.Close()

	c, err := New(context.Background(), &cloudiq.Config{APIEndpoint: server.URL})
	require.NoError(t, err)

	updated, err := c.Clients().Update(context.Background(), "3c9d1a7e-8f2b-4c5d-9e0f-1a2b3c4d5e6f",
		&cloudiq.APIClientCreateRequest{Name: "provisioning-v2"})
	require.NoError(t, err)
	assert.Equal(t, "provisioning-v2", updated.Name)
}

func TestAPIClientsClient_Delete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/Clients/3c9d1a7e-8f2b-4c5d-9e0f-1a2b3c4d5e6f", request.URL.Path)
		assert.Equal(t, http.MethodDelete, request.Method)

		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c, err := New(context.Background(), &cloudiq.Config{APIEndpoint: server.URL})
	require.NoError(t, err)

	err = c.Clients().Delete(context.Background(), "3c9d1a7e-8f2b-4c5d-9e0f-1a2b3c4d5e6f")
	require.NoError(t, err)
}
