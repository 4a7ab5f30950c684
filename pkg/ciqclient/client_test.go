package ciqclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/cloudiq/pkg/ciqclient"
	"github.com/fivetwenty-io/cloudiq/pkg/cloudiq"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		client, err := ciqclient.New(context.Background(), &cloudiq.Config{
			APIEndpoint: "https://api.example.com",
		})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		client, err := ciqclient.New(context.Background(), nil)
		require.ErrorIs(t, err, cloudiq.ErrConfigRequired)
		assert.Nil(t, client)
	})

	t.Run("defaults to production endpoint", func(t *testing.T) {
		t.Parallel()

		config := &cloudiq.Config{}

		_, err := ciqclient.New(context.Background(), config)
		require.NoError(t, err)
		assert.Equal(t, "https://api.crayon.com/api/v1", config.APIEndpoint)
		assert.Equal(t, "https://api.crayon.com/api/v1/connect/token", config.TokenURL)
		assert.Equal(t, "CustomerApi", config.Scope)
	})

	t.Run("normalizes endpoint", func(t *testing.T) {
		t.Parallel()

		config := &cloudiq.Config{APIEndpoint: "api.example.com/"}

		_, err := ciqclient.New(context.Background(), config)
		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com", config.APIEndpoint)
	})

	t.Run("keeps explicit token URL", func(t *testing.T) {
		t.Parallel()

		config := &cloudiq.Config{
			APIEndpoint: "https://api.example.com",
			TokenURL:    "https://login.example.com/connect/token",
		}

		_, err := ciqclient.New(context.Background(), config)
		require.NoError(t, err)
		assert.Equal(t, "https://login.example.com/connect/token", config.TokenURL)
	})

	t.Run("rejects partial credentials", func(t *testing.T) {
		t.Parallel()

		client, err := ciqclient.New(context.Background(), &cloudiq.Config{
			APIEndpoint: "https://api.example.com",
			ClientID:    "client-id",
			Username:    "user@example.com",
		})
		require.ErrorIs(t, err, cloudiq.ErrMissingCredentials)
		assert.Nil(t, client)
	})

	t.Run("access token skips credential validation", func(t *testing.T) {
		t.Parallel()

		client, err := ciqclient.New(context.Background(), &cloudiq.Config{
			APIEndpoint: "https://api.example.com",
			AccessToken: "stored-token",
		})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestNewWithEndpoint(t *testing.T) {
	t.Parallel()

	client, err := ciqclient.NewWithEndpoint(context.Background(), "https://api.example.com")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewWithToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/Me", request.URL.Path)
		assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"User":{"Id":"7f5c","UserName":"user@example.com"}}`))
	}))
	defer server.Close()

	client, err := ciqclient.NewWithToken(context.Background(), server.URL, "test-token")
	require.NoError(t, err)

	me, err := client.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", me.User.UserName)
}

func TestNewWithPassword(t *testing.T) {
	t.Parallel()

	client, err := ciqclient.NewWithPassword(context.Background(), "https://api.example.com",
		"client-id", "client-secret", "user@example.com", "secret")
	require.NoError(t, err)
	assert.NotNil(t, client)
}
