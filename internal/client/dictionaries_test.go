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

func TestProgramsClient(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/Programs":
			WriteJSON(writer, http.StatusOK, cloudiq.ListResponse[cloudiq.Program]{
				Items:     []cloudiq.Program{{ID: 1, Name: "CSP"}},
				TotalHits: 1,
			})
		case "/Programs/1":
			WriteJSON(writer, http.StatusOK, cloudiq.Program{ID: 1, Name: "CSP"})
		default:
			writer.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	c, err := New(context.Background(), &cloudiq.Config{APIEndpoint: server.URL})
	require.NoError(t, err)

	list, err := c.Programs().List(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "CSP", list.Items[0].Name)

	program, err := c.Programs().Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, program.ID)
}

func TestPublishersClient(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		// The publishers routes are lowercase.
		switch request.URL.Path {
		case "/publishers":
			WriteJSON(writer, http.StatusOK, cloudiq.ListResponse[cloudiq.Publisher]{
				Items:     []cloudiq.Publisher{{ID: 2, Name: "Microsoft"}},
				TotalHits: 1,
			})
		case "/publishers/2":
			WriteJSON(writer, http.StatusOK, cloudiq.Publisher{ID: 2, Name: "Microsoft"})
		default:
			writer.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	c, err := New(context.Background(), &cloudiq.Config{APIEndpoint: server.URL})
	require.NoError(t, err)

	list, err := c.Publishers().List(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Microsoft", list.Items[0].Name)

	publisher, err := c.Publishers().Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, publisher.ID)
}

func TestBlogItemsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/BlogItems", request.URL.Path)

		WriteJSON(writer, http.StatusOK, cloudiq.ListResponse[cloudiq.BlogItem]{
			Items:     []cloudiq.BlogItem{{ID: 9, Title: "Price list update"}},
			TotalHits: 1,
		})
	}))
	defer server.Close()

	c, err := New(context.Background(), &cloudiq.Config{APIEndpoint: server.URL})
	require.NoError(t, err)

	result, err := c.BlogItems().List(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Price list update", result.Items[0].Title)
}

func TestManagementLinksClient(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/ManagementLinks":
			WriteJSON(writer, http.StatusOK, cloudiq.ListResponse[cloudiq.ManagementLink]{
				Items:     []cloudiq.ManagementLink{{Name: "Azure portal", URL: "https://portal.azure.com"}},
				TotalHits: 1,
			})
		case "/ManagementLinks/grouped":
			WriteJSON(writer, http.StatusOK, cloudiq.ListResponse[cloudiq.GroupedManagementLink]{
				Items: []cloudiq.GroupedManagementLink{
					{Group: "Microsoft", Links: []cloudiq.ManagementLink{{Name: "Azure portal"}}},
				},
				TotalHits: 1,
			})
		default:
			writer.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	c, err := New(context.Background(), &cloudiq.Config{APIEndpoint: server.URL})
	require.NoError(t, err)

	links, err := c.ManagementLinks().List(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Azure portal", links.Items[0].Name)

	grouped, err := c.ManagementLinks().ListGrouped(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Microsoft", grouped.Items[0].Group)
}

func TestOrganizationAccessClient(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/OrganizationAccess":
			WriteJSON(writer, http.StatusOK, cloudiq.ListResponse[cloudiq.OrganizationAccess]{
				Items: []cloudiq.OrganizationAccess{
					{Organization: cloudiq.Organization{ID: 100}, HasAccess: true},
				},
				TotalHits: 1,
			})
		case "/OrganizationAccess/grant":
			WriteJSON(writer, http.StatusOK, cloudiq.ListResponse[cloudiq.OrganizationAccess]{
				Items: []cloudiq.OrganizationAccess{
					{Organization: cloudiq.Organization{ID: 101}, HasAccess: false},
				},
				TotalHits: 1,
			})
		default:
			writer.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	c, err := New(context.Background(), &cloudiq.Config{APIEndpoint: server.URL})
	require.NoError(t, err)

	access, err := c.OrganizationAccess().List(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, access.Items[0].HasAccess)

	grants, err := c.OrganizationAccess().ListGrants(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 101, grants.Items[0].Organization.ID)
}
