package cloudiq_test

import (
	"net/url"
	"testing"

	"github.com/fivetwenty-io/cloudiq/pkg/cloudiq"
	"github.com/stretchr/testify/assert"
)

func TestQueryParams_ToValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		params   *cloudiq.QueryParams
		expected url.Values
	}{
		{
			name:     "empty params",
			params:   cloudiq.NewQueryParams(),
			expected: url.Values{},
		},
		{
			name: "with pagination",
			params: &cloudiq.QueryParams{
				Page:     2,
				PageSize: 50,
			},
			expected: url.Values{
				"Page":     []string{"2"},
				"PageSize": []string{"50"},
			},
		},
		{
			name: "with search",
			params: &cloudiq.QueryParams{
				Search: "contoso",
			},
			expected: url.Values{
				"Search": []string{"contoso"},
			},
		},
		{
			name: "with ordering",
			params: &cloudiq.QueryParams{
				OrderBy: "Name",
			},
			expected: url.Values{
				"OrderBy": []string{"Name"},
			},
		},
		{
			name: "with filters",
			params: &cloudiq.QueryParams{
				Filters: map[string][]string{
					"OrganizationId": {"111111"},
					"StatusFilter":   {"1", "2"},
				},
			},
			expected: url.Values{
				"OrganizationId": []string{"111111"},
				"StatusFilter":   []string{"1,2"},
			},
		},
		{
			name: "with all options",
			params: &cloudiq.QueryParams{
				Page:     3,
				PageSize: 25,
				Search:   "fabrikam",
				OrderBy:  "Id",
				Filters: map[string][]string{
					"OrganizationId": {"111111"},
				},
			},
			expected: url.Values{
				"Page":           []string{"3"},
				"PageSize":       []string{"25"},
				"Search":         []string{"fabrikam"},
				"OrderBy":        []string{"Id"},
				"OrganizationId": []string{"111111"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := tt.params.ToValues()
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestQueryParams_Builders(t *testing.T) {
	t.Parallel()
	t.Run("chaining methods", func(t *testing.T) {
		t.Parallel()

		params := cloudiq.NewQueryParams().
			WithPage(2).
			WithPageSize(100).
			WithSearch("contoso").
			WithOrderBy("Name").
			WithFilter("OrganizationId", "111111").
			WithFilter("StatusFilter", "1", "2")

		values := params.ToValues()

		assert.Equal(t, "2", values.Get("Page"))
		assert.Equal(t, "100", values.Get("PageSize"))
		assert.Equal(t, "contoso", values.Get("Search"))
		assert.Equal(t, "Name", values.Get("OrderBy"))
		assert.Equal(t, "111111", values.Get("OrganizationId"))
		assert.Equal(t, "1,2", values.Get("StatusFilter"))
	})

	t.Run("WithFilter appends", func(t *testing.T) {
		t.Parallel()

		params := cloudiq.NewQueryParams().
			WithFilter("StatusFilter", "1").
			WithFilter("StatusFilter", "2", "3")

		assert.Equal(t, []string{"1", "2", "3"}, params.Filters["StatusFilter"])
	})

	t.Run("WithFilter on zero value", func(t *testing.T) {
		t.Parallel()

		params := (&cloudiq.QueryParams{}).WithFilter("OrganizationId", "111111")

		assert.Equal(t, []string{"111111"}, params.Filters["OrganizationId"])
	})
}

func TestNewQueryParams(t *testing.T) {
	t.Parallel()

	params := cloudiq.NewQueryParams()

	assert.NotNil(t, params)
	assert.NotNil(t, params.Filters)
	assert.Equal(t, 0, params.Page)
	assert.Equal(t, 0, params.PageSize)
	assert.Empty(t, params.Search)
	assert.Empty(t, params.OrderBy)
}
